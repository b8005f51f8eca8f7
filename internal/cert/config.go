package cert

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultParagraphTemplate is the certificate body with {NAME},
// {WEBINAR}, {DATE} and {PRONOUN} placeholders.
const DefaultParagraphTemplate = "This is to certify that {NAME} has participated in the " +
	"{WEBINAR} Masterclass held on {DATE} under the guidance of a team of " +
	"experienced trainers. We acknowledge {PRONOUN} dedication and commitment " +
	"to completing this session."

// Config is the immutable layout configuration for one batch run.
// All pixel offsets are non-negative; the *Adjust fields are signed
// nudges. Built once per invocation and passed down, never mutated.
type Config struct {
	WebinarFontSize    int `yaml:"webinar_font_size" json:"webinar_font_size"`
	WebinarRightMargin int `yaml:"webinar_right_margin" json:"webinar_right_margin"`
	WebinarY           int `yaml:"webinar_y" json:"webinar_y"`

	// NameForceSize > 0 disables the auto-fit search.
	NameForceSize      int `yaml:"name_force_size" json:"name_force_size"`
	NameMaxSize        int `yaml:"name_max_size" json:"name_max_size"`
	NameMinSize        int `yaml:"name_min_size" json:"name_min_size"`
	NameXAdjust        int `yaml:"name_x_adjust" json:"name_x_adjust"`
	NameY              int `yaml:"name_y" json:"name_y"`
	NameMaxWidthAdjust int `yaml:"name_max_width_adjust" json:"name_max_width_adjust"`

	ParaFontSize    int `yaml:"para_font_size" json:"para_font_size"`
	ParaWrapWidth   int `yaml:"para_wrap_width" json:"para_wrap_width"`
	ParaTopOffset   int `yaml:"para_top_offset" json:"para_top_offset"`
	ParaLineSpacing int `yaml:"para_line_spacing" json:"para_line_spacing"`
	ParaXAdjust     int `yaml:"para_x_adjust" json:"para_x_adjust"`

	DateFontSize int `yaml:"date_font_size" json:"date_font_size"`
	DateX        int `yaml:"date_x" json:"date_x"`
	DateY        int `yaml:"date_y" json:"date_y"`

	ParagraphTemplate string `yaml:"paragraph_template" json:"paragraph_template"`

	// OutputFormat is "png" or "jpeg". JPEGQuality only applies to jpeg.
	OutputFormat string `yaml:"output_format" json:"output_format"`
	JPEGQuality  int    `yaml:"jpeg_quality" json:"jpeg_quality"`

	// VerifyBaseURL, when set, adds a verification QR code to every
	// certificate pointing at this URL with the artifact id appended.
	VerifyBaseURL string `yaml:"verify_base_url" json:"verify_base_url"`
}

// DefaultConfig returns the layout defaults for a 1600x1000-ish
// landscape template.
func DefaultConfig() Config {
	return Config{
		WebinarFontSize:    28,
		WebinarRightMargin: 70,
		WebinarY:           55,
		NameMaxSize:        140,
		NameMinSize:        60,
		NameY:              300,
		NameMaxWidthAdjust: 300,
		ParaFontSize:       16,
		ParaWrapWidth:      1100,
		ParaTopOffset:      20,
		ParaLineSpacing:    6,
		DateFontSize:       20,
		DateX:              240,
		DateY:              480,
		ParagraphTemplate:  DefaultParagraphTemplate,
		OutputFormat:       "png",
		JPEGQuality:        95,
	}
}

// LoadConfig overlays a YAML file onto the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the compositor cannot render.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"webinar_font_size":     c.WebinarFontSize,
		"webinar_right_margin":  c.WebinarRightMargin,
		"webinar_y":             c.WebinarY,
		"name_max_size":         c.NameMaxSize,
		"name_min_size":         c.NameMinSize,
		"name_y":                c.NameY,
		"name_max_width_adjust": c.NameMaxWidthAdjust,
		"para_font_size":        c.ParaFontSize,
		"para_wrap_width":       c.ParaWrapWidth,
		"para_top_offset":       c.ParaTopOffset,
		"para_line_spacing":     c.ParaLineSpacing,
		"date_font_size":        c.DateFontSize,
		"date_x":                c.DateX,
		"date_y":                c.DateY,
	} {
		if v < 0 {
			return fmt.Errorf("config: %s must not be negative, got %d", name, v)
		}
	}
	if c.NameForceSize == 0 && c.NameMinSize > c.NameMaxSize {
		return fmt.Errorf("config: name_min_size %d exceeds name_max_size %d", c.NameMinSize, c.NameMaxSize)
	}
	switch strings.ToLower(c.OutputFormat) {
	case "png", "jpeg", "jpg":
	default:
		return fmt.Errorf("config: unsupported output_format %q", c.OutputFormat)
	}
	return nil
}

// Extension returns the output file extension for the configured format.
func (c Config) Extension() string {
	f := strings.ToLower(c.OutputFormat)
	if f == "" {
		return "png"
	}
	return f
}
