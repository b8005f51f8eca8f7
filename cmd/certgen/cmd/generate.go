package cmd

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/youruser/certgen/internal/cert"
	"github.com/youruser/certgen/internal/detect"
	"github.com/youruser/certgen/internal/roster"
)

var (
	genBaseDir    string
	genTemplate   string
	genRoster     string
	genSignature  string
	genOutDir     string
	genConfigPath string
	genFormat     string
	genQuality    int
	genVerifyURL  string
	genFontPaths  = map[cert.FontRole]*string{
		cert.RoleName:      new(string),
		cert.RoleWebinar:   new(string),
		cert.RoleParagraph: new(string),
		cert.RoleDate:      new(string),
	}
)

// GenerateCmd runs one headless batch
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render certificates for every roster row",
	Long: `Render one certificate per roster row onto the template image and
bundle the results into certificates.zip.

Paths not given explicitly are auto-detected under --dir: the first
*.png is the template, the first *.csv the roster, signature.png the
signature, and fonts/ is probed for the conventional per-role fonts.

Examples:
  certgen generate --dir ./event
  certgen generate --template cert.png --roster attendees.csv --out ./out
  certgen generate --dir ./event --format jpeg --quality 90`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cert.LoadConfig(genConfigPath)
		if err != nil {
			return err
		}
		if genFormat != "" {
			cfg.OutputFormat = genFormat
		}
		if genQuality > 0 {
			cfg.JPEGQuality = genQuality
		}
		if genVerifyURL != "" {
			cfg.VerifyBaseURL = genVerifyURL
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		detected := detect.Scan(genBaseDir)
		templatePath := firstNonEmpty(genTemplate, detected.Template)
		rosterPath := firstNonEmpty(genRoster, detected.Roster)
		signaturePath := firstNonEmpty(genSignature, detected.Signature)
		if templatePath == "" {
			return fmt.Errorf("no template image given and none detected in %s", genBaseDir)
		}
		if rosterPath == "" {
			return fmt.Errorf("no roster given and none detected in %s", genBaseDir)
		}

		rows, err := roster.Load(rosterPath)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("roster %s has no data rows", rosterPath)
		}

		template, err := imaging.Open(templatePath)
		if err != nil {
			return fmt.Errorf("opening template %s: %w", templatePath, err)
		}

		fontPaths := make(map[cert.FontRole]string, len(genFontPaths))
		for role, p := range genFontPaths {
			fontPaths[role] = firstNonEmpty(*p, detected.Fonts[role])
		}
		fonts := cert.LoadFontSet(fontPaths)

		outDir := genOutDir
		if outDir == "" {
			outDir, err = os.MkdirTemp("", "cert_output_")
			if err != nil {
				return err
			}
		}

		created, zipPath, err := cert.RenderBatch(rows, template, fonts, signaturePath, outDir, cfg)
		if err != nil {
			return err
		}

		fmt.Printf("generated %d certificates in %s\n", len(created), outDir)
		fmt.Println("archive:", zipPath)
		return nil
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	f := GenerateCmd.Flags()
	f.StringVar(&genBaseDir, "dir", ".", "base directory for auto-detection")
	f.StringVar(&genTemplate, "template", "", "template image path (overrides detection)")
	f.StringVar(&genRoster, "roster", "", "roster CSV path (overrides detection)")
	f.StringVar(&genSignature, "signature", "", "signature image path (overrides detection)")
	f.StringVar(&genOutDir, "out", "", "output directory (default: a fresh temp dir)")
	f.StringVar(&genConfigPath, "config", "", "layout config YAML")
	f.StringVar(&genFormat, "format", "", "output format: png or jpeg")
	f.IntVar(&genQuality, "quality", 0, "JPEG quality (1-100)")
	f.StringVar(&genVerifyURL, "verify-url", "", "base URL for verification QR codes")
	f.StringVar(genFontPaths[cert.RoleName], "font-name", "", "font file for the attendee name")
	f.StringVar(genFontPaths[cert.RoleWebinar], "font-webinar", "", "font file for the webinar title")
	f.StringVar(genFontPaths[cert.RoleParagraph], "font-paragraph", "", "font file for the paragraph")
	f.StringVar(genFontPaths[cert.RoleDate], "font-date", "", "font file for the date line")
}
