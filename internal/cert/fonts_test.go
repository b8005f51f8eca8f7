package cert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenFontSourceFromFile(t *testing.T) {
	src := OpenFontSource(writeTestFont(t))

	face, origin := src.Face(48)
	if origin != OriginFile {
		t.Fatalf("origin = %v, want OriginFile", origin)
	}

	// Faces are cached per size within the source.
	again, _ := src.Face(48)
	if face != again {
		t.Error("same size resolved to a different face instance")
	}

	small, _ := src.Face(12)
	if small == face {
		t.Error("different sizes share one face")
	}
	if small.Metrics().Height >= face.Metrics().Height {
		t.Error("larger point size did not yield taller metrics")
	}
}

func TestOpenFontSourceFallbacks(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"empty path", func(t *testing.T) string { return "" }},
		{"missing file", func(t *testing.T) string {
			return filepath.Join(t.TempDir(), "ghost.ttf")
		}},
		{"unparseable file", func(t *testing.T) string {
			p := filepath.Join(t.TempDir(), "junk.ttf")
			if err := os.WriteFile(p, []byte("not a font"), 0o644); err != nil {
				t.Fatal(err)
			}
			return p
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := OpenFontSource(tt.path(t))
			face, origin := src.Face(64)
			if origin != OriginDefault {
				t.Errorf("origin = %v, want OriginDefault", origin)
			}
			if face == nil {
				t.Fatal("no face returned")
			}
		})
	}
}

func TestLoadFontSetRoles(t *testing.T) {
	path := writeTestFont(t)
	set := LoadFontSet(map[FontRole]string{RoleName: path})

	if _, origin := set.Face(RoleName, 40); origin != OriginFile {
		t.Error("name role should resolve from file")
	}
	if _, origin := set.Face(RoleDate, 20); origin != OriginDefault {
		t.Error("unconfigured role should fall back to the default face")
	}
	if set.Source(RoleParagraph) == nil {
		t.Error("every role needs a source, configured or not")
	}
}
