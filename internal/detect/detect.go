// Package detect locates conventional input files under a base
// directory so the operator does not have to spell out every path.
package detect

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/youruser/certgen/internal/cert"
	"github.com/youruser/certgen/internal/util"
)

// Paths holds auto-detected input locations. Empty fields mean nothing
// matched; detection is best-effort and never fails.
type Paths struct {
	Template  string                   `json:"template"`
	Roster    string                   `json:"roster"`
	Signature string                   `json:"signature"`
	FontsDir  string                   `json:"fonts_dir"`
	Fonts     map[cert.FontRole]string `json:"fonts"`
}

// Conventional font filenames per role inside the fonts directory.
var fontFiles = map[cert.FontRole]string{
	cert.RoleName:      "PlayfairDisplay-Bold.ttf",
	cert.RoleWebinar:   "Montserrat-Bold.ttf",
	cert.RoleParagraph: "Lora-Regular.ttf",
	cert.RoleDate:      "OpenSans-Regular.ttf",
}

// Scan inspects baseDir: the first *.png becomes the template, the
// first *.csv the roster, signature.png the signature, and a fonts/
// subdirectory is probed for the conventional per-role font files.
func Scan(baseDir string) Paths {
	p := Paths{Fonts: map[cert.FontRole]string{}}
	if st, err := os.Stat(baseDir); err != nil || !st.IsDir() {
		return p
	}

	p.Template = firstMatch(baseDir, ".png")
	p.Roster = firstMatch(baseDir, ".csv")

	if sig := filepath.Join(baseDir, "signature.png"); util.FileExists(sig) {
		p.Signature = sig
	}

	fontsDir := filepath.Join(baseDir, "fonts")
	if st, err := os.Stat(fontsDir); err == nil && st.IsDir() {
		p.FontsDir = fontsDir
		for role, name := range fontFiles {
			if f := filepath.Join(fontsDir, name); util.FileExists(f) {
				p.Fonts[role] = f
			}
		}
	}
	return p
}

// firstMatch returns the lexically first regular file in dir with the
// given extension, skipping signature.png so the template pick is
// stable whether or not a signature is present.
func firstMatch(dir, ext string) string {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() || e.Name() == "signature.png" {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(dir, names[0])
}
