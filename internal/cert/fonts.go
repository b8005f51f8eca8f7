package cert

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontRole identifies which text element a font file is used for.
type FontRole string

const (
	RoleName      FontRole = "name"
	RoleWebinar   FontRole = "webinar"
	RoleParagraph FontRole = "paragraph"
	RoleDate      FontRole = "date"
)

// Roles lists every font role in drawing order.
var Roles = []FontRole{RoleName, RoleWebinar, RoleParagraph, RoleDate}

// FontOrigin reports where a resolved face came from, so the fallback
// path is a visible branch instead of a swallowed error.
type FontOrigin int

const (
	// OriginFile means the face was built from the configured font file.
	OriginFile FontOrigin = iota
	// OriginDefault means the built-in bitmap face was substituted.
	// That face is a fixed 7x13 bitmap and does not honor the requested
	// size; degraded fidelity is accepted rather than failing the row.
	OriginDefault
)

// FontSource holds one parsed font and the faces built from it.
// Parsing happens once; faces are cached per size for the lifetime of
// a single batch run. Not safe for concurrent use.
type FontSource struct {
	parsed *opentype.Font
	faces  map[int]font.Face
}

// OpenFontSource reads and parses the font file at path. An empty,
// missing or unparseable path yields a source that resolves every size
// to the default face; that is a warning, never an error.
func OpenFontSource(path string) *FontSource {
	src := &FontSource{faces: make(map[int]font.Face)}
	if path == "" {
		return src
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("warning: font %q unavailable, using default face: %v", path, err)
		return src
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		log.Printf("warning: font %q unparseable, using default face: %v", path, err)
		return src
	}
	src.parsed = parsed
	return src
}

// Face returns a face at the given point size together with its origin.
func (s *FontSource) Face(size int) (font.Face, FontOrigin) {
	if s.parsed == nil {
		return basicfont.Face7x13, OriginDefault
	}
	if f, ok := s.faces[size]; ok {
		return f, OriginFile
	}
	f, err := opentype.NewFace(s.parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("warning: cannot build face at size %d, using default face: %v", size, err)
		return basicfont.Face7x13, OriginDefault
	}
	s.faces[size] = f
	return f, OriginFile
}

// FontSet maps each text role to its font source.
type FontSet struct {
	sources map[FontRole]*FontSource
}

// LoadFontSet opens one source per role from the given paths. Roles
// without a path fall back to the default face.
func LoadFontSet(paths map[FontRole]string) *FontSet {
	set := &FontSet{sources: make(map[FontRole]*FontSource, len(Roles))}
	for _, role := range Roles {
		set.sources[role] = OpenFontSource(paths[role])
	}
	return set
}

// Source returns the font source for a role.
func (fs *FontSet) Source(role FontRole) *FontSource {
	return fs.sources[role]
}

// Face resolves a face for the role at the requested size.
func (fs *FontSet) Face(role FontRole, size int) (font.Face, FontOrigin) {
	return fs.sources[role].Face(size)
}
