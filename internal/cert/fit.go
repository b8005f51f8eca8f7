package cert

import "golang.org/x/image/font"

// FitName picks the face for the attendee name. A positive force size
// skips the search entirely. Otherwise candidate sizes are probed in
// descending order from max to min and the first whose rendered width
// is <= maxWidth wins. If nothing fits, the minimum size is used and
// the overflow accepted.
//
// Rendered width is not monotonic in point size once hinting rounds
// glyph advances, so this stays a linear probe rather than a binary
// search.
func FitName(src *FontSource, name string, maxWidth int, cfg Config) (font.Face, int) {
	if cfg.NameForceSize > 0 {
		f, _ := src.Face(cfg.NameForceSize)
		return f, cfg.NameForceSize
	}
	for size := cfg.NameMaxSize; size >= cfg.NameMinSize; size-- {
		f, _ := src.Face(size)
		if w, _ := Measure(f, name); w <= maxWidth {
			return f, size
		}
	}
	f, _ := src.Face(cfg.NameMinSize)
	return f, cfg.NameMinSize
}
