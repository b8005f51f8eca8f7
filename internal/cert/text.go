package cert

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measure returns the pixel extents of text rendered with face, taken
// from the glyph bounding box of the whole string so kerning is
// respected. A degenerate box (whitespace-only text, or a face without
// outline metrics) falls back to the advance width and line metrics.
func Measure(face font.Face, text string) (int, int) {
	bounds, adv := font.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		m := face.Metrics()
		return adv.Ceil(), (m.Ascent + m.Descent).Ceil()
	}
	return w, h
}

// Wrap greedily packs words into lines no wider than maxWidth pixels.
// A single word wider than maxWidth is emitted as its own overflowing
// line, never split.
func Wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	cur := ""
	for _, word := range strings.Fields(text) {
		test := word
		if cur != "" {
			test = cur + " " + word
		}
		if w, _ := Measure(face, test); w <= maxWidth {
			cur = test
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// DrawText draws text with the top-left corner of its inked bounding
// box at (x, y).
func DrawText(dst draw.Image, face font.Face, text string, x, y int, col color.Color) {
	bounds, _ := font.BoundString(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	d.DrawString(text)
}
