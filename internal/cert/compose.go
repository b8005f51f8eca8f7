package cert

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"strings"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/certgen/internal/roster"
)

// Fixed text colors, matching the printed template palette.
var (
	webinarColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	nameColor    = color.NRGBA{R: 212, G: 160, B: 23, A: 255}
	bodyColor    = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
)

// Compose renders one certificate for row onto a fresh copy of the
// template. Rows are fully independent: nothing here mutates template,
// fonts' face cache aside, and the returned image is flattened opaque.
func Compose(row roster.Row, template image.Image, fonts *FontSet, signaturePath string, cfg Config) *image.NRGBA {
	canvas := imaging.Clone(template)
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()

	// Webinar title, right-aligned near the top.
	webinarFace, _ := fonts.Face(RoleWebinar, cfg.WebinarFontSize)
	ww, _ := Measure(webinarFace, row.Webinar)
	DrawText(canvas, webinarFace, row.Webinar, w-ww-cfg.WebinarRightMargin, cfg.WebinarY, webinarColor)

	// Attendee name, auto-fit and centered.
	nameFace, _ := FitName(fonts.Source(RoleName), row.Name, w-cfg.NameMaxWidthAdjust, cfg)
	nw, nh := Measure(nameFace, row.Name)
	DrawText(canvas, nameFace, row.Name, (w-nw)/2+cfg.NameXAdjust, cfg.NameY, nameColor)

	// Paragraph block, centered line by line below the name.
	paraFace, _ := fonts.Face(RoleParagraph, cfg.ParaFontSize)
	body := expandParagraph(cfg.ParagraphTemplate, row)
	y := cfg.NameY + nh + cfg.ParaTopOffset
	for _, line := range Wrap(paraFace, body, cfg.ParaWrapWidth) {
		lw, lh := Measure(paraFace, line)
		DrawText(canvas, paraFace, line, (w-lw)/2+cfg.ParaXAdjust, y, bodyColor)
		y += lh + cfg.ParaLineSpacing
	}

	// Date line at its fixed position.
	dateFace, _ := fonts.Face(RoleDate, cfg.DateFontSize)
	DrawText(canvas, dateFace, "Date : "+row.Date, cfg.DateX, cfg.DateY, bodyColor)

	canvas = overlaySignature(canvas, signaturePath, w, h)
	canvas = overlayQR(canvas, row, cfg, w, h)

	// Flatten over white so the encoded file carries no transparency.
	flat := imaging.New(w, h, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return imaging.Overlay(flat, canvas, image.Pt(0, 0), 1.0)
}

func expandParagraph(template string, row roster.Row) string {
	return strings.NewReplacer(
		"{NAME}", row.Name,
		"{WEBINAR}", row.Webinar,
		"{DATE}", row.Date,
		"{PRONOUN}", "their",
	).Replace(template)
}

// overlaySignature pastes the signature image bottom-right, scaled down
// to at most 18% of the canvas width with a 5% margin. Any load failure
// is a per-row soft failure: warn and return the canvas unchanged.
func overlaySignature(canvas *image.NRGBA, path string, w, h int) *image.NRGBA {
	if path == "" {
		return canvas
	}
	sig, err := imaging.Open(path)
	if err != nil {
		log.Printf("warning: signature %q skipped: %v", path, err)
		return canvas
	}
	if maxW := w * 18 / 100; sig.Bounds().Dx() > maxW {
		sig = imaging.Resize(sig, maxW, 0, imaging.Lanczos)
	}
	margin := w * 5 / 100
	pt := image.Pt(w-sig.Bounds().Dx()-margin, h-sig.Bounds().Dy()-margin)
	return imaging.Overlay(canvas, sig, pt, 1.0)
}

// overlayQR pastes a verification QR code bottom-left when a verify
// base URL is configured. Failures are soft, like the signature.
func overlayQR(canvas *image.NRGBA, row roster.Row, cfg Config, w, h int) *image.NRGBA {
	if cfg.VerifyBaseURL == "" {
		return canvas
	}
	content := cfg.VerifyBaseURL + "?id=" + ArtifactStem(row)
	data, err := qrcode.Encode(content, qrcode.Medium, w/10)
	if err != nil {
		log.Printf("warning: verification QR skipped: %v", err)
		return canvas
	}
	qr, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("warning: verification QR undecodable, skipped: %v", err)
		return canvas
	}
	margin := w * 5 / 100
	pt := image.Pt(margin, h-qr.Bounds().Dy()-margin)
	return imaging.Overlay(canvas, qr, pt, 1.0)
}
