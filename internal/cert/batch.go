package cert

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/mholt/archives"

	"github.com/youruser/certgen/internal/roster"
	"github.com/youruser/certgen/internal/util"
)

// ArchiveName is the fixed name of the bundle written after a batch.
const ArchiveName = "certificates.zip"

// ArtifactStem derives the per-row output filename stem. Rows that
// differ in any field produce distinct stems.
func ArtifactStem(row roster.Row) string {
	return Sanitize(row.Webinar) + "_" + Sanitize(row.Date) + "_" + Sanitize(row.Name)
}

// RenderBatch renders every roster row in order, persists each image
// under outDir and packs all artifacts into certificates.zip. It
// returns the ordered artifact paths and the archive path.
//
// Processing is sequential. A failed save aborts the batch and keeps
// the artifacts already written; no archive is produced in that case.
func RenderBatch(rows []roster.Row, template image.Image, fonts *FontSet, signaturePath, outDir string, cfg Config) ([]string, string, error) {
	if err := util.EnsureDir(outDir); err != nil {
		return nil, "", fmt.Errorf("creating output dir %s: %w", outDir, err)
	}

	ext := cfg.Extension()
	created := make([]string, 0, len(rows))
	for _, row := range rows {
		img := Compose(row, template, fonts, signaturePath, cfg)
		path := filepath.Join(outDir, ArtifactStem(row)+"."+ext)
		if err := saveImage(path, img, cfg); err != nil {
			return nil, "", fmt.Errorf("saving %s: %w", path, err)
		}
		created = append(created, path)
	}

	zipPath := filepath.Join(outDir, ArchiveName)
	if err := packArchive(zipPath, created); err != nil {
		return nil, "", fmt.Errorf("packing %s: %w", zipPath, err)
	}
	return created, zipPath, nil
}

func saveImage(path string, img image.Image, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch cfg.Extension() {
	case "jpeg", "jpg":
		err = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(cfg.JPEGQuality))
	default:
		err = imaging.Encode(f, img, imaging.PNG)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// packArchive writes a deflate zip whose entries are the base names of
// the given files.
func packArchive(zipPath string, files []string) error {
	ctx := context.Background()

	names := make(map[string]string, len(files))
	for _, f := range files {
		names[f] = filepath.Base(f)
	}
	list, err := archives.FilesFromDisk(ctx, nil, names)
	if err != nil {
		return err
	}

	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	if err := (archives.Zip{}).Archive(ctx, out, list); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
