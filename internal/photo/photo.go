// Package photo normalizes uploaded card photos into square assets.
package photo

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register webp decoding
)

const (
	maxDimension = 400
	jpegQuality  = 85
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// Allowed checks the upload filename against the extension allow-list.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Asset is a normalized photo held in memory until the owning card
// row is committed.
type Asset struct {
	Ext  string // includes the leading dot
	Data []byte
}

// Filename combines the owning card id with the asset extension.
func (a *Asset) Filename(cardID string) string {
	return cardID + a.Ext
}

// Normalize decodes an uploaded image, flattens transparency onto
// white, downscales it so neither side exceeds 400px and center-crops
// to a square. It returns a nil asset with a nil error when the upload
// has no name or an extension outside the allow-list. Nothing touches
// storage here, the caller persists the asset once the card row is in.
func Normalize(r io.Reader, originalName string) (*Asset, error) {
	if originalName == "" || !Allowed(originalName) {
		return nil, nil
	}

	img, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = flatten(img)

	if img.Bounds().Dx() > maxDimension || img.Bounds().Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() {
		side := b.Dx()
		if b.Dy() < side {
			side = b.Dy()
		}
		img = imaging.CropCenter(img, side, side)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == ".webp" {
		// webp decoding is supported but encoding is not, store as JPEG
		ext = ".jpg"
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("unsupported image format %s: %w", ext, err)
	}

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Asset{Ext: ext, Data: buf.Bytes()}, nil
}

// Save writes a normalized asset under dir in a single write.
func Save(dir, filename string, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	return nil
}

// Remove deletes a stored photo file, ignoring files already gone.
func Remove(dir, filename string) error {
	if filename == "" {
		return nil
	}

	err := os.Remove(filepath.Join(dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}

	return nil
}

// MimeType maps a stored photo filename to its content type.
func MimeType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// flatten composites images that carry transparency onto a white
// background, JPEG output has no alpha channel.
func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}

	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.OverlayCenter(bg, img, 1.0)
}
