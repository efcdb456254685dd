package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used by Save when no quality is given.
const DefaultJPEGQuality = 95

// EncodedImage is a rendered image packaged for JSON transport.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CheckOutputPath reports whether Save can encode to path, based on its
// extension.
func CheckOutputPath(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format for %q: %w", path, err)
	}
	return nil
}

// Save writes img to path in the format named by the file extension.
// jpegQuality applies to .jpg/.jpeg output; values outside 1-100 fall back to
// DefaultJPEGQuality.
func Save(img image.Image, path string, jpegQuality int) error {
	if err := CheckOutputPath(path); err != nil {
		return err
	}
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes img as a base64 PNG payload.
func EncodePNGBase64(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
