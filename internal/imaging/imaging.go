// Package imaging validates uploaded images and downsizes oversized ones
// before they are sent to the image host.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
)

const jpegQuality = 85

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

var extensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// Processor checks and resizes images.
type Processor struct {
	maxWidth  int
	maxBytes  int64
	maxPixels int64
}

// NewProcessor creates a processor that rejects files above maxBytes or
// declaring more than maxPixels pixels, and scales images wider than
// maxWidth down to it. A zero limit disables that check.
func NewProcessor(maxWidth int, maxBytes, maxPixels int64) *Processor {
	return &Processor{maxWidth: maxWidth, maxBytes: maxBytes, maxPixels: maxPixels}
}

// Prepare returns the upload ready to store. Its content type and extension
// come from the decoded data rather than the client. Images within the width
// limit keep their original bytes.
func (p *Processor) Prepare(u *models.Upload) (*models.Upload, error) {
	if p.maxBytes > 0 && int64(len(u.Data)) > p.maxBytes {
		return nil, apperrors.ErrImageTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(u.Data))
	if err != nil {
		return nil, apperrors.ErrInvalidImage
	}
	contentType, ok := contentTypes[format]
	if !ok || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, apperrors.ErrInvalidImage
	}
	// The header is checked before decoding, which allocates the full bitmap.
	// A resized image never has more pixels than its source.
	if p.maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > p.maxPixels {
		return nil, apperrors.ErrImageDimensions
	}

	if p.maxWidth <= 0 || cfg.Width <= p.maxWidth {
		return &models.Upload{
			Filename:    u.Filename,
			ContentType: contentType,
			Ext:         extensions[format],
			Data:        u.Data,
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(u.Data))
	if err != nil {
		return nil, apperrors.ErrInvalidImage
	}

	data, format, err := p.resize(img, format)
	if err != nil {
		return nil, err
	}
	return &models.Upload{
		Filename:    u.Filename,
		ContentType: contentTypes[format],
		Ext:         extensions[format],
		Data:        data,
	}, nil
}

// resize scales img to the maximum width. PNG stays PNG to keep
// transparency; everything else is re-encoded as JPEG.
func (p *Processor) resize(img image.Image, format string) ([]byte, string, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newH := h * p.maxWidth / w
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, dst); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "png", nil
	}
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "jpeg", nil
}
