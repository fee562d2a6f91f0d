package utils

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Dimensions holds pixel width and height of an imported image.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsImageFilename reports whether a filename looks like a photo the gallery
// can serve.
func IsImageFilename(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// ProcessImport decodes an uploaded photo, downscales it when it is wider
// than maxWidth (aspect ratio preserved) and re-encodes it as JPEG. The
// returned dimensions are those of the stored image.
func ProcessImport(input io.Reader, maxWidth int) ([]byte, *Dimensions, error) {
	src, err := imaging.Decode(input, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %v", err)
	}

	if maxWidth > 0 && src.Bounds().Dx() > maxWidth {
		src = imaging.Resize(src, maxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, src, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, nil, fmt.Errorf("failed to encode image: %v", err)
	}

	bounds := src.Bounds()
	return buf.Bytes(), &Dimensions{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// Thumbnail renders a square preview used by the studio dashboard grid.
func Thumbnail(input io.Reader, size int) ([]byte, error) {
	src, err := imaging.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}

	thumb := imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %v", err)
	}
	return buf.Bytes(), nil
}
