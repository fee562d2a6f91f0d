package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf
}

func TestProcessImportKeepsSmallImages(t *testing.T) {
	src := encodeTestImage(t, 400, 300)

	data, dims, err := ProcessImport(src, 1920)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, 400, dims.Width)
	assert.Equal(t, 300, dims.Height)
}

func TestProcessImportDownscalesWideImages(t *testing.T) {
	src := encodeTestImage(t, 2400, 1200)

	_, dims, err := ProcessImport(src, 1920)
	require.NoError(t, err)
	assert.Equal(t, 1920, dims.Width)
	assert.Equal(t, 960, dims.Height)
}

func TestProcessImportRejectsGarbage(t *testing.T) {
	_, _, err := ProcessImport(bytes.NewReader([]byte("not an image")), 1920)
	assert.Error(t, err)
}

func TestThumbnailIsSquare(t *testing.T) {
	src := encodeTestImage(t, 640, 480)

	data, err := Thumbnail(src, 150)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestIsImageFilename(t *testing.T) {
	assert.True(t, IsImageFilename("DSC_0001.JPG"))
	assert.True(t, IsImageFilename("photo.png"))
	assert.False(t, IsImageFilename("notes.txt"))
	assert.False(t, IsImageFilename("archive.mp4"))
}
