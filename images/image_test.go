package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadJPEG(t *testing.T) {
	path := writeFile(t, "elon.jpg", getJPEGBytes(t))

	img, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, img.Path)
	assert.Equal(t, FormatJPEG, img.Format)
	assert.Equal(t, 100, img.Width)
	assert.Equal(t, 100, img.Height)
	assert.Equal(t, Square(100), img.Size())
	assert.Equal(t, "YCbCr", img.ColorMode)
	require.NotNil(t, img.Raster)
	assert.Equal(t, 100, img.Raster.Bounds().Dx())
}

func TestLoadSniffsContentNotExtension(t *testing.T) {
	// A PNG saved under a .jpg name still loads.
	path := writeFile(t, "elon.jpg", getPNGBytes(t))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, img.Format)
}

func TestLoadGrayscaleJPEG(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 40, 30))
	for i := range gray.Pix {
		gray.Pix[i] = 200
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gray, nil))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Gray", img.ColorMode)
	assert.Equal(t, Size{Width: 40, Height: 30}, img.Size())
}

func TestLoadMissingFile(t *testing.T) {
	img, err := Load(filepath.Join(t.TempDir(), "elon.jpg"))
	assert.Error(t, err)
	assert.Nil(t, img)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "error should wrap fs.ErrNotExist: %v", err)
}

func TestLoadInvalidData(t *testing.T) {
	path := writeFile(t, "elon.jpg", []byte("definitely not a jpeg"))

	img, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, img)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadTruncatedImage(t *testing.T) {
	data := getJPEGBytes(t)
	path := writeFile(t, "elon.jpg", data[:len(data)/3])

	img, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, img)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat), "truncated JPEG is sniffed as JPEG and fails to decode")
	assert.Contains(t, err.Error(), "image decoding failed")
}

func TestColorModeName(t *testing.T) {
	tests := []struct {
		model color.Model
		want  string
	}{
		{color.RGBAModel, "RGBA"},
		{color.NRGBAModel, "NRGBA"},
		{color.GrayModel, "Gray"},
		{color.Gray16Model, "Gray16"},
		{color.YCbCrModel, "YCbCr"},
		{color.CMYKModel, "CMYK"},
		{color.Palette{color.Black, color.White}, "Paletted"},
		{color.ModelFunc(func(c color.Color) color.Color { return c }), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorModeName(tt.model))
		})
	}
}
