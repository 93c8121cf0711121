// Package images - Image loading, resampling and encoding utilities.
package images

import (
	"bytes"
	"image"
	"image/color"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// ErrEmptyImage is returned when an operation receives a nil or zero-area raster.
var ErrEmptyImage = errors.New("empty image")

// Image represents a decoded raster together with where it came from.
type Image struct {
	// The path the image was loaded from, empty when decoded from memory.
	Path string `json:"path" yaml:"path"`
	// The format the image was encoded in.
	Format ImageFormat `json:"format" yaml:"format"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
	// The name of the decoded color model, e.g. "YCbCr" for most JPEGs.
	ColorMode string `json:"colorMode" yaml:"colorMode"`
	// The decoded pixels. Treated as read-only once loaded.
	Raster image.Image `json:"-" yaml:"-"`
}

// Size returns the dimensions of the image.
func (i *Image) Size() Size {
	return Size{Width: i.Width, Height: i.Height}
}

// Load reads and decodes the image file at path.
//
// Arguments:
//   - path: Path to an encoded image file.
//
// Returns:
//   - *Image: The decoded image.
//   - error: An error if the file cannot be read or is not a supported image.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}

	img, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	img.Path = path

	return img, nil
}

// Decode sniffs the format of data and decodes it into an Image.
func Decode(data []byte) (*Image, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	var raster image.Image
	switch format {
	case FormatWebP:
		raster, err = webp.Decode(bytes.NewReader(data))
	default:
		raster, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "image decoding failed (%s)", format)
	}

	bounds := raster.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	return &Image{
		Format:    format,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		ColorMode: ColorModeName(raster.ColorModel()),
		Raster:    raster,
	}, nil
}

// ColorModeName returns a short name for the given color model.
func ColorModeName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}

	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.CMYKModel:
		return "CMYK"
	}
	return "unknown"
}
