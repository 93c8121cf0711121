package images

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// imagingFormats maps formats to the encoders provided by imaging. WebP is
// handled separately.
var imagingFormats = map[ImageFormat]imaging.Format{
	FormatJPEG: imaging.JPEG,
	FormatPNG:  imaging.PNG,
	FormatGIF:  imaging.GIF,
	FormatBMP:  imaging.BMP,
	FormatTIFF: imaging.TIFF,
}

// Encode writes img to w in the given format. PNG output uses the default
// compression level and is deterministic for identical input.
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}

	if format == FormatWebP {
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	}

	f, ok := imagingFormats[format]
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "cannot encode %q", format)
	}

	return imaging.Encode(w, img, f,
		imaging.JPEGQuality(95),
		imaging.PNGCompressionLevel(png.DefaultCompression),
	)
}

// Save encodes img in the format implied by the extension of path and writes it
// to path, replacing any existing file.
//
// Arguments:
//   - path: Destination file path. Its extension selects the encoder.
//   - img: The image to write.
//
// Returns:
//   - []byte: The encoded bytes that were written.
//   - error: An error if the extension is unknown, encoding fails, or the file
//     cannot be written.
func Save(path string, img image.Image) ([]byte, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, errors.Wrap(err, "failed to write image")
	}

	return buf.Bytes(), nil
}
