package images

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	// Decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants
const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatGIF is the GIF image format.
	FormatGIF ImageFormat = "gif"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// ErrUnsupportedFormat is returned when a file's content or extension does not
// map to a format this package can decode or encode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// mimeFormats maps sniffed MIME types to the formats we can decode.
var mimeFormats = map[string]ImageFormat{
	"image/jpeg": FormatJPEG,
	"image/png":  FormatPNG,
	"image/gif":  FormatGIF,
	"image/webp": FormatWebP,
	"image/bmp":  FormatBMP,
	"image/tiff": FormatTIFF,
}

// extensionFormats maps lower-case file extensions to output formats.
var extensionFormats = map[string]ImageFormat{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".webp": FormatWebP,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// DetectFormat sniffs the image format from the leading bytes of data.
//
// Arguments:
//   - data: The raw, still encoded, image bytes.
//
// Returns:
//   - ImageFormat: The detected format.
//   - error: ErrUnsupportedFormat (wrapped with the sniffed MIME type) if the
//     content is not one of the decodable formats.
func DetectFormat(data []byte) (ImageFormat, error) {
	if len(data) == 0 {
		return "", errors.Wrap(ErrUnsupportedFormat, "empty image data")
	}

	mime := mimetype.Detect(data)
	for m, format := range mimeFormats {
		if mime.Is(m) {
			return format, nil
		}
	}

	return "", errors.Wrap(ErrUnsupportedFormat, mime.String())
}

// FormatFromPath returns the output format implied by the extension of path.
// The match is case-insensitive.
func FormatFromPath(path string) (ImageFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := extensionFormats[ext]; ok {
		return format, nil
	}
	if ext == "" {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%s has no extension", path)
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
}
