package images

import (
	"image"

	"github.com/nfnt/resize"
)

// Resize resamples img to exactly the given size using Lanczos3.
//
// The aspect ratio of the source is not preserved: a 200x100 source resized to
// 16x16 is squashed horizontally. When downscaling the kernel is widened by
// the scale factor, so every source pixel contributes to the output (area-correct,
// anti-aliased). The source raster is never modified.
//
// Arguments:
//   - img: The source image to resize.
//   - size: The target size. Both dimensions must be positive.
//
// Returns:
//   - image.Image: A new image of exactly size.Width x size.Height pixels.
//   - error: ErrInvalidSize or ErrEmptyImage.
//
// @example
// icon, err := Resize(src, Square(48))
func Resize(img image.Image, size Size) (image.Image, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	// nfnt/resize hands back the input itself when no scaling is needed.
	if img.Bounds().Dx() == size.Width && img.Bounds().Dy() == size.Height {
		return Clone(img), nil
	}

	return resize.Resize(uint(size.Width), uint(size.Height), img, resize.Lanczos3), nil
}
