package images

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/draw"
)

// Checksum generates a deterministic checksum for encoded image bytes, used to
// confirm that repeated runs write identical files.
//
// Arguments:
// - data: The encoded bytes to compute a checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string, or "empty" for no data.
//
// Example:
//
// ```go
//
//	checksum := Checksum(encoded)
//	fmt.Printf("Icon checksum: %s\n", checksum)
//
// ```
func Checksum(data []byte) string {
	if len(data) == 0 {
		return "empty"
	}

	hash := md5.New()
	hash.Write(data)
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// Clone copies img into a new RGBA image whose bounds start at the origin.
func Clone(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
