package imp

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToNRGBA converts any image in a non-premultiplied RGBA picture of the same size
func ToNRGBA(src image.Image) *image.NRGBA {
	if dst, ok := src.(*image.NRGBA); ok {
		return dst
	}
	return imaging.Clone(src)
}
