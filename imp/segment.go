package imp

import (
	"errors"
	"image"
	"image/color"
)

// Level is the channel value every channel must exceed for a pixel to count
// as background.
const Level = 200

var (
	Foreground = color.NRGBA{255, 255, 255, 255}
	Background = color.NRGBA{255, 255, 255, 0}
)

// Stats counts the pixels of each class seen by Recolor.
type Stats struct {
	Foreground int
	Background int
}

// Total returns the number of pixels processed.
func (s Stats) Total() int {
	return s.Foreground + s.Background
}

// IsBackground tells whether a pixel is light enough to be background.
// Alpha is ignored.
func IsBackground(c color.NRGBA) bool {
	return c.R > Level && c.G > Level && c.B > Level
}

// Recolor turns light pixels into transparent white and everything else into
// opaque white. src and dst may be the same image.
func Recolor(src, dst *image.NRGBA) (Stats, error) {
	var stats Stats
	if src.Bounds() != dst.Bounds() {
		return stats, errors.New("src and dst should have the same bounds")
	}

	rect := src.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if IsBackground(src.NRGBAAt(x, y)) {
				dst.SetNRGBA(x, y, Background)
				stats.Background++
			} else {
				dst.SetNRGBA(x, y, Foreground)
				stats.Foreground++
			}
		}
	}
	return stats, nil
}
