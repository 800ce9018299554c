// Package logo turns a dark logo on a light background into a white logo on a
// transparent background.
package logo

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/ArnaudCalmettes/whitelogo/imp"
)

// Process reads the image at inputPath, makes its light pixels transparent
// and every other pixel opaque white, then writes the result to outputPath as
// a PNG.
//
// Running it again on its own output makes the whole image transparent, since
// opaque white is itself light.
func Process(inputPath, outputPath string) (imp.Stats, error) {
	img, err := imp.ReadFile(inputPath)
	if err != nil {
		return imp.Stats{}, &Error{Kind: Decode, Path: inputPath, Err: err}
	}

	src := imp.ToNRGBA(img)
	dst := image.NewNRGBA(src.Bounds())
	stats, err := imp.Recolor(src, dst)
	if err != nil {
		return stats, err
	}

	if err := imp.SavePNG(outputPath, dst); err != nil {
		return stats, &Error{Kind: Encode, Path: outputPath, Err: err}
	}
	return stats, nil
}

// DefaultOutput returns the path Process writes to when none is given:
// "<name>-processed.png" next to the input.
func DefaultOutput(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), base+"-processed.png")
}
