package imp

import (
	"bytes"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// WebP isn't handled by imaging.
	_ "golang.org/x/image/webp"
)

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// ReadBytes reads an image from raw bytes.
func ReadBytes(data []byte) (image.Image, error) {
	return Read(bytes.NewReader(data))
}

// Read reads an image from a io.Reader.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Encode writes an image to w as a PNG.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// SavePNG writes an image to a file as a PNG, whatever its extension.
// The file is only created once the image has been successfully encoded.
func SavePNG(filename string, img image.Image) error {
	var b bytes.Buffer
	if err := Encode(&b, img); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
