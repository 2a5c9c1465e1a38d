package wlw

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage loads the image file at path into a Texture, keeping the image's channel count: grayscale images load
// as one channel, opaque color images as three, and everything else as four. PNG, JPEG, GIF, BMP, TIFF, WebP and TGA
// files are supported.
// If the file cannot be read or decoded, LoadImage logs the reason once and returns nil.
func LoadImage(path string) *Texture {
	texture, err := ReadImage(path)
	if err != nil {
		logger.Error("failed to load image", "path", path, "err", err)
		return nil
	}
	return texture
}

// ReadImage is LoadImage returning the failure instead of logging it.
func ReadImage(path string) (*Texture, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wlw: read image %s: %w", path, err)
	}

	texture, err := DecodeImage(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("wlw: decode image %s: %w", path, err)
	}

	return texture, nil

}

// DecodeImage decodes an encoded image in any of the formats LoadImage supports.
func DecodeImage(r io.Reader) (*Texture, error) {

	img, _, err := image.Decode(r)
	if err != nil {
		if err == image.ErrFormat {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, err
	}

	return NewTextureFromImage(img), nil

}
