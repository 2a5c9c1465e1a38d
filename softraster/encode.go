package softraster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// EncodeWebP writes img to w as a lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// EncodePNG writes img to w as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Save writes img to path, as a WebP or PNG depending on format ("webp" or "png"). An empty format is taken from
// the file extension.
func Save(path, format string, img image.Image) error {

	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	var encode func(io.Writer, image.Image) error
	switch format {
	case "webp":
		encode = EncodeWebP
	case "png":
		encode = EncodePNG
	default:
		return fmt.Errorf("softraster: save %s: unknown format %q", path, format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("softraster: save %s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("softraster: save %s: %w", path, err)
	}

	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("softraster: encode %s: %w", path, err)
	}

	return f.Close()

}

// Downsample scales img down by factor with Catmull-Rom filtering. Rendering at a multiple of the output size and
// downsampling gives anti-aliased snapshots.
func Downsample(img *image.NRGBA, factor int) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, max(b.Dx()/factor, 1), max(b.Dy()/factor, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
