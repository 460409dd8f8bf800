// Package texture decodes planet and ring images and uploads them to OpenGL.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
)

var (
	// ErrNotFound is returned when no file matches a texture name.
	ErrNotFound = errors.New("texture not found")
	// ErrCorrupt is returned for malformed image data.
	ErrCorrupt = errors.New("corrupt image data")
)

// Extensions lists the file extensions tried, in order, when a texture is
// referenced by bare name.
var Extensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tga"}

// Decode decodes image data. The name is only used to pick the TGA decoder,
// which has no magic number; other formats are sniffed.
func Decode(data []byte, name string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// ToRGBA converts any image to an *image.RGBA anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}

// FlipVertical swaps rows in place so the first row ends up at the bottom,
// matching OpenGL's texture origin.
func FlipVertical(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// FitWithin downsamples img so neither side exceeds maxSize, keeping the
// aspect ratio. Images that already fit, or a non-positive maxSize, are
// returned unchanged.
func FitWithin(img *image.RGBA, maxSize int) *image.RGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	nw, nh := maxSize, maxSize
	if w > h {
		nh = max(1, h*maxSize/w)
	} else {
		nw = max(1, w*maxSize/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Rect, img, img.Rect, draw.Src, nil)
	return dst
}

// Resolve finds the file for a texture name under dir. A name with an
// extension is used as is; a bare name is tried with each of Extensions.
func Resolve(dir, name string) (string, error) {
	if filepath.Ext(name) != "" {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return path, nil
	}
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrNotFound, name, dir)
}

// Load resolves, decodes and prepares a texture for upload: converted to
// RGBA, clamped to maxSize and flipped for OpenGL.
func Load(dir, name string, maxSize int) (*image.RGBA, error) {
	path, err := Resolve(dir, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	img, err := Decode(data, path)
	if err != nil {
		return nil, err
	}
	rgba := FitWithin(ToRGBA(img), maxSize)
	FlipVertical(rgba)
	return rgba, nil
}
