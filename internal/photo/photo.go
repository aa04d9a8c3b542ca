// Package photo loads meal photos from disk.
package photo

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extensions lists the file extensions the decoders above understand.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// PickerTypes lists Extensions in lower and upper case, for matchers that
// compare suffixes exactly. Camera files are commonly named IMG_0001.JPG.
func PickerTypes() []string {
	out := make([]string, 0, 2*len(Extensions))
	for _, ext := range Extensions {
		out = append(out, ext, strings.ToUpper(ext))
	}
	return out
}

var ErrUnsupported = errors.New("unsupported image type")

// Photo is a decoded image together with where it came from.
type Photo struct {
	Path   string
	Format string
	Image  image.Image
}

func (p *Photo) Width() int {
	if p == nil || p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dx()
}

func (p *Photo) Height() int {
	if p == nil || p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dy()
}

// Supported reports whether path has one of Extensions.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load decodes the image at path.
func Load(path string) (*Photo, error) {
	if !Supported(path) {
		return nil, fmt.Errorf("load %s: %w", path, ErrUnsupported)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &Photo{Path: path, Format: format, Image: img}, nil
}

// Thumbnail scales the photo to fit within w x h pixels, keeping the aspect
// ratio. It returns nil for an empty photo or a non-positive box.
func (p *Photo) Thumbnail(w, h int) image.Image {
	if p == nil || p.Image == nil || w <= 0 || h <= 0 {
		return nil
	}
	src := p.Image.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 {
		return nil
	}
	tw, th := fit(src.Dx(), src.Dy(), w, h)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), p.Image, src, draw.Src, nil)
	return dst
}

func fit(sw, sh, w, h int) (int, int) {
	if sw*h > sh*w {
		return w, max(1, sh*w/sw)
	}
	return max(1, sw*h/sh), h
}
