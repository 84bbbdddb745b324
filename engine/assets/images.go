package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageSize decodes only the header of a texture to find its natural pixel size.
func (l *Loader) ImageSize(id string) (w, h int, err error) {
	f, p, err := l.open("textures", id)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode config %q: %w", p, err)
	}
	return cfg.Width, cfg.Height, nil
}

// LoadImage fully decodes a texture.
func (l *Loader) LoadImage(id string) (image.Image, error) {
	f, p, err := l.open("textures", id)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", p, err)
	}
	return img, nil
}

// LoadRGBA returns width, height, and tightly packed RGBA8 pixels (row-major, top-left origin).
func (l *Loader) LoadRGBA(id string) (w, h int, rgba []byte, err error) {
	img, err := l.LoadImage(id)
	if err != nil {
		return 0, 0, nil, err
	}
	w, h, rgba = PackRGBA(img)
	return w, h, rgba, nil
}

// PackRGBA converts img to tight RGBA8 rows (stride == 4*w).
func PackRGBA(img image.Image) (w, h int, rgba []byte) {
	m := ToRGBA(img)
	w, h = m.Bounds().Dx(), m.Bounds().Dy()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
	}
	return w, h, out
}

// ToRGBA returns img as a zero-origin *image.RGBA, converting when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
