package text

import (
	"fmt"
	"image"

	"github.com/hubastard/overlay/engine/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face measures and rasterizes strings with a single font face.
type Face struct {
	face      font.Face
	ascent    int
	height    int
	closeFace func() error
}

// NewBasic returns the built-in 7x13 bitmap face; it needs no assets.
func NewBasic() *Face { return newFace(basicfont.Face7x13, nil) }

// LoadTTF loads fonts/<name> from the asset root at sizePx pixels.
func LoadTTF(l *assets.Loader, name string, sizePx float64) (*Face, error) {
	data, err := l.ReadFont(name)
	if err != nil {
		return nil, err
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return newFace(face, face.Close), nil
}

func newFace(face font.Face, closeFn func() error) *Face {
	m := face.Metrics()
	return &Face{
		face:      face,
		ascent:    m.Ascent.Ceil(),
		height:    (m.Ascent + m.Descent).Ceil(),
		closeFace: closeFn,
	}
}

func (f *Face) Close() error {
	if f == nil || f.closeFace == nil {
		return nil
	}
	err := f.closeFace()
	f.closeFace = nil
	return err
}

// Height is the line height in pixels (ascent + descent).
func (f *Face) Height() float64 { return float64(f.height) }

// Width is the advance width of s in pixels.
func (f *Face) Width(s string) float64 {
	return float64(font.MeasureString(f.face, s).Ceil())
}

// Rasterize draws s in white onto a transparent image sized to the string.
// Callers tint it through vertex colors.
func (f *Face) Rasterize(s string) *image.RGBA {
	w := int(f.Width(s))
	if w == 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, f.height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	d.DrawString(s)
	return img
}
