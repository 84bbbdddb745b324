// Package soft rasterizes primitives on the CPU with gogpu/gg, for headless
// panel snapshots.
package soft

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/hubastard/overlay/engine/assets"
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/logging"
	"golang.org/x/image/draw"
)

// Surface implements core.Backend over a gg canvas sized in physical pixels.
// Vertices arrive in logical units and are scaled on the way in; the
// canvas transform stays at identity.
type Surface struct {
	dc     *gg.Context
	scale  float64
	assets *assets.Loader

	textures map[string]*gg.ImageBuf
	sources  map[string]*image.RGBA
	tinted   map[tintKey]*gg.ImageBuf
	blend    bool
	scissor  *core.ScissorRect
	draws    int
}

// NewSurface creates a canvas of width x height logical units at scale.
// loader may be nil when no asset textures are drawn.
func NewSurface(width, height int, scale float64, loader *assets.Loader) *Surface {
	s := &Surface{
		assets:   loader,
		textures: map[string]*gg.ImageBuf{},
		sources:  map[string]*image.RGBA{},
		tinted:   map[tintKey]*gg.ImageBuf{},
	}
	s.Resize(int(math.Round(float64(width)*scale)), int(math.Round(float64(height)*scale)), scale)
	return s
}

func (s *Surface) Resize(fbW, fbH int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if s.dc != nil {
		_ = s.dc.Close()
	}
	s.dc = gg.NewContext(max(fbW, 1), max(fbH, 1))
	s.scale = scale
	s.scissor = nil
}

func (s *Surface) Clear(c colors.Color) {
	s.dc.ClearWithColor(gg.RGBA{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])})
	s.draws = 0
}

func (s *Surface) Shutdown() {
	if s.dc != nil {
		_ = s.dc.Close()
	}
}

func (s *Surface) ScaleFactor() float64 { return s.scale }
func (s *Surface) ScaledHeight() int    { return int(float64(s.dc.Height()) / s.scale) }

// SetBlend is tracked only; gg always composites source-over.
func (s *Surface) SetBlend(enabled bool) { s.blend = enabled }
func (s *Surface) Blending() bool        { return s.blend }

// Draws counts primitives rasterized since the last Clear.
func (s *Surface) Draws() int { return s.draws }

// EnableScissor converts the bottom-left physical rectangle back to the
// canvas's top-left origin.
func (s *Surface) EnableScissor(r core.ScissorRect) {
	s.scissor = &r
	s.dc.ResetClip()
	top := float64(s.dc.Height()) - float64(r.Y+r.H)
	s.dc.ClipRect(float64(r.X), top, float64(r.W), float64(r.H))
}

func (s *Surface) DisableScissor() {
	s.scissor = nil
	s.dc.ResetClip()
}

func (s *Surface) Draw(p core.Primitive) {
	if len(p.Vertices) < 3 {
		return
	}
	s.draws++
	if p.Texture != "" {
		s.drawTextured(p)
		return
	}

	c := p.Vertices[0].Color
	s.dc.SetRGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
	switch p.Mode {
	case core.ModeTriangleFan:
		s.polygon(p.Vertices)
	default:
		for i := 0; i+2 < len(p.Vertices); i += 3 {
			s.polygon(p.Vertices[i : i+3])
		}
	}
	if err := s.dc.Fill(); err != nil {
		logging.Logger().Warn("soft fill failed", "mode", p.Mode, "err", err)
	}
}

func (s *Surface) polygon(vs []core.Vertex) {
	s.dc.MoveTo(float64(vs[0].X)*s.scale, float64(vs[0].Y)*s.scale)
	for _, v := range vs[1:] {
		s.dc.LineTo(float64(v.X)*s.scale, float64(v.Y)*s.scale)
	}
	s.dc.ClosePath()
}

// drawTextured blits the texture, modulated by the first vertex color, into
// the bounding box of the vertices. Only axis-aligned quads are produced by
// the renderer.
func (s *Surface) drawTextured(p core.Primitive) {
	img, ok := s.tint(p.Texture, p.Vertices[0].Color)
	if !ok {
		logging.Logger().Warn("draw with unbound texture", "id", p.Texture)
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range p.Vertices {
		minX, maxX = math.Min(minX, float64(v.X)), math.Max(maxX, float64(v.X))
		minY, maxY = math.Min(minY, float64(v.Y)), math.Max(maxY, float64(v.Y))
	}
	s.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:         minX * s.scale,
		Y:         minY * s.scale,
		DstWidth:  (maxX - minX) * s.scale,
		DstHeight: (maxY - minY) * s.scale,
		Opacity:   1,
	})
}

// maxTinted bounds the tinted copy cache; text colors are few in practice.
const maxTinted = 256

type tintKey struct {
	id   string
	tint colors.Color
}

// tint returns the texture multiplied by c, the same modulation the GL
// fragment shader applies. White returns the texture unchanged.
func (s *Surface) tint(id string, c colors.Color) (*gg.ImageBuf, bool) {
	base, ok := s.textures[id]
	if !ok {
		return nil, false
	}
	if c == colors.White {
		return base, true
	}
	key := tintKey{id, c}
	if buf, ok := s.tinted[key]; ok {
		return buf, true
	}
	src := s.sources[id]
	// Pixels are premultiplied, so the color channels also take the alpha.
	a := float64(c[3])
	mul := [4]float64{float64(c[0]) * a, float64(c[1]) * a, float64(c[2]) * a, a}
	dst := image.NewRGBA(src.Rect)
	for i := 0; i+3 < len(src.Pix); i += 4 {
		for ch, m := range mul {
			dst.Pix[i+ch] = uint8(math.Round(float64(src.Pix[i+ch]) * m))
		}
	}
	if len(s.tinted) >= maxTinted {
		clear(s.tinted)
	}
	buf := gg.ImageBufFromImage(dst)
	s.tinted[key] = buf
	return buf, true
}

func (s *Surface) store(id string, img image.Image) {
	src := image.NewRGBA(img.Bounds())
	draw.Draw(src, src.Rect, img, img.Bounds().Min, draw.Src)
	s.sources[id] = src
	s.textures[id] = gg.ImageBufFromImage(src)
	for k := range s.tinted {
		if k.id == id {
			delete(s.tinted, k)
		}
	}
}

func (s *Surface) BindTexture(id string) error {
	if _, ok := s.textures[id]; ok {
		return nil
	}
	if s.assets == nil {
		return fmt.Errorf("texture %q: no asset loader", id)
	}
	img, err := s.assets.LoadImage(id)
	if err != nil {
		return err
	}
	s.store(id, img)
	return nil
}

func (s *Surface) UploadTexture(id string, img image.Image) error {
	if img.Bounds().Empty() {
		return fmt.Errorf("texture %q: empty image", id)
	}
	s.store(id, img)
	return nil
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the canvas to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %q: %w", path, err)
	}
	return nil
}
