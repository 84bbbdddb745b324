// Package text measures strings and draws them through the primitive renderer.
package text

import (
	"fmt"

	"github.com/hubastard/overlay/engine/gfx/render"
	"github.com/hubastard/overlay/engine/logging"
)

// maxCachedStrings bounds the uploaded string set; past it the set is dropped
// and strings are uploaded again on demand under the same ids.
const maxCachedStrings = 512

// Painter draws strings as textured quads. Each distinct string is
// rasterized once and uploaded to the surface under a stable id.
type Painter struct {
	face     *Face
	prefix   string
	uploaded map[string]string // string -> texture id
}

func NewPainter(face *Face) *Painter {
	p := &Painter{face: face, uploaded: make(map[string]string)}
	p.prefix = fmt.Sprintf("text:%p:", p)
	return p
}

func (p *Painter) Face() *Face            { return p.face }
func (p *Painter) Height() float64        { return p.face.Height() }
func (p *Painter) Width(s string) float64 { return p.face.Width(s) }

// DrawString draws s with its top-left corner at (x, y) in packed ARGB color.
// A shadow is a darker copy offset by one pixel down-right.
func (p *Painter) DrawString(r *render.Renderer, s string, x, y float64, color uint32, shadow bool) {
	if s == "" {
		return
	}
	id, ok := p.texture(r, s)
	if !ok {
		return
	}
	w, h := p.face.Width(s), p.face.Height()
	if shadow {
		r.DrawTexture(id, x+1, y+1, w, h, ShadowOf(color))
	}
	r.DrawTexture(id, x, y, w, h, color)
}

func (p *Painter) texture(r *render.Renderer, s string) (string, bool) {
	if id, ok := p.uploaded[s]; ok {
		return id, true
	}
	if len(p.uploaded) >= maxCachedStrings {
		clear(p.uploaded)
	}
	id := p.prefix + s
	if err := r.Surface().UploadTexture(id, p.face.Rasterize(s)); err != nil {
		logging.Logger().Warn("text upload failed", "text", s, "err", err)
		return "", false
	}
	p.uploaded[s] = id
	return id, true
}

// ShadowOf darkens a packed ARGB color to a quarter of its brightness,
// keeping alpha.
func ShadowOf(color uint32) uint32 {
	return (color&0xFCFCFC)>>2 | color&0xFF000000
}
