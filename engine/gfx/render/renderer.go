// Package render draws filled, rounded, circular and textured primitives
// onto a core.Surface without any pre-rasterized assets.
package render

import (
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
)

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls      int
	VertexCount    int
	TexturedDraws  int
	ScissorChanges int
}

// Renderer emits primitives in the current transform space. It keeps no
// global state; callers pass it to everything that draws.
type Renderer struct {
	s     core.Surface
	dims  *DimensionCache
	stack []Mat4
	stats Statistics

	// scratch is reused between calls; surfaces must not retain Vertices.
	scratch []core.Vertex
}

// New creates a renderer over s. sizes resolves natural texture dimensions;
// it may be nil when textured drawing is not used.
func New(s core.Surface, sizes SizeResolver) *Renderer {
	return &Renderer{
		s:       s,
		dims:    NewDimensionCache(sizes),
		stack:   []Mat4{Identity()},
		scratch: make([]core.Vertex, 0, 256),
	}
}

func (r *Renderer) Surface() core.Surface { return r.s }

// Dimensions exposes the texture-dimension cache.
func (r *Renderer) Dimensions() *DimensionCache { return r.dims }

// BeginFrame resets the transform stack and frame statistics.
func (r *Renderer) BeginFrame() {
	r.stack = r.stack[:1]
	r.stack[0] = Identity()
	r.stats = Statistics{}
}

// EndFrame clears any scissor left enabled by the frame.
func (r *Renderer) EndFrame() { r.s.DisableScissor() }

// Stats returns the current frame statistics snapshot.
func (r *Renderer) Stats() Statistics { return r.stats }

// --- transform stack ---

func (r *Renderer) top() Mat4 { return r.stack[len(r.stack)-1] }

func (r *Renderer) Push() { r.stack = append(r.stack, r.top()) }

func (r *Renderer) Pop() {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Transform returns the current transform.
func (r *Renderer) Transform() Mat4 { return r.top() }

func (r *Renderer) Translate(x, y float64) {
	r.stack[len(r.stack)-1] = r.top().Mul(Translation(float32(x), float32(y), 0))
}

func (r *Renderer) Scale(s float64) {
	r.stack[len(r.stack)-1] = r.top().Mul(Scaling(float32(s), float32(s), 1))
}

// ScaleAbout scales by s keeping (x, y) fixed.
func (r *Renderer) ScaleAbout(x, y, s float64) {
	r.Translate(x, y)
	r.Scale(s)
	r.Translate(-x, -y)
}

// --- emission ---

func (r *Renderer) begin() { r.scratch = r.scratch[:0] }

func (r *Renderer) vertex(x, y float64, c colors.Color) {
	r.vertexUV(x, y, 0, 0, c)
}

func (r *Renderer) vertexUV(x, y float64, u, v float32, c colors.Color) {
	tx, ty := r.top().Apply(float32(x), float32(y))
	r.scratch = append(r.scratch, core.Vertex{X: tx, Y: ty, U: u, V: v, Color: c})
}

// flush submits the scratch vertices with blending enabled for the call only.
func (r *Renderer) flush(mode core.DrawMode, texture string) {
	if len(r.scratch) == 0 {
		return
	}
	r.s.SetBlend(true)
	r.s.Draw(core.Primitive{Mode: mode, Vertices: r.scratch, Texture: texture})
	r.s.SetBlend(false)

	r.stats.DrawCalls++
	r.stats.VertexCount += len(r.scratch)
	if texture != "" {
		r.stats.TexturedDraws++
	}
}
