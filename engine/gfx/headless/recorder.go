// Package headless provides a Surface that records submissions instead of
// drawing them, for tests and geometry inspection.
package headless

import (
	"fmt"
	"image"

	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
)

// Call is one recorded surface operation.
type Call struct {
	Op        string // "blend", "draw", "scissor", "noscissor", "bind", "upload"
	Blend     bool
	Primitive core.Primitive
	Scissor   core.ScissorRect
	Texture   string
}

// Recorder implements core.Backend by appending every call to Calls.
type Recorder struct {
	Scale  float64
	Height int // logical viewport height

	Calls    []Call
	Blending bool
	Scissor  *core.ScissorRect
	Textures map[string]image.Image

	// Missing lists texture ids BindTexture should fail for.
	Missing map[string]bool
}

func NewRecorder(scaledHeight int, scale float64) *Recorder {
	return &Recorder{
		Scale:    scale,
		Height:   scaledHeight,
		Textures: map[string]image.Image{},
		Missing:  map[string]bool{},
	}
}

func (r *Recorder) SetBlend(enabled bool) {
	r.Blending = enabled
	r.Calls = append(r.Calls, Call{Op: "blend", Blend: enabled})
}

func (r *Recorder) Draw(p core.Primitive) {
	p.Vertices = append([]core.Vertex(nil), p.Vertices...)
	r.Calls = append(r.Calls, Call{Op: "draw", Primitive: p, Blend: r.Blending})
}

func (r *Recorder) EnableScissor(s core.ScissorRect) {
	r.Scissor = &s
	r.Calls = append(r.Calls, Call{Op: "scissor", Scissor: s})
}

func (r *Recorder) DisableScissor() {
	r.Scissor = nil
	r.Calls = append(r.Calls, Call{Op: "noscissor"})
}

func (r *Recorder) ScaleFactor() float64 { return r.Scale }
func (r *Recorder) ScaledHeight() int    { return r.Height }

func (r *Recorder) BindTexture(id string) error {
	if r.Missing[id] {
		return fmt.Errorf("texture %q not found", id)
	}
	r.Calls = append(r.Calls, Call{Op: "bind", Texture: id})
	return nil
}

func (r *Recorder) UploadTexture(id string, img image.Image) error {
	r.Textures[id] = img
	r.Calls = append(r.Calls, Call{Op: "upload", Texture: id})
	return nil
}

func (r *Recorder) Resize(_, fbH int, scale float64) {
	r.Scale = scale
	if scale > 0 {
		r.Height = int(float64(fbH) / scale)
	}
}

func (r *Recorder) Clear(colors.Color) { r.Reset() }
func (r *Recorder) Shutdown()          {}

// Reset drops recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Draws returns the recorded primitives in submission order.
func (r *Recorder) Draws() []core.Primitive {
	var out []core.Primitive
	for _, c := range r.Calls {
		if c.Op == "draw" {
			out = append(out, c.Primitive)
		}
	}
	return out
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}
