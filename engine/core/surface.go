package core

import (
	"image"

	"github.com/hubastard/overlay/engine/colors"
)

// Vertex: pos2 + uv2 + color4.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color colors.Color
}

type DrawMode int

const (
	ModeTriangles DrawMode = iota
	ModeTriangleFan
)

func (m DrawMode) String() string {
	switch m {
	case ModeTriangles:
		return "triangles"
	case ModeTriangleFan:
		return "triangle-fan"
	default:
		return "unknown"
	}
}

// Primitive is one draw submission. Texture is empty for solid color.
type Primitive struct {
	Mode     DrawMode
	Vertices []Vertex
	Texture  string
}

// ScissorRect is a clip rectangle in physical pixels with a bottom-left origin.
type ScissorRect struct {
	X, Y, W, H int32
}

// Surface is the render target consumed by the primitive renderer.
type Surface interface {
	SetBlend(enabled bool)
	Draw(p Primitive)
	EnableScissor(r ScissorRect)
	DisableScissor()
	// ScaleFactor is the ratio of physical pixels to logical units.
	ScaleFactor() float64
	// ScaledHeight is the viewport height in logical units.
	ScaledHeight() int
	// BindTexture makes an asset texture available for Primitive.Texture.
	BindTexture(id string) error
	// UploadTexture registers generated pixels under id, replacing any previous upload.
	UploadTexture(id string, img image.Image) error
}

// Backend is a Surface owned by the run loop.
type Backend interface {
	Surface
	Resize(fbW, fbH int, scale float64)
	Clear(c colors.Color)
	Shutdown()
}
