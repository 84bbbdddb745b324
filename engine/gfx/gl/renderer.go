package glbackend

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/overlay/engine/assets"
	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/gfx/render"
	"github.com/hubastard/overlay/engine/logging"
)

// floats per vertex: pos2 + uv2 + color4
const vertexFloats = 8

// SurfaceGL streams primitives through one dynamic VBO. Solid and textured
// draws share a program; uUseTex selects the sampler path.
type SurfaceGL struct {
	assets *assets.Loader

	program uint32
	vao     uint32
	vbo     uint32
	uProj   int32
	uUseTex int32
	uTex    int32

	textures map[string]uint32

	fbW, fbH int
	scale    float64
	buf      []float32
	vboCap   int
}

// NewSurfaceGL expects a current context with GL loaded. It compiles the overlay program and allocates the stream buffer.
// loader may be nil; textures and shader overrides then come only from
// UploadTexture and the built-in sources.
func NewSurfaceGL(_ core.Window, _ core.Config, loader *assets.Loader) (*SurfaceGL, error) {
	s := &SurfaceGL{assets: loader, textures: map[string]uint32{}, scale: 1}
	if err := s.init(); err != nil {
		return nil, err
	}
	logging.Logger().Debug("gl surface ready", "program", s.program)
	return s, nil
}

func (s *SurfaceGL) shaderSource(name, fallback string) string {
	if s.assets == nil {
		return fallback
	}
	src, err := s.assets.LoadShader(name)
	if err != nil {
		logging.Logger().Debug("using built-in shader", "name", name, "err", err)
		return fallback
	}
	return src
}

func (s *SurfaceGL) init() error {
	var err error
	s.program, err = linkProgram(
		s.shaderSource("overlay.vert", vertexSource),
		s.shaderSource("overlay.frag", fragmentSource),
	)
	if err != nil {
		return err
	}
	s.uProj = uniform(s.program, "uProj")
	s.uUseTex = uniform(s.program, "uUseTex")
	s.uTex = uniform(s.program, "uTex")

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor;
	const stride = vertexFloats * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(4*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (s *SurfaceGL) Shutdown() {
	for id, tex := range s.textures {
		gl.DeleteTextures(1, &tex)
		delete(s.textures, id)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
}

func (s *SurfaceGL) Resize(fbW, fbH int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.fbW, s.fbH, s.scale = fbW, fbH, scale
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
}

func (s *SurfaceGL) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (s *SurfaceGL) ScaleFactor() float64 { return s.scale }
func (s *SurfaceGL) ScaledHeight() int    { return int(float64(s.fbH) / s.scale) }

func (s *SurfaceGL) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
}

func (s *SurfaceGL) EnableScissor(r core.ScissorRect) {
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(r.X, r.Y, r.W, r.H)
}

func (s *SurfaceGL) DisableScissor() { gl.Disable(gl.SCISSOR_TEST) }

func (s *SurfaceGL) Draw(p core.Primitive) {
	if len(p.Vertices) == 0 {
		return
	}
	s.buf = s.buf[:0]
	for _, v := range p.Vertices {
		s.buf = append(s.buf, v.X, v.Y, v.U, v.V, v.Color[0], v.Color[1], v.Color[2], v.Color[3])
	}

	w := float32(float64(s.fbW) / s.scale)
	h := float32(float64(s.fbH) / s.scale)
	proj := render.Ortho(0, w, h, 0, -1, 1)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uProj, 1, false, &proj[0])

	tex, textured := uint32(0), false
	if p.Texture != "" {
		tex, textured = s.textures[p.Texture]
		if !textured {
			logging.Logger().Warn("draw with unbound texture", "id", p.Texture)
			return
		}
	}
	if textured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.Uniform1i(s.uTex, 0)
		gl.Uniform1i(s.uUseTex, 1)
	} else {
		gl.Uniform1i(s.uUseTex, 0)
	}

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	size := len(s.buf) * 4
	if size > s.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(s.buf), gl.STREAM_DRAW)
		s.vboCap = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(s.buf))
	}

	mode := uint32(gl.TRIANGLES)
	if p.Mode == core.ModeTriangleFan {
		mode = gl.TRIANGLE_FAN
	}
	gl.DrawArrays(mode, 0, int32(len(p.Vertices)))

	gl.BindVertexArray(0)
	if textured {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.UseProgram(0)
}

// BindTexture loads an asset texture on first use.
func (s *SurfaceGL) BindTexture(id string) error {
	if _, ok := s.textures[id]; ok {
		return nil
	}
	if s.assets == nil {
		return fmt.Errorf("texture %q: no asset loader", id)
	}
	w, h, pix, err := s.assets.LoadRGBA(id)
	if err != nil {
		return err
	}
	s.textures[id] = s.upload(0, w, h, pix)
	return nil
}

// UploadTexture replaces the texture stored under id with img.
func (s *SurfaceGL) UploadTexture(id string, img image.Image) error {
	w, h, pix := assets.PackRGBA(img)
	if w == 0 || h == 0 {
		return fmt.Errorf("texture %q: empty image", id)
	}
	s.textures[id] = s.upload(s.textures[id], w, h, pix)
	return nil
}

func (s *SurfaceGL) upload(tex uint32, w, h int, pix []byte) uint32 {
	if tex == 0 {
		gl.GenTextures(1, &tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
