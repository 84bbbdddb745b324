package soft

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/gfx/render"
	"github.com/stretchr/testify/require"
)

var black = colors.FromARGB(0xFF000000)

func rgbaAt(img image.Image, x, y int) (r, g, b, a uint32) {
	return img.At(x, y).RGBA()
}

func TestFillRasterizesScaled(t *testing.T) {
	s := NewSurface(100, 50, 2, nil)
	s.Clear(black)
	require.Equal(t, 50, s.ScaledHeight())

	r := render.New(s, nil)
	r.Fill(10, 10, 20, 20, colors.PackedRed)
	require.Equal(t, 1, s.Draws())
	require.False(t, s.Blending())

	img := s.Image()
	rr, g, _, _ := rgbaAt(img, 30, 30)
	require.Greater(t, rr, uint32(0xF000))
	require.Less(t, g, uint32(0x1000))

	rr, _, _, _ = rgbaAt(img, 60, 60)
	require.Less(t, rr, uint32(0x1000))
}

func TestScissorClipsDrawing(t *testing.T) {
	s := NewSurface(100, 100, 1, nil)
	s.Clear(black)
	r := render.New(s, nil)

	r.EnableScissor(0, 0, 50, 100)
	r.Fill(0, 0, 100, 100, colors.PackedWhite)
	r.DisableScissor()

	img := s.Image()
	inside, _, _, _ := rgbaAt(img, 25, 50)
	outside, _, _, _ := rgbaAt(img, 75, 50)
	require.Greater(t, inside, uint32(0xF000))
	require.Less(t, outside, uint32(0x1000))
}

func TestUploadedTextureDraws(t *testing.T) {
	s := NewSurface(20, 20, 1, nil)
	s.Clear(black)

	tex := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(tex.Pix); i += 4 {
		tex.Pix[i+1], tex.Pix[i+3] = 0xFF, 0xFF
	}
	require.NoError(t, s.UploadTexture("green", tex))
	require.Error(t, s.UploadTexture("empty", image.NewRGBA(image.Rectangle{})))
	require.Error(t, s.BindTexture("missing.png"))

	r := render.New(s, nil)
	r.DrawTexture("green", 5, 5, 8, 8, colors.PackedWhite)
	_, g, _, _ := rgbaAt(s.Image(), 9, 9)
	require.Greater(t, g, uint32(0xC000))
}

func TestTexturedDrawAppliesTint(t *testing.T) {
	s := NewSurface(20, 20, 1, nil)
	s.Clear(black)

	tex := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range tex.Pix {
		tex.Pix[i] = 0xFF
	}
	require.NoError(t, s.UploadTexture("w", tex))

	r := render.New(s, nil)
	r.DrawTexture("w", 2, 2, 10, 10, colors.PackedRed)
	rr, g, b, _ := rgbaAt(s.Image(), 6, 6)
	require.Greater(t, rr, uint32(0xC000))
	require.Less(t, g, uint32(0x2000))
	require.Less(t, b, uint32(0x2000))

	// Re-uploading drops tinted copies of the old pixels.
	blue := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(blue.Pix); i += 4 {
		blue.Pix[i+2], blue.Pix[i+3] = 0xFF, 0xFF
	}
	require.NoError(t, s.UploadTexture("w", blue))
	s.Clear(black)
	r.DrawTexture("w", 2, 2, 10, 10, colors.PackedRed)
	rr, _, b, _ = rgbaAt(s.Image(), 6, 6)
	require.Less(t, rr, uint32(0x2000))
	require.Less(t, b, uint32(0x2000))
}

func TestSavePNG(t *testing.T) {
	s := NewSurface(8, 8, 1, nil)
	s.Clear(colors.FromARGB(0xFF102030))
	s.Draw(core.Primitive{Mode: core.ModeTriangles})
	require.Equal(t, 0, s.Draws())

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.SavePNG(path))
}
