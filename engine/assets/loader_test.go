package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func testLoader(t *testing.T) *Loader {
	return NewLoaderFS(fstest.MapFS{
		"textures/icons/combat.png": {Data: pngBytes(t, 12, 7)},
		"textures/broken.png":       {Data: []byte("not a png")},
		"shaders/overlay.vert":      {Data: []byte("void main(){}")},
		"fonts/mono.ttf":            {Data: []byte{1, 2, 3}},
	})
}

func TestImageSize(t *testing.T) {
	l := testLoader(t)

	w, h, err := l.ImageSize("icons/combat.png")
	require.NoError(t, err)
	require.Equal(t, 12, w)
	require.Equal(t, 7, h)

	_, _, err = l.ImageSize("icons/missing.png")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, _, err = l.ImageSize("broken.png")
	require.Error(t, err)

	_, _, err = l.ImageSize("../escape.png")
	require.Error(t, err)
}

func TestLoadRGBA(t *testing.T) {
	w, h, pix, err := testLoader(t).LoadRGBA("icons/combat.png")
	require.NoError(t, err)
	require.Equal(t, 12, w)
	require.Equal(t, 7, h)
	require.Len(t, pix, 12*7*4)
	require.Equal(t, []byte{255, 0, 0, 255}, pix[:4])
}

func TestLoadShaderIsNullTerminated(t *testing.T) {
	src, err := testLoader(t).LoadShader("overlay.vert")
	require.NoError(t, err)
	require.Equal(t, byte(0), src[len(src)-1])

	b, err := testLoader(t).ReadFont("mono.ttf")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
}
