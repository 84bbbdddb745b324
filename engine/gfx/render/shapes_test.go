package render

import (
	"math"
	"testing"

	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
	"github.com/hubastard/overlay/engine/gfx/headless"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() (*Renderer, *headless.Recorder) {
	rec := headless.NewRecorder(600, 2)
	return New(rec, nil), rec
}

func bounds(vs []core.Vertex) (minX, minY, maxX, maxY float32) {
	minX, minY = float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY = -minX, -minY
	for _, v := range vs {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	return
}

func TestFillNormalizesCorners(t *testing.T) {
	r, rec := newTestRenderer()
	r.Fill(30, 40, 10, 20, colors.ARGB(128, 255, 0, 64))

	draws := rec.Draws()
	require.Len(t, draws, 1)
	p := draws[0]
	require.Equal(t, core.ModeTriangles, p.Mode)
	require.Len(t, p.Vertices, 6)

	minX, minY, maxX, maxY := bounds(p.Vertices)
	require.Equal(t, [4]float32{10, 20, 30, 40}, [4]float32{minX, minY, maxX, maxY})

	want := colors.Color{1, 0, 64.0 / 255, 128.0 / 255}
	for _, v := range p.Vertices {
		require.InDeltaSlice(t, want[:], v.Color[:], 1e-6)
	}
}

func TestFillBlendsOnlyForTheCall(t *testing.T) {
	r, rec := newTestRenderer()
	r.Fill(0, 0, 5, 5, colors.PackedWhite)

	require.Equal(t, []string{"blend", "draw", "blend"}, rec.Ops())
	require.True(t, rec.Calls[0].Blend)
	require.True(t, rec.Calls[1].Blend)
	require.False(t, rec.Calls[2].Blend)
	require.False(t, rec.Blending)
}

func TestDegenerateShapesDrawNothing(t *testing.T) {
	r, rec := newTestRenderer()
	r.Fill(5, 5, 5, 50, colors.PackedWhite)
	r.Fill(5, 5, 50, 5, colors.PackedWhite)
	r.RoundedQuad(0, 0, 0, 10, 2, 4, colors.PackedWhite)
	r.Circle(10, 10, 0, 8, colors.PackedWhite)
	r.DrawTexture("x", 0, 0, 0, 10, colors.PackedWhite)
	require.Empty(t, rec.Calls)
	require.Equal(t, Statistics{}, r.Stats())
}

func TestDrawHollowRectEmitsFourBars(t *testing.T) {
	r, rec := newTestRenderer()
	r.DrawHollowRect(10, 10, 20, 30, colors.PackedRed, 2)

	draws := rec.Draws()
	require.Len(t, draws, 4)

	want := [][4]float32{
		{8, 8, 10, 42},  // left
		{30, 8, 32, 42}, // right
		{10, 8, 30, 10}, // top
		{10, 40, 30, 42},
	}
	for i, d := range draws {
		minX, minY, maxX, maxY := bounds(d.Vertices)
		require.Equal(t, want[i], [4]float32{minX, minY, maxX, maxY}, "bar %d", i)
	}
}

func TestRoundedQuadVertexCount(t *testing.T) {
	for _, samples := range []int{-3, 0, 1, 2, 4, 8, 16} {
		r, rec := newTestRenderer()
		r.RoundedQuad(0, 0, 100, 50, 10, samples, colors.PackedWhite)

		draws := rec.Draws()
		require.Len(t, draws, 1)
		require.Equal(t, core.ModeTriangleFan, draws[0].Mode)
		require.Len(t, draws[0].Vertices, 4*max(samples, 1), "samples=%d", samples)
	}
}

func TestRoundedQuadCornersStayInsideBounds(t *testing.T) {
	r, rec := newTestRenderer()
	r.RoundedQuad(10, 20, 110, 70, 8, 12, colors.PackedWhite)

	vs := rec.Draws()[0].Vertices
	minX, minY, maxX, maxY := bounds(vs)
	require.InDelta(t, 10, minX, 1e-4)
	require.InDelta(t, 20, minY, 1e-4)
	require.InDelta(t, 110, maxX, 1e-4)
	require.InDelta(t, 70, maxY, 1e-4)

	// First vertex of the first corner sits straight below its anchor.
	require.InDelta(t, 102, vs[0].X, 1e-4)
	require.InDelta(t, 70, vs[0].Y, 1e-4)

	// Every vertex lies on an arc around one of the four anchors.
	anchors := [4][2]float32{{102, 62}, {102, 28}, {18, 28}, {18, 62}}
	for i, v := range vs {
		a := anchors[i/12]
		d := math.Hypot(float64(v.X-a[0]), float64(v.Y-a[1]))
		require.InDelta(t, 8, d, 1e-3)
	}
}

func TestRoundedQuadClampsRadius(t *testing.T) {
	r, rec := newTestRenderer()
	r.RoundedQuad(0, 0, 20, 10, 50, 4, colors.PackedWhite)

	minX, minY, maxX, maxY := bounds(rec.Draws()[0].Vertices)
	require.GreaterOrEqual(t, minX, float32(-1e-4))
	require.GreaterOrEqual(t, minY, float32(-1e-4))
	require.LessOrEqual(t, maxX, float32(20+1e-4))
	require.LessOrEqual(t, maxY, float32(10+1e-4))
}

func TestCircle(t *testing.T) {
	r, rec := newTestRenderer()
	r.Circle(50, 50, 10, 36, colors.PackedWhite)

	p := rec.Draws()[0]
	require.Equal(t, core.ModeTriangleFan, p.Mode)
	require.Len(t, p.Vertices, 36)
	for _, v := range p.Vertices {
		require.InDelta(t, 10, math.Hypot(float64(v.X-50), float64(v.Y-50)), 1e-3)
	}
	// Angle zero points down the y axis.
	require.InDelta(t, 50, p.Vertices[0].X, 1e-4)
	require.InDelta(t, 60, p.Vertices[0].Y, 1e-4)

	r.Circle(0, 0, 5, 0, colors.PackedWhite)
	require.Len(t, rec.Draws()[1].Vertices, 1)
}

func TestTransformStack(t *testing.T) {
	r, rec := newTestRenderer()
	r.Push()
	r.Translate(100, 50)
	r.ScaleAbout(0, 0, 2)
	r.Fill(0, 0, 10, 10, colors.PackedWhite)
	r.Pop()
	r.Fill(0, 0, 10, 10, colors.PackedWhite)
	r.Pop() // popping the root is a no-op

	draws := rec.Draws()
	minX, minY, maxX, maxY := bounds(draws[0].Vertices)
	require.Equal(t, [4]float32{100, 50, 120, 70}, [4]float32{minX, minY, maxX, maxY})
	minX, minY, maxX, maxY = bounds(draws[1].Vertices)
	require.Equal(t, [4]float32{0, 0, 10, 10}, [4]float32{minX, minY, maxX, maxY})
	require.Equal(t, Identity(), r.Transform())
}

func TestStatsResetPerFrame(t *testing.T) {
	r, _ := newTestRenderer()
	r.Fill(0, 0, 1, 1, colors.PackedWhite)
	r.Circle(0, 0, 1, 8, colors.PackedWhite)
	require.Equal(t, Statistics{DrawCalls: 2, VertexCount: 14}, r.Stats())

	r.BeginFrame()
	require.Equal(t, Statistics{}, r.Stats())
}

func TestOrthoMapsViewportCorners(t *testing.T) {
	m := Ortho(0, 800, 600, 0, -1, 1)
	x, y := m.Apply(0, 0)
	require.InDelta(t, -1, x, 1e-6)
	require.InDelta(t, 1, y, 1e-6)
	x, y = m.Apply(800, 600)
	require.InDelta(t, 1, x, 1e-6)
	require.InDelta(t, -1, y, 1e-6)
}
