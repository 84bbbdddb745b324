package render

import (
	"math"

	"github.com/hubastard/overlay/engine/colors"
	"github.com/hubastard/overlay/engine/core"
)

// Fill draws a solid rectangle between two corners given in any order.
func (r *Renderer) Fill(x1, y1, x2, y2 float64, color uint32) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x1 == x2 || y1 == y2 {
		return
	}
	c := colors.FromARGB(color)

	r.begin()
	r.vertex(x1, y1, c)
	r.vertex(x1, y2, c)
	r.vertex(x2, y1, c)
	r.vertex(x2, y1, c)
	r.vertex(x1, y2, c)
	r.vertex(x2, y2, c)
	r.flush(core.ModeTriangles, "")
}

// DrawHollowRect outlines a rectangle with four bars of the given thickness
// laid outside the rectangle's edges.
func (r *Renderer) DrawHollowRect(x, y, width, height float64, color uint32, thickness float64) {
	r.Fill(x, y-thickness, x-thickness, y+height+thickness, color)
	r.Fill(x+width, y-thickness, x+width+thickness, y+height+thickness, color)

	r.Fill(x, y, x+width, y-thickness, color)
	r.Fill(x, y+height, x+width, y+height+thickness, color)
}

// RoundedQuad fills a rectangle whose corners are arcs of the given radius.
// Each corner contributes exactly samples vertices to a single fan.
func (r *Renderer) RoundedQuad(fromX, fromY, toX, toY, radius float64, samples int, color uint32) {
	if fromX > toX {
		fromX, toX = toX, fromX
	}
	if fromY > toY {
		fromY, toY = toY, fromY
	}
	if fromX == toX || fromY == toY {
		return
	}
	samples = max(samples, 1)
	radius = math.Max(0, math.Min(radius, math.Min(toX-fromX, toY-fromY)/2))
	c := colors.FromARGB(color)

	anchors := [4][2]float64{
		{toX - radius, toY - radius},
		{toX - radius, fromY + radius},
		{fromX + radius, fromY + radius},
		{fromX + radius, toY - radius},
	}
	step := 90 / float64(samples)

	r.begin()
	for i, a := range anchors {
		for k := 0; k < samples; k++ {
			rad := (float64(i)*90 + float64(k)*step) * math.Pi / 180
			r.vertex(a[0]+math.Sin(rad)*radius, a[1]+math.Cos(rad)*radius, c)
		}
	}
	r.flush(core.ModeTriangleFan, "")
}

// Circle fills a circle approximated by samples points on its rim.
func (r *Renderer) Circle(centerX, centerY, radius float64, samples int, color uint32) {
	if radius <= 0 {
		return
	}
	samples = max(samples, 1)
	c := colors.FromARGB(color)
	step := 360 / float64(samples)

	r.begin()
	for k := 0; k < samples; k++ {
		rad := float64(k) * step * math.Pi / 180
		r.vertex(centerX+math.Sin(rad)*radius, centerY+math.Cos(rad)*radius, c)
	}
	r.flush(core.ModeTriangleFan, "")
}
