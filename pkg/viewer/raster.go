package viewer

import (
	"image"
	"image/color"
	"math"
)

// fillTriangleWithDepth fills a triangle with depth testing
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	vertices := [3][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	top, mid, bottom := vertices[0], vertices[1], vertices[2]
	bounds := img.Bounds()
	width := bounds.Dx()

	edges := [3][2][3]float64{
		{top, mid},
		{mid, bottom},
		{top, bottom},
	}

	for y := int(math.Max(0, math.Ceil(top[1]))); y <= int(math.Min(float64(bounds.Max.Y-1), bottom[1])); y++ {
		fy := float64(y)

		// span between the leftmost and rightmost edge crossing
		xStart, xEnd := math.Inf(1), math.Inf(-1)
		var zStart, zEnd float64
		for _, edge := range edges {
			a, b := edge[0], edge[1]
			if a[1] == b[1] || fy < a[1] || fy > b[1] {
				continue
			}
			t := (fy - a[1]) / (b[1] - a[1])
			x := a[0] + t*(b[0]-a[0])
			z := a[2] + t*(b[2]-a[2])
			if x < xStart {
				xStart, zStart = x, z
			}
			if x > xEnd {
				xEnd, zEnd = x, z
			}
		}
		if xStart > xEnd {
			continue
		}

		for x := int(math.Max(0, math.Ceil(xStart))); x <= int(math.Min(float64(bounds.Max.X-1), xEnd)); x++ {
			t := 0.0
			if xEnd != xStart {
				t = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + t*(zEnd-zStart)

			// smaller depth is closer
			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if image.Pt(x1, y1).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawMarker draws a filled square centered on (x, y)
func drawMarker(img *image.RGBA, x, y, radius int, col color.RGBA) {
	r := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, col)
		}
	}
}

// shade darkens a base color by a lighting factor in [0, 1]
func shade(base color.RGBA, factor float64) color.RGBA {
	factor = math.Max(0, math.Min(1, factor))
	return color.RGBA{
		R: uint8(float64(base.R) * factor),
		G: uint8(float64(base.G) * factor),
		B: uint8(float64(base.B) * factor),
		A: base.A,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
