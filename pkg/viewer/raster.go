package viewer

import (
	"image"
	"image/color"
	"math"
)

// fillTriangleWithDepth fills a triangle with depth testing
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, v [3][3]float64, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if v[0][1] > v[1][1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1][1] > v[2][1] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0][1] > v[1][1] {
		v[0], v[1] = v[1], v[0]
	}

	x1, y1, z1 := v[0][0], v[0][1], v[0][2]
	x2, y2, z2 := v[1][0], v[1][1], v[1][2]
	x3, y3, z3 := v[2][0], v[2][1], v[2][2]

	bounds := img.Bounds()
	width := bounds.Max.X

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		// Long edge 1-3 always spans the scanline
		t := (fy - y1) / (y3 - y1)
		xStart, zStart := x1+t*(x3-x1), z1+t*(z3-z1)

		var xEnd, zEnd float64
		if fy < y2 {
			if y2 == y1 {
				continue
			}
			t = (fy - y1) / (y2 - y1)
			xEnd, zEnd = x1+t*(x2-x1), z1+t*(z2-z1)
		} else {
			if y3 == y2 {
				xEnd, zEnd = x2, z2
			} else {
				t = (fy - y2) / (y3 - y2)
				xEnd, zEnd = x2+t*(x3-x2), z2+t*(z3-z2)
			}
		}

		if xStart > xEnd {
			xStart, xEnd = xEnd, xStart
			zStart, zEnd = zEnd, zStart
		}

		xStartInt := int(math.Max(0, math.Ceil(xStart)))
		xEndInt := int(math.Min(float64(bounds.Max.X-1), xEnd))

		for x := xStartInt; x <= xEndInt; x++ {
			s := 0.0
			if xEnd != xStart {
				s = (float64(x) - xStart) / (xEnd - xStart)
			}
			z := zStart + s*(zEnd-zStart)

			// Depth test - draw if closer (smaller z)
			idx := y*width + x
			if idx >= 0 && idx < len(zbuffer) && z < zbuffer[idx] {
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

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
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

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
