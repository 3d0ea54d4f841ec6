package geometry2D

import (
	"math"
)

type Point struct {
	X [2]float64
}

func (p Point) Minus(q Point) Point {
	return Point{X: [2]float64{p.X[0] - q.X[0], p.X[1] - q.X[1]}}
}

func (p Point) Plus(q Point) Point {
	return Point{X: [2]float64{p.X[0] + q.X[0], p.X[1] + q.X[1]}}
}

func (p Point) Scale(s float64) Point {
	return Point{X: [2]float64{s * p.X[0], s * p.X[1]}}
}

func (p Point) Norm() float64 {
	return math.Hypot(p.X[0], p.X[1])
}

func Distance(p, q Point) float64 {
	return p.Minus(q).Norm()
}

func Midpoint(p, q Point) Point {
	return p.Plus(q).Scale(0.5)
}

func Cross(p, q Point) float64 {
	return p.X[0]*q.X[1] - p.X[1]*q.X[0]
}

// SignedArea of triangle (a, b, c), positive for counterclockwise winding
func SignedArea(a, b, c Point) float64 {
	return 0.5 * Cross(b.Minus(a), c.Minus(a))
}

// Circumcenter of triangle (a, b, c). Degenerate (collinear) triangles
// produce non-finite coordinates, the caller is expected to feed a valid
// triangulation.
func Circumcenter(a, b, c Point) (cc Point) {
	var (
		ab = b.Minus(a)
		ac = c.Minus(a)
		d  = 2 * Cross(ab, ac)
	)
	ab2 := ab.X[0]*ab.X[0] + ab.X[1]*ab.X[1]
	ac2 := ac.X[0]*ac.X[0] + ac.X[1]*ac.X[1]
	ux := (ac.X[1]*ab2 - ab.X[1]*ac2) / d
	uy := (ab.X[0]*ac2 - ac.X[0]*ab2) / d
	cc = Point{X: [2]float64{a.X[0] + ux, a.X[1] + uy}}
	return
}

// PolyArea computes the signed shoelace area of a polygon given in order
func PolyArea(poly []Point) (area float64) {
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += Cross(poly[i], poly[j])
	}
	area *= 0.5
	return
}

func PolyCentroid(poly []Point) (centroid Point) {
	var (
		n    = len(poly)
		area = PolyArea(poly)
	)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := Cross(poly[i], poly[j])
		centroid.X[0] += (poly[i].X[0] + poly[j].X[0]) * w
		centroid.X[1] += (poly[i].X[1] + poly[j].X[1]) * w
	}
	centroid = centroid.Scale(1 / (6 * area))
	return
}
