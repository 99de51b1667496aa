package engine

// Point is an integer cell coordinate, y increasing downward.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) AddX(x int) Point {
	return Point{X: p.X + x, Y: p.Y}
}

func (p Point) AddY(y int) Point {
	return Point{X: p.X, Y: p.Y + y}
}

func (p Point) SubX(x int) Point {
	return Point{X: p.X - x, Y: p.Y}
}

func (p Point) WithY(y int) Point {
	return Point{X: p.X, Y: y}
}
