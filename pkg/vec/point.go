package vec

// Point2 is a two element Vector with named accessors. X and Y are elements 0
// and 1; writes through either view are visible through the other.
type Point2[T Number] struct {
	Vector[T, [2]T]
}

// NewPoint2 returns the point (x, y).
func NewPoint2[T Number](x, y T) Point2[T] {
	return Point2From([2]T{x, y})
}

// Point2From returns a point holding a copy of a.
func Point2From[T Number](a [2]T) Point2[T] {
	return Point2[T]{FromArray[T](a)}
}

func (p Point2[T]) X() T { return p.values[0] }
func (p Point2[T]) Y() T { return p.values[1] }

func (p *Point2[T]) SetX(x T) { p.values[0] = x }
func (p *Point2[T]) SetY(y T) { p.values[1] = y }

// Add returns the element-wise sum of p and o.
func (p Point2[T]) Add(o Point2[T]) Point2[T] {
	return Point2[T]{p.Vector.Add(o.Vector)}
}

// Point3 is a three element Vector with named accessors. X, Y and Z are
// elements 0, 1 and 2.
type Point3[T Number] struct {
	Vector[T, [3]T]
}

// NewPoint3 returns the point (x, y, z).
func NewPoint3[T Number](x, y, z T) Point3[T] {
	return Point3From([3]T{x, y, z})
}

// Point3From returns a point holding a copy of a.
func Point3From[T Number](a [3]T) Point3[T] {
	return Point3[T]{FromArray[T](a)}
}

func (p Point3[T]) X() T { return p.values[0] }
func (p Point3[T]) Y() T { return p.values[1] }
func (p Point3[T]) Z() T { return p.values[2] }

func (p *Point3[T]) SetX(x T) { p.values[0] = x }
func (p *Point3[T]) SetY(y T) { p.values[1] = y }
func (p *Point3[T]) SetZ(z T) { p.values[2] = z }

// Add returns the element-wise sum of p and o.
func (p Point3[T]) Add(o Point3[T]) Point3[T] {
	return Point3[T]{p.Vector.Add(o.Vector)}
}
