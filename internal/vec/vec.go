package vec

// Vector объединяет Vec2 и Vec3 для обобщённого кода.
// Плоские операции (XY, WithXY) не трогают высоту; у Vec2 высота всегда 0.
type Vector[V any] interface {
	comparable
	Vec2 | Vec3

	Add(other V) V
	Sub(other V) V
	Mul(k int) V
	Neg() V
	Offset(d int) V
	XY() Vec2
	WithXY(xy Vec2) V
	Height() int
	WithHeight(z int) V
	Dims() int
	Compare(other V) int
	DistanceTo(other V) float64
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
