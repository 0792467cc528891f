package vec

import (
	"fmt"
	"math"
)

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Z - высота (уровень), в проекциях не масштабируется.
type Vec3 struct {
	X int
	Y int
	Z int
}

// FromVec2 создает Vec3 из Vec2, используя заданную Z координату
func FromVec2(v Vec2, z int) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub вычитает вектор
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul умножает все три оси на скаляр
func (v Vec3) Mul(k int) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3) Offset(d int) Vec3 {
	return Vec3{X: v.X + d, Y: v.Y + d, Z: v.Z + d}
}

// XY преобразует Vec3 в Vec2, игнорируя координату Z
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// WithXY заменяет плоские оси, сохраняя Z
func (v Vec3) WithXY(xy Vec2) Vec3 {
	return Vec3{X: xy.X, Y: xy.Y, Z: v.Z}
}

func (v Vec3) Height() int {
	return v.Z
}

func (v Vec3) WithHeight(z int) Vec3 {
	v.Z = z
	return v
}

func (v Vec3) Dims() int {
	return 3
}

// Compare сравнивает лексикографически: X, Y, затем Z
func (v Vec3) Compare(other Vec3) int {
	if c := v.XY().Compare(other.XY()); c != 0 {
		return c
	}
	return cmpInt(v.Z, other.Z)
}

// DistanceTo возвращает евклидово расстояние до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}
