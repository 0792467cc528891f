package vec

import (
	"fmt"
	"math"
)

// Vec2 представляет 2D координаты
type Vec2 struct {
	X, Y int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub вычитает вектор
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul умножает вектор на скаляр
func (v Vec2) Mul(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Offset прибавляет d к каждой оси
func (v Vec2) Offset(d int) Vec2 {
	return Vec2{X: v.X + d, Y: v.Y + d}
}

// Abs возвращает покомпонентный модуль
func (v Vec2) Abs() Vec2 {
	if v.X < 0 {
		v.X = -v.X
	}
	if v.Y < 0 {
		v.Y = -v.Y
	}
	return v
}

func (v Vec2) XY() Vec2 {
	return v
}

// WithXY заменяет плоские оси
func (v Vec2) WithXY(xy Vec2) Vec2 {
	return xy
}

// Height у плоской точки всегда 0
func (v Vec2) Height() int {
	return 0
}

// WithHeight для Vec2 ничего не меняет: высоты нет
func (v Vec2) WithHeight(int) Vec2 {
	return v
}

func (v Vec2) Dims() int {
	return 2
}

// Compare сравнивает лексикографически: X, затем Y
func (v Vec2) Compare(other Vec2) int {
	if c := cmpInt(v.X, other.X); c != 0 {
		return c
	}
	return cmpInt(v.Y, other.Y)
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
