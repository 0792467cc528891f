package coords

import "github.com/annel0/mmo-coords/internal/vec"

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// SquareDist - чебышёвское расстояние (ходов с диагоналями), с учетом высоты
func SquareDist[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) int {
	d := a.raw.XY().Sub(b.raw.XY()).Abs()
	dist := max(d.X, d.Y)
	return max(dist, absInt(a.raw.Height()-b.raw.Height()))
}

// ManhattanDist - сумма модулей разностей по всем осям
func ManhattanDist[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) int {
	d := a.raw.XY().Sub(b.raw.XY()).Abs()
	return d.X + d.Y + absInt(a.raw.Height()-b.raw.Height())
}

// TrigDist - евклидово расстояние
func TrigDist[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) float64 {
	return a.raw.DistanceTo(b.raw)
}

// RLDist - игровое расстояние: при trig евклидово с отбрасыванием дробной
// части, иначе чебышёвское
func RLDist[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2], trig bool) int {
	if trig {
		return int(TrigDist(a, b))
	}
	return SquareDist(a, b)
}

// RLDistExact - как RLDist, но без округления
func RLDistExact[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2], trig bool) float64 {
	if trig {
		return TrigDist(a, b)
	}
	return float64(SquareDist(a, b))
}

// Midpoint возвращает середину отрезка, округляя вниз
func Midpoint[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) Coord[V, O, S, Free] {
	lo := a.raw.XY()
	half := divFloorXY(b.raw.XY().Sub(lo), 2)
	z := a.raw.Height() + divFloor(b.raw.Height()-a.raw.Height(), 2)
	return Coord[V, O, S, Free]{raw: a.raw.WithXY(lo.Add(half)).WithHeight(z)}
}

// ClosestPointsFirst возвращает точки квадрата радиуса radius вокруг center
// по возрастанию чебышёвского расстояния: сам center, затем кольца 1..radius.
// Каждое кольцо обходится по часовой стрелке от левого верхнего угла.
// Высота у всех точек как у center.
func ClosestPointsFirst[V vec.Vector[V], O OriginTag, S ScaleTag, B Bound](center Coord[V, O, S, B], radius int) []Coord[V, O, S, Free] {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	out := make([]Coord[V, O, S, Free], 0, side*side)
	c := center.raw.XY()
	at := func(x, y int) {
		out = append(out, Coord[V, O, S, Free]{raw: center.raw.WithXY(vec.Vec2{X: x, Y: y})})
	}

	at(c.X, c.Y)
	for r := 1; r <= radius; r++ {
		x0, y0, x1, y1 := c.X-r, c.Y-r, c.X+r, c.Y+r
		for x := x0; x < x1; x++ {
			at(x, y0)
		}
		for y := y0; y < y1; y++ {
			at(x1, y)
		}
		for x := x1; x > x0; x-- {
			at(x, y1)
		}
		for y := y1; y > y0; y-- {
			at(x0, y)
		}
	}
	return out
}
