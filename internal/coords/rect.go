package coords

import (
	"fmt"
	"iter"

	"github.com/annel0/mmo-coords/internal/vec"
)

// Rect - полуоткрытая область [Min, Max). Для трехмерных точек по высоте
// тоже полуоткрытый диапазон.
type Rect[V vec.Vector[V], O OriginTag, S ScaleTag] struct {
	Min Coord[V, O, S, Free]
	Max Coord[V, O, S, Free]
}

// ProjectBounds возвращает все точки масштаба SF внутри одной ячейки c:
// [ProjectTo[SF](c), ProjectTo[SF](c+1)).
func ProjectBounds[SF ScaleTag, V vec.Vector[V], O OriginTag, SC ScaleTag, B Bound](c Coord[V, O, SC, B]) Rect[V, O, SF] {
	if TilesPerUnit(scaleOf[SF]()) > TilesPerUnit(scaleOf[SC]()) {
		fatalf("ProjectBounds: масштаб %s крупнее %s", scaleOf[SF](), scaleOf[SC]())
	}
	next := Coord[V, O, SC, Free]{raw: c.raw.Offset(1)}
	return Rect[V, O, SF]{
		Min: ProjectTo[SF](c),
		Max: ProjectTo[SF](next),
	}
}

// InclusiveRect строит область с обоими включенными углами: [lo, hi].
// Если какая-то ось hi меньше lo, область пуста.
func InclusiveRect[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](lo Coord[V, O, S, B1], hi Coord[V, O, S, B2]) Rect[V, O, S] {
	return Rect[V, O, S]{
		Min: Coord[V, O, S, Free]{raw: lo.raw},
		Max: Coord[V, O, S, Free]{raw: hi.raw.Offset(1)},
	}
}

// Last возвращает последнюю точку области, то есть включенный верхний угол
func (r Rect[V, O, S]) Last() Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: r.Max.raw.Offset(-1)}
}

// Contains проверяет попадание точки в область
func (r Rect[V, O, S]) Contains(p Coord[V, O, S, Free]) bool {
	xy, lo, hi := p.raw.XY(), r.Min.raw.XY(), r.Max.raw.XY()
	if xy.X < lo.X || xy.X >= hi.X || xy.Y < lo.Y || xy.Y >= hi.Y {
		return false
	}
	if p.raw.Dims() == 3 {
		z := p.raw.Height()
		return z >= r.Min.raw.Height() && z < r.Max.raw.Height()
	}
	return true
}

// Size возвращает размеры области по плоскости
func (r Rect[V, O, S]) Size() vec.Vec2 {
	return r.Max.raw.XY().Sub(r.Min.raw.XY())
}

// Empty сообщает, что в области нет ни одной точки
func (r Rect[V, O, S]) Empty() bool {
	size := r.Size()
	if size.X <= 0 || size.Y <= 0 {
		return true
	}
	return r.Min.raw.Dims() == 3 && r.Max.raw.Height() <= r.Min.raw.Height()
}

// All перебирает точки области: высота, затем Y, затем X
func (r Rect[V, O, S]) All() iter.Seq[Coord[V, O, S, Free]] {
	return func(yield func(Coord[V, O, S, Free]) bool) {
		lo, hi := r.Min.raw, r.Max.raw
		zlo, zhi := lo.Height(), hi.Height()
		if lo.Dims() == 2 {
			zhi = zlo + 1
		}
		for z := zlo; z < zhi; z++ {
			for y := lo.XY().Y; y < hi.XY().Y; y++ {
				for x := lo.XY().X; x < hi.XY().X; x++ {
					p := lo.WithHeight(z).WithXY(vec.Vec2{X: x, Y: y})
					if !yield(Coord[V, O, S, Free]{raw: p}) {
						return
					}
				}
			}
		}
	}
}

func (r Rect[V, O, S]) String() string {
	return fmt.Sprintf("[%v,%v)", r.Min, r.Max)
}
