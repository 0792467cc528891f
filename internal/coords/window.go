package coords

import (
	"fmt"

	"github.com/annel0/mmo-coords/internal/vec"
)

// Window - загруженное окно мира: квадрат из size×size чанков, левый верхний
// угол которого задан в абсолютных координатах чанка.
type Window struct {
	corner Coord[vec.Vec2, Abs, Chunk, Free]
	size   int
}

// NewWindow создает окно. size должен быть положительным.
func NewWindow(corner Point[Abs, Chunk], size int) Window {
	if size <= 0 {
		fatalf("NewWindow: размер окна %d", size)
	}
	return Window{corner: corner, size: size}
}

// Corner возвращает абсолютный чанк в углу окна
func (w Window) Corner() Point[Abs, Chunk] {
	return w.corner
}

// Size возвращает сторону окна в чанках
func (w Window) Size() int {
	return w.size
}

// Shift сдвигает окно на d чанков
func (w Window) Shift(d Point[Rel, Chunk]) Window {
	return Window{corner: w.corner.Add(d), size: w.size}
}

// Recenter ставит окно так, чтобы чанк c оказался в его центре
func (w Window) Recenter(c Point[Abs, Chunk]) Window {
	half := New[Rel, Chunk](w.size/2, w.size/2)
	return Window{corner: c.Sub(half), size: w.size}
}

// Bounds - абсолютная область окна в тайлах
func (w Window) Bounds() Rect[vec.Vec2, Abs, Tile] {
	lo := ProjectTo[Tile](w.corner)
	span := New[Rel, Tile](w.size*ChunkSize, w.size*ChunkSize)
	return Rect[vec.Vec2, Abs, Tile]{Min: lo, Max: lo.Add(span)}
}

func (w Window) String() string {
	return fmt.Sprintf("window%v×%d", w.corner, w.size)
}

// windowOrigin - угол окна в масштабе S. Окно выровнено по чанкам, поэтому
// масштабы крупнее чанка не допускаются.
func windowOrigin[S ScaleTag](w Window) vec.Vec2 {
	if TilesPerUnit(scaleOf[S]()) > ChunkSize {
		fatalf("окно не выражается в масштабе %s", scaleOf[S]())
	}
	return ProjectTo[S](w.corner).raw
}

// ToWindow переводит абсолютную точку в систему отсчета окна
func ToWindow[V vec.Vector[V], S ScaleTag, B Bound](w Window, p Coord[V, Abs, S, B]) Coord[V, Active, S, Free] {
	o := windowOrigin[S](w)
	return Coord[V, Active, S, Free]{raw: p.raw.WithXY(p.raw.XY().Sub(o))}
}

// FromWindow переводит точку окна в абсолютную систему отсчета
func FromWindow[V vec.Vector[V], S ScaleTag, B Bound](w Window, p Coord[V, Active, S, B]) Coord[V, Abs, S, Free] {
	o := windowOrigin[S](w)
	return Coord[V, Abs, S, Free]{raw: p.raw.WithXY(p.raw.XY().Add(o))}
}

// InWindow проверяет, что точка окна лежит внутри загруженной области
func InWindow[V vec.Vector[V], S ScaleTag, B Bound](w Window, p Coord[V, Active, S, B]) bool {
	per := TilesPerUnit(scaleOf[S]())
	if per > ChunkSize {
		fatalf("окно не выражается в масштабе %s", scaleOf[S]())
	}
	limit := w.size * ChunkSize / per
	xy := p.raw.XY()
	return xy.X >= 0 && xy.X < limit && xy.Y >= 0 && xy.Y < limit
}
