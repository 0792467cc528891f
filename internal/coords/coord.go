package coords

import (
	"fmt"

	"github.com/annel0/mmo-coords/internal/vec"
)

// Coord - точка V с метками системы отсчета O, масштаба S и гарантии границ B.
// Метки не меняются на месте: новую метку дают только конструкторы,
// проекции и арифметика.
type Coord[V vec.Vector[V], O OriginTag, S ScaleTag, B Bound] struct {
	raw V
}

// New создает плоскую точку без проверки диапазона
func New[O OriginTag, S ScaleTag](x, y int) Coord[vec.Vec2, O, S, Free] {
	return Coord[vec.Vec2, O, S, Free]{raw: vec.Vec2{X: x, Y: y}}
}

// New3 создает точку с высотой без проверки диапазона
func New3[O OriginTag, S ScaleTag](x, y, z int) Coord[vec.Vec3, O, S, Free] {
	return Coord[vec.Vec3, O, S, Free]{raw: vec.Vec3{X: x, Y: y, Z: z}}
}

// FromRaw навешивает метки на сырой вектор
func FromRaw[O OriginTag, S ScaleTag, V vec.Vector[V]](v V) Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: v}
}

// NewIB создает точку с гарантией границ. Вызывающий сам ручается, что
// значения в диапазоне: проверки нет. Если гарантии нет, нужен CheckInBounds.
func NewIB[O OriginTag, S ScaleTag](x, y int) Coord[vec.Vec2, O, S, InBounds] {
	return Coord[vec.Vec2, O, S, InBounds]{raw: vec.Vec2{X: x, Y: y}}
}

// New3IB - как NewIB, но с высотой
func New3IB[O OriginTag, S ScaleTag](x, y, z int) Coord[vec.Vec3, O, S, InBounds] {
	return Coord[vec.Vec3, O, S, InBounds]{raw: vec.Vec3{X: x, Y: y, Z: z}}
}

// FromRawIB - как FromRaw, но вызывающий ручается за границы
func FromRawIB[O OriginTag, S ScaleTag, V vec.Vector[V]](v V) Coord[V, O, S, InBounds] {
	return Coord[V, O, S, InBounds]{raw: v}
}

// CheckInBounds проверяет диапазон и при успехе возвращает точку с гарантией.
// Для Rel, Abs и Active границ нет, результат всегда false.
func CheckInBounds[V vec.Vector[V], O OriginTag, S ScaleTag, B Bound](c Coord[V, O, S, B]) (Coord[V, O, S, InBounds], bool) {
	limit, ok := boundLimit(originOf[O](), scaleOf[S]())
	if !ok {
		return Coord[V, O, S, InBounds]{}, false
	}
	xy := c.raw.XY()
	if xy.X < 0 || xy.X >= limit || xy.Y < 0 || xy.Y >= limit {
		return Coord[V, O, S, InBounds]{}, false
	}
	return Coord[V, O, S, InBounds]{raw: c.raw}, true
}

// Lift добавляет высоту к плоской точке
func Lift[O OriginTag, S ScaleTag, B Bound](c Coord[vec.Vec2, O, S, B], z int) Coord[vec.Vec3, O, S, B] {
	return Coord[vec.Vec3, O, S, B]{raw: vec.FromVec2(c.raw, z)}
}

// Raw снимает метки. Обратно метки навешивает только FromRaw.
func (c Coord[V, O, S, B]) Raw() V {
	return c.raw
}

func (c Coord[V, O, S, B]) X() int {
	return c.raw.XY().X
}

func (c Coord[V, O, S, B]) Y() int {
	return c.raw.XY().Y
}

// Z возвращает высоту; у плоской точки 0
func (c Coord[V, O, S, B]) Z() int {
	return c.raw.Height()
}

// XY отбрасывает высоту. Гарантия границ касается только плоских осей и сохраняется.
func (c Coord[V, O, S, B]) XY() Coord[vec.Vec2, O, S, B] {
	return Coord[vec.Vec2, O, S, B]{raw: c.raw.XY()}
}

// WithX возвращает копию с другой X. Гарантия границ снимается.
func (c Coord[V, O, S, B]) WithX(x int) Coord[V, O, S, Free] {
	xy := c.raw.XY()
	xy.X = x
	return Coord[V, O, S, Free]{raw: c.raw.WithXY(xy)}
}

// WithY возвращает копию с другой Y. Гарантия границ снимается.
func (c Coord[V, O, S, B]) WithY(y int) Coord[V, O, S, Free] {
	xy := c.raw.XY()
	xy.Y = y
	return Coord[V, O, S, Free]{raw: c.raw.WithXY(xy)}
}

// WithZ возвращает копию с другой высотой. Для плоской точки ничего не меняет.
func (c Coord[V, O, S, B]) WithZ(z int) Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: c.raw.WithHeight(z)}
}

// Plain ослабляет гарантию границ. Всегда безопасно.
func (c Coord[V, O, S, B]) Plain() Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: c.raw}
}

// InBounds сообщает, несет ли тип гарантию границ
func (c Coord[V, O, S, B]) InBounds() bool {
	var b B
	return b.inBounds()
}

func (c Coord[V, O, S, B]) Origin() Origin {
	return originOf[O]()
}

func (c Coord[V, O, S, B]) Scale() Scale {
	return scaleOf[S]()
}

// Add сдвигает точку на смещение того же масштаба; система отсчета сохраняется
func (c Coord[V, O, S, B]) Add(d Coord[V, Rel, S, Free]) Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: c.raw.Add(d.raw)}
}

// Sub сдвигает точку на смещение в обратную сторону
func (c Coord[V, O, S, B]) Sub(d Coord[V, Rel, S, Free]) Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: c.raw.Sub(d.raw)}
}

// AddXY сдвигает по плоскости, не трогая высоту
func (c Coord[V, O, S, B]) AddXY(d Coord[vec.Vec2, Rel, S, Free]) Coord[V, O, S, Free] {
	return Coord[V, O, S, Free]{raw: c.raw.WithXY(c.raw.XY().Add(d.raw))}
}

func (c Coord[V, O, S, B]) String() string {
	return fmt.Sprint(c.raw)
}

// Diff возвращает смещение от b к a. Обе точки обязаны иметь одну систему
// отсчета и масштаб, иначе код не скомпилируется.
func Diff[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) Coord[V, Rel, S, Free] {
	return Coord[V, Rel, S, Free]{raw: a.raw.Sub(b.raw)}
}

// Times умножает смещение на скаляр. Привязанные точки умножать нельзя.
func Times[V vec.Vector[V], S ScaleTag, B Bound](d Coord[V, Rel, S, B], k int) Coord[V, Rel, S, Free] {
	return Coord[V, Rel, S, Free]{raw: d.raw.Mul(k)}
}

// Negate разворачивает смещение
func Negate[V vec.Vector[V], S ScaleTag, B Bound](d Coord[V, Rel, S, B]) Coord[V, Rel, S, Free] {
	return Coord[V, Rel, S, Free]{raw: d.raw.Neg()}
}
