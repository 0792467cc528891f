package coords

// Bound - метка гарантии границ
type Bound interface {
	inBounds() bool
}

type (
	// Free - значение может быть любым
	Free struct{}
	// InBounds - плоские оси лежат в [0, размер следующего масштаба)
	InBounds struct{}
)

func (Free) inBounds() bool     { return false }
func (InBounds) inBounds() bool { return true }

// boundLimit возвращает верхнюю (исключительную) границу осей для точки
// масштаба s в локальной системе o. Для Rel, Abs и Active границы нет.
func boundLimit(o Origin, s Scale) (int, bool) {
	frame, ok := localScaleOf(o)
	if !ok {
		return 0, false
	}
	outer, inner := TilesPerUnit(frame), TilesPerUnit(s)
	if inner > outer || outer%inner != 0 {
		return 0, false
	}
	return outer / inner, true
}
