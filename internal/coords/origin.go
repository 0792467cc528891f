package coords

import "fmt"

// Origin - система отсчета координаты
type Origin int

const (
	OriginRel Origin = iota
	OriginAbs
	OriginChunk
	OriginTerrainUnit
	OriginRegion
	OriginActive
)

func (o Origin) String() string {
	switch o {
	case OriginRel:
		return "rel"
	case OriginAbs:
		return "abs"
	case OriginChunk:
		return "chunk"
	case OriginTerrainUnit:
		return "terrain"
	case OriginRegion:
		return "region"
	case OriginActive:
		return "active"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// OriginFromScale возвращает систему отсчета "угол ячейки масштаба s"
func OriginFromScale(s Scale) Origin {
	switch s {
	case ScaleChunk:
		return OriginChunk
	case ScaleTerrainUnit:
		return OriginTerrainUnit
	case ScaleRegion:
		return OriginRegion
	}
	fatalf("OriginFromScale: у масштаба %s нет локальной системы отсчета", s)
	return 0
}

// ScaleFromOrigin - обратное к OriginFromScale
func ScaleFromOrigin(o Origin) Scale {
	s, ok := localScaleOf(o)
	if !ok {
		fatalf("ScaleFromOrigin: у системы отсчета %s нет масштаба", o)
	}
	return s
}

func localScaleOf(o Origin) (Scale, bool) {
	switch o {
	case OriginChunk:
		return ScaleChunk, true
	case OriginTerrainUnit:
		return ScaleTerrainUnit, true
	case OriginRegion:
		return ScaleRegion, true
	}
	return 0, false
}

// OriginTag - метка системы отсчета на уровне типов
type OriginTag interface {
	origin() Origin
}

type (
	// Rel - чистое смещение без привязки
	Rel struct{}
	// Abs - от глобального нуля
	Abs struct{}
	// Active - от угла загруженного окна мира
	Active struct{}
)

// Local - от угла содержащей ячейки масштаба S
type Local[S LocalScale] struct{}

func (Rel) origin() Origin    { return OriginRel }
func (Abs) origin() Origin    { return OriginAbs }
func (Active) origin() Origin { return OriginActive }

func (Local[S]) origin() Origin {
	return OriginFromScale(scaleOf[S]())
}

func originOf[O OriginTag]() Origin {
	var o O
	return o.origin()
}
