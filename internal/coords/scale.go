package coords

import "fmt"

// Scale - уровень детализации с фиксированным размером в тайлах
type Scale int

const (
	ScaleTile Scale = iota
	ScaleChunk
	ScaleTerrainUnit
	ScaleSegment
	ScaleRegion
	ScaleVehicle
)

// Геометрия мира. Чанки квадратные.
const (
	ChunkSize             = 12 // тайлов на сторону чанка
	ChunksPerTerrainUnit  = 2
	TerrainUnitsPerRegion = 180
	ChunksPerRegion       = TerrainUnitsPerRegion * ChunksPerTerrainUnit
	ChunksPerSegment      = 32

	// Диапазон высот (уровней)
	MinZ = -10
	MaxZ = 10
)

// TilesPerUnit возвращает число тайлов на сторону одной единицы масштаба.
// Все остальные преобразования выводятся из этой таблицы.
func TilesPerUnit(s Scale) int {
	switch s {
	case ScaleTile, ScaleVehicle:
		return 1
	case ScaleChunk:
		return ChunkSize
	case ScaleTerrainUnit:
		return ChunkSize * ChunksPerTerrainUnit
	case ScaleSegment:
		return ChunkSize * ChunksPerSegment
	case ScaleRegion:
		return ChunkSize * ChunksPerRegion
	}
	fatalf("TilesPerUnit: неизвестный масштаб %d", int(s))
	return 0
}

func (s Scale) String() string {
	switch s {
	case ScaleTile:
		return "tile"
	case ScaleChunk:
		return "chunk"
	case ScaleTerrainUnit:
		return "terrain"
	case ScaleSegment:
		return "segment"
	case ScaleRegion:
		return "region"
	case ScaleVehicle:
		return "vehicle"
	default:
		return fmt.Sprintf("scale(%d)", int(s))
	}
}

// ScaleTag - метка масштаба на уровне типов. Реализации закрыты внутри пакета.
type ScaleTag interface {
	scale() Scale
}

// LocalScale - масштабы, угол ячейки которых может служить системой отсчета
type LocalScale interface {
	ScaleTag
	localFrame()
}

type (
	Tile        struct{}
	Chunk       struct{}
	TerrainUnit struct{}
	Segment     struct{}
	Region      struct{}
	Vehicle     struct{}
)

func (Tile) scale() Scale        { return ScaleTile }
func (Chunk) scale() Scale       { return ScaleChunk }
func (TerrainUnit) scale() Scale { return ScaleTerrainUnit }
func (Segment) scale() Scale     { return ScaleSegment }
func (Region) scale() Scale      { return ScaleRegion }
func (Vehicle) scale() Scale     { return ScaleVehicle }

func (Chunk) localFrame()       {}
func (TerrainUnit) localFrame() {}
func (Region) localFrame()      {}

func scaleOf[S ScaleTag]() Scale {
	var s S
	return s.scale()
}

// scaleRatio возвращает множитель между масштабами и признак огрубления.
// Несоизмеримые пары (segment и region) - ошибка программиста.
func scaleRatio(from, to Scale) (n int, coarsen bool) {
	f, t := TilesPerUnit(from), TilesPerUnit(to)
	if t >= f {
		if t%f != 0 {
			fatalf("масштабы %s и %s несоизмеримы", from, to)
		}
		return t / f, true
	}
	if f%t != 0 {
		fatalf("масштабы %s и %s несоизмеримы", from, to)
	}
	return f / t, false
}
