package worldgen

import (
	"github.com/annel0/mmo-coords/internal/coords"
)

// Heightmap - уровни поверхности всех единиц рельефа одного региона
type Heightmap struct {
	Region coords.PointAbsRegion
	levels [coords.TerrainUnitsPerRegion * coords.TerrainUnitsPerRegion]int8
}

// At возвращает уровень единицы рельефа, заданной внутри региона
func (h *Heightmap) At(p coords.PointIB[coords.Local[coords.Region], coords.TerrainUnit]) int {
	return int(h.levels[p.Y()*coords.TerrainUnitsPerRegion+p.X()])
}

// Lookup возвращает уровень абсолютной единицы рельефа. ok == false, если
// она лежит в другом регионе.
func (h *Heightmap) Lookup(p coords.PointAbsTerrain) (int, bool) {
	region, local := coords.ProjectRemain[coords.Region](p)
	if region != h.Region {
		return 0, false
	}
	return h.At(local), true
}

// Range возвращает минимальный и максимальный уровни
func (h *Heightmap) Range() (lo, hi int) {
	lo, hi = coords.MaxZ, coords.MinZ
	for _, z := range h.levels {
		lo = min(lo, int(z))
		hi = max(hi, int(z))
	}
	return lo, hi
}

// RegionHeightmap строит карту высот региона r
func (g *Generator) RegionHeightmap(r coords.PointAbsRegion) *Heightmap {
	hm := &Heightmap{Region: r}
	for p := range coords.ProjectBounds[coords.TerrainUnit](r).All() {
		_, local := coords.ProjectRemain[coords.Region](p)
		hm.levels[local.Y()*coords.TerrainUnitsPerRegion+local.X()] = int8(g.Elevation(p))
	}
	g.logger.Debug("Карта высот региона %v построена", r)
	return hm
}
