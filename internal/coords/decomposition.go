package coords

import "fmt"

// Decomposition - абсолютная позиция тайла, заранее разложенная по всем более
// крупным масштабам. Для кода, которому неудобно работать с проекциями
// напрямую (рендер, редактор карты). Поля только для чтения: после изменения
// позиции нужно вызвать Recompute.
type Decomposition struct {
	Tile            PointAbsTile
	Chunk           PointAbsChunk
	TileInChunk     PointChunkTileIB
	Region          PointAbsRegion
	ChunkInRegion   PointRegionChunkIB
	TerrainInRegion PointIB[Local[Region], TerrainUnit]
}

// Decompose раскладывает абсолютную позицию тайла
func Decompose(p PointAbsTile) Decomposition {
	var d Decomposition
	d.Recompute(p)
	return d
}

// Recompute заново раскладывает позицию. Все поля выводятся через
// ProjectRemain и ProjectToIB, собственной арифметики деления здесь нет.
func (d *Decomposition) Recompute(p PointAbsTile) {
	d.Tile = p
	d.Chunk, d.TileInChunk = ProjectRemain[Chunk](p)
	d.Region, d.ChunkInRegion = ProjectRemain[Region](d.Chunk)
	d.TerrainInRegion = ProjectToIB[TerrainUnit](d.ChunkInRegion)
}

// FromRegionLocal пересчитывает позицию по чанку внутри текущего региона и
// тайлу внутри этого чанка. Регион остается прежним.
func (d *Decomposition) FromRegionLocal(chunk PointRegionChunkIB, tile PointChunkTileIB) {
	d.Recompute(ProjectCombine(ProjectCombine(d.Region, chunk), tile))
}

func (d Decomposition) String() string {
	return fmt.Sprintf("tile=%v chunk=%v+%v region=%v+%v terrain=%v",
		d.Tile, d.Chunk, d.TileInChunk, d.Region, d.ChunkInRegion, d.TerrainInRegion)
}
