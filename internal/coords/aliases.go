package coords

import "github.com/annel0/mmo-coords/internal/vec"

// Короткие имена для плоских и объемных точек
type (
	Point[O OriginTag, S ScaleTag]      = Coord[vec.Vec2, O, S, Free]
	Tripoint[O OriginTag, S ScaleTag]   = Coord[vec.Vec3, O, S, Free]
	PointIB[O OriginTag, S ScaleTag]    = Coord[vec.Vec2, O, S, InBounds]
	TripointIB[O OriginTag, S ScaleTag] = Coord[vec.Vec3, O, S, InBounds]
)

// Часто используемые сочетания
type (
	PointRelTile    = Coord[vec.Vec2, Rel, Tile, Free]
	TripointRelTile = Coord[vec.Vec3, Rel, Tile, Free]
	PointRelChunk   = Coord[vec.Vec2, Rel, Chunk, Free]

	PointAbsTile        = Coord[vec.Vec2, Abs, Tile, Free]
	TripointAbsTile     = Coord[vec.Vec3, Abs, Tile, Free]
	PointAbsChunk       = Coord[vec.Vec2, Abs, Chunk, Free]
	TripointAbsChunk    = Coord[vec.Vec3, Abs, Chunk, Free]
	PointAbsTerrain     = Coord[vec.Vec2, Abs, TerrainUnit, Free]
	TripointAbsTerrain  = Coord[vec.Vec3, Abs, TerrainUnit, Free]
	PointAbsSegment     = Coord[vec.Vec2, Abs, Segment, Free]
	PointAbsRegion      = Coord[vec.Vec2, Abs, Region, Free]
	TripointActiveTile  = Coord[vec.Vec3, Active, Tile, Free]
	PointChunkTileIB    = Coord[vec.Vec2, Local[Chunk], Tile, InBounds]
	TripointChunkTileIB = Coord[vec.Vec3, Local[Chunk], Tile, InBounds]
	PointRegionChunkIB  = Coord[vec.Vec2, Local[Region], Chunk, InBounds]
	PointRegionTerrain  = Coord[vec.Vec2, Local[Region], TerrainUnit, Free]
)
