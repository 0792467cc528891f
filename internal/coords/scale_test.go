package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTilesPerUnit(t *testing.T) {
	tests := []struct {
		scale Scale
		want  int
	}{
		{ScaleTile, 1},
		{ScaleChunk, 12},
		{ScaleTerrainUnit, 24},
		{ScaleSegment, 384},
		{ScaleRegion, 4320},
		{ScaleVehicle, 1},
	}
	for _, tt := range tests {
		t.Run(tt.scale.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TilesPerUnit(tt.scale))
		})
	}
}

func TestMetadataOutsideEnumPanics(t *testing.T) {
	assert.Panics(t, func() { TilesPerUnit(Scale(42)) })
	assert.Panics(t, func() { OriginFromScale(ScaleTile) })
	assert.Panics(t, func() { OriginFromScale(ScaleSegment) })
	assert.Panics(t, func() { OriginFromScale(Scale(-1)) })
	assert.Panics(t, func() { ScaleFromOrigin(OriginAbs) })
	assert.Panics(t, func() { ScaleFromOrigin(OriginRel) })
	assert.Panics(t, func() { ScaleFromOrigin(Origin(17)) })
}

func TestOriginScaleMappingIsSymmetric(t *testing.T) {
	for _, s := range []Scale{ScaleChunk, ScaleTerrainUnit, ScaleRegion} {
		assert.Equal(t, s, ScaleFromOrigin(OriginFromScale(s)), s.String())
	}
	assert.Equal(t, OriginRegion, OriginFromScale(ScaleRegion))
}

func TestTagsReflectAtRuntime(t *testing.T) {
	p := New[Local[Region], Chunk](1, 2)
	assert.Equal(t, OriginRegion, p.Origin())
	assert.Equal(t, ScaleChunk, p.Scale())
	assert.False(t, p.InBounds())

	ib := NewIB[Local[Chunk], Tile](3, 4)
	assert.Equal(t, OriginChunk, ib.Origin())
	assert.True(t, ib.InBounds())
	assert.False(t, ib.Plain().InBounds())

	assert.Equal(t, OriginActive, New3[Active, Vehicle](0, 0, 0).Origin())
	assert.Equal(t, ScaleVehicle, New3[Active, Vehicle](0, 0, 0).Scale())
	assert.Equal(t, "terrain", ScaleTerrainUnit.String())
	assert.Equal(t, "origin(9)", Origin(9).String())
}

func TestIncommensurableScalesPanic(t *testing.T) {
	assert.Panics(t, func() { ProjectTo[Region](New[Abs, Segment](1, 1)) })
	assert.Panics(t, func() { ProjectTo[Segment](New[Abs, Region](1, 1)) })
	assert.NotPanics(t, func() { ProjectTo[Segment](New[Abs, Chunk](1, 1)) })
}
