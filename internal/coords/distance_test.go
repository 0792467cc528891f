package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistances(t *testing.T) {
	a := New[Abs, Tile](0, 0)
	b := New[Abs, Tile](3, -4)

	assert.Equal(t, 4, SquareDist(a, b))
	assert.Equal(t, 7, ManhattanDist(a, b))
	assert.InDelta(t, 5.0, TrigDist(a, b), 1e-9)
	assert.Equal(t, SquareDist(b, a), SquareDist(a, b))

	a3 := New3[Abs, Tile](0, 0, -5)
	b3 := New3[Abs, Tile](1, 1, 5)
	assert.Equal(t, 10, SquareDist(a3, b3), "высота тоже считается")
	assert.Equal(t, 12, ManhattanDist(a3, b3))
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, New[Abs, Tile](1, -2), Midpoint(New[Abs, Tile](0, 0), New[Abs, Tile](3, -4)))
	assert.Equal(t, New[Abs, Tile](-2, -1), Midpoint(New[Abs, Tile](-3, -1), New[Abs, Tile](0, 0)))
	assert.Equal(t, New3[Abs, Tile](2, 2, -1), Midpoint(New3[Abs, Tile](2, 2, -2), New3[Abs, Tile](2, 2, 1)))
}

func TestClosestPointsFirst(t *testing.T) {
	center := New[Abs, Chunk](5, 5)

	assert.Equal(t, []PointAbsChunk{
		New[Abs, Chunk](5, 5),
		New[Abs, Chunk](4, 4),
		New[Abs, Chunk](5, 4),
		New[Abs, Chunk](6, 4),
		New[Abs, Chunk](6, 5),
		New[Abs, Chunk](6, 6),
		New[Abs, Chunk](5, 6),
		New[Abs, Chunk](4, 6),
		New[Abs, Chunk](4, 5),
	}, ClosestPointsFirst(center, 1))

	assert.Equal(t, []PointAbsChunk{center}, ClosestPointsFirst(center, 0))
	assert.Nil(t, ClosestPointsFirst(center, -1))
}

func TestClosestPointsFirstCoversSquare(t *testing.T) {
	center := New3[Abs, Tile](-7, 3, 2)
	const radius = 4

	pts := ClosestPointsFirst(center, radius)
	require.Len(t, pts, (2*radius+1)*(2*radius+1))

	seen := map[TripointAbsTile]bool{}
	last := 0
	for _, p := range pts {
		require.False(t, seen[p], "повтор %v", p)
		seen[p] = true

		d := SquareDist(center, p)
		require.LessOrEqual(t, d, radius)
		require.GreaterOrEqual(t, d, last, "порядок нарушен на %v", p)
		require.Equal(t, 2, p.Z())
		last = d
	}
}

func TestRLDist(t *testing.T) {
	cases := []struct {
		a, b        PointAbsTile
		trig, plain int
	}{
		{New[Abs, Tile](0, 0), New[Abs, Tile](3, 4), 5, 4},
		{New[Abs, Tile](0, 0), New[Abs, Tile](1, 1), 1, 1},
		{New[Abs, Tile](0, 0), New[Abs, Tile](2, 3), 3, 3},
		{New[Abs, Tile](-5, 2), New[Abs, Tile](5, 2), 10, 10},
		{New[Abs, Tile](7, 7), New[Abs, Tile](7, 7), 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.trig, RLDist(c.a, c.b, true), "евклидово %v-%v", c.a, c.b)
		assert.Equal(t, c.plain, RLDist(c.a, c.b, false), "чебышёвское %v-%v", c.a, c.b)
		assert.Equal(t, RLDist(c.b, c.a, true), RLDist(c.a, c.b, true))
	}

	assert.InDelta(t, 3.6055, RLDistExact(New[Abs, Tile](0, 0), New[Abs, Tile](2, 3), true), 1e-4)
	assert.Equal(t, 3.0, RLDistExact(New[Abs, Tile](0, 0), New[Abs, Tile](2, 3), false))
	assert.Equal(t, 10, RLDist(New3[Abs, Tile](0, 0, -5), New3[Abs, Tile](1, 1, 5), false))
}
