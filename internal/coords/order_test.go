package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIgnoresBound(t *testing.T) {
	ib := NewIB[Local[Chunk], Tile](3, 4)
	free := New[Local[Chunk], Tile](3, 4)

	assert.True(t, Equal(ib, free))
	assert.False(t, Equal(ib, New[Local[Chunk], Tile](4, 3)))
	assert.Equal(t, 0, Compare(ib, free))
	assert.Equal(t, ib.Hash(), free.Hash())
}

func TestCompareIsLexicographic(t *testing.T) {
	assert.Equal(t, -1, Compare(New[Abs, Tile](-1, 100), New[Abs, Tile](0, -100)))
	assert.Equal(t, 1, Compare(New[Abs, Tile](0, 1), New[Abs, Tile](0, 0)))
	assert.Equal(t, -1, Compare(New3[Abs, Tile](0, 0, -1), New3[Abs, Tile](0, 0, 0)))
	assert.True(t, Less(New[Abs, Chunk](1, 1), NewIB[Abs, Chunk](1, 2)))
	assert.False(t, Less(New[Abs, Chunk](1, 1), New[Abs, Chunk](1, 1)))
}

func TestSort(t *testing.T) {
	pts := []TripointAbsTile{
		New3[Abs, Tile](1, 0, 0),
		New3[Abs, Tile](0, 5, 0),
		New3[Abs, Tile](0, 5, -2),
		New3[Abs, Tile](-3, 9, 9),
	}
	Sort(pts)
	assert.Equal(t, []TripointAbsTile{
		New3[Abs, Tile](-3, 9, 9),
		New3[Abs, Tile](0, 5, -2),
		New3[Abs, Tile](0, 5, 0),
		New3[Abs, Tile](1, 0, 0),
	}, pts)
}

func TestHashDistinguishesPoints(t *testing.T) {
	seen := make(map[uint64]PointAbsChunk)
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			p := New[Abs, Chunk](x, y)
			h := p.Hash()
			prev, dup := seen[h]
			assert.False(t, dup, "коллизия %v и %v", prev, p)
			seen[h] = p
		}
	}

	assert.NotEqual(t, New3[Abs, Tile](1, 2, 0).Hash(), New3[Abs, Tile](1, 2, 1).Hash())
	assert.Equal(t, New3[Abs, Tile](1, 2, 3).Hash(), New3[Abs, Tile](1, 2, 3).Hash())
}

func TestCoordAsMapKey(t *testing.T) {
	counts := map[PointAbsChunk]int{}
	counts[New[Abs, Chunk](1, 2)]++
	counts[ProjectTo[Chunk](New[Abs, Tile](12, 24))]++
	counts[New[Abs, Chunk](2, 1)]++

	assert.Len(t, counts, 2)
	assert.Equal(t, 2, counts[New[Abs, Chunk](1, 2)])
}
