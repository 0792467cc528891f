package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowConversion(t *testing.T) {
	w := NewWindow(New[Abs, Chunk](-5, 10), 11)

	p := New3[Abs, Tile](-60, 121, 3)
	a := ToWindow(w, p)
	assert.Equal(t, New3[Active, Tile](0, 1, 3), a)
	assert.True(t, InWindow(w, a))
	assert.Equal(t, p, FromWindow(w, a))

	assert.Equal(t, New[Active, Chunk](0, 0), ToWindow(w, New[Abs, Chunk](-5, 10)))
	assert.Equal(t, New[Active, Chunk](10, 10), ToWindow(w, New[Abs, Chunk](5, 20)))
	assert.True(t, InWindow(w, New[Active, Chunk](10, 10)))
	assert.False(t, InWindow(w, New[Active, Chunk](11, 10)))

	outside := ToWindow(w, New[Abs, Tile](-61, 121))
	assert.Equal(t, New[Active, Tile](-1, 1), outside)
	assert.False(t, InWindow(w, outside))
	assert.False(t, InWindow(w, New[Active, Tile](0, 132)))
	assert.True(t, InWindow(w, New[Active, Tile](131, 131)))
}

func TestWindowAgreesWithBounds(t *testing.T) {
	w := NewWindow(New[Abs, Chunk](2, -3), 3)
	b := w.Bounds()
	assert.Equal(t, New[Abs, Tile](24, -36), b.Min)
	assert.Equal(t, New[Abs, Tile](60, 0), b.Max)

	for x := 10; x < 70; x += 3 {
		for y := -50; y < 10; y += 3 {
			p := New[Abs, Tile](x, y)
			require.Equal(t, b.Contains(p), InWindow(w, ToWindow(w, p)), "p=%v", p)
		}
	}
}

func TestWindowMoves(t *testing.T) {
	w := NewWindow(New[Abs, Chunk](0, 0), 11)

	shifted := w.Shift(New[Rel, Chunk](3, -2))
	assert.Equal(t, New[Abs, Chunk](3, -2), shifted.Corner())
	assert.Equal(t, 11, shifted.Size())
	assert.Equal(t, New[Abs, Chunk](0, 0), w.Corner(), "исходное окно не меняется")

	centered := w.Recenter(New[Abs, Chunk](0, 0))
	assert.Equal(t, New[Abs, Chunk](-5, -5), centered.Corner())
	assert.Equal(t, New[Active, Chunk](5, 5), ToWindow(centered, New[Abs, Chunk](0, 0)))
	assert.Equal(t, "window(-5,-5)×11", centered.String())
}

func TestWindowRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { NewWindow(New[Abs, Chunk](0, 0), 0) })

	w := NewWindow(New[Abs, Chunk](0, 0), 4)
	assert.Panics(t, func() { ToWindow(w, New[Abs, Region](0, 0)) })
	assert.Panics(t, func() { InWindow(w, New[Active, TerrainUnit](0, 0)) })
}
