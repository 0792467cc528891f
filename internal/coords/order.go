package coords

import (
	"encoding/binary"
	"slices"

	"github.com/annel0/mmo-coords/internal/vec"
	"github.com/cespare/xxhash/v2"
)

// Equal сравнивает значения, не глядя на гарантию границ
func Equal[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) bool {
	return a.raw == b.raw
}

// Compare задает полный лексикографический порядок: X, Y, затем высота
func Compare[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) int {
	return a.raw.Compare(b.raw)
}

func Less[V vec.Vector[V], O OriginTag, S ScaleTag, B1, B2 Bound](a Coord[V, O, S, B1], b Coord[V, O, S, B2]) bool {
	return a.raw.Compare(b.raw) < 0
}

// Sort упорядочивает точки по Compare
func Sort[V vec.Vector[V], O OriginTag, S ScaleTag, B Bound](s []Coord[V, O, S, B]) {
	slices.SortFunc(s, func(a, b Coord[V, O, S, B]) int {
		return a.raw.Compare(b.raw)
	})
}

// Hash - 64-битный хеш значения (xxhash). Гарантия границ не учитывается,
// поэтому Equal(a, b) влечет a.Hash() == b.Hash(). Подходит для шардирования
// и ключей внешних кешей; для map достаточно самого Coord.
func (c Coord[V, O, S, B]) Hash() uint64 {
	var buf [24]byte
	xy := c.raw.XY()
	binary.LittleEndian.PutUint64(buf[0:], uint64(xy.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(xy.Y))
	n := 16
	if c.raw.Dims() == 3 {
		binary.LittleEndian.PutUint64(buf[16:], uint64(c.raw.Height()))
		n = 24
	}
	return xxhash.Sum64(buf[:n])
}
