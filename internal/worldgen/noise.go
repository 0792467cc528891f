package worldgen

import (
	"github.com/aquilax/go-perlin"
)

// Noise - шум Перлина со своим сидом. Значения приведены к [0, 1].
type Noise struct {
	p     *perlin.Perlin
	scale float64
}

// NewNoise создает генератор шума.
// alpha - сглаживание, beta - частота, octaves - количество октав,
// scale - множитель координат перед выборкой.
func NewNoise(seed int64, alpha, beta float64, octaves int32, scale float64) *Noise {
	return &Noise{
		p:     perlin.NewPerlin(alpha, beta, octaves, seed),
		scale: scale,
	}
}

// Sample возвращает значение шума в точке (x, y), от 0 до 1
func (n *Noise) Sample(x, y int) float64 {
	v := n.p.Noise2D(float64(x)*n.scale, float64(y)*n.scale)
	v = (v + 1.0) / 2.0
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
