package worldgen

import (
	"math"

	"github.com/annel0/mmo-coords/internal/coords"
	"github.com/annel0/mmo-coords/internal/logging"
)

// BiomeType представляет тип биома
type BiomeType int

const (
	BiomePlains BiomeType = iota
	BiomeDesert
	BiomeForest
	BiomeMountains
	BiomeWater
	BiomeDeepWater
)

func (b BiomeType) String() string {
	switch b {
	case BiomePlains:
		return "plains"
	case BiomeDesert:
		return "desert"
	case BiomeForest:
		return "forest"
	case BiomeMountains:
		return "mountains"
	case BiomeWater:
		return "water"
	case BiomeDeepWater:
		return "deep_water"
	}
	return "unknown"
}

// Пороги нормированной высоты
const (
	DeepWaterMax    = 0.20 // Ниже - глубинная вода
	ShallowWaterMax = 0.30 // Ниже - мелководье
	MountainStart   = 0.80 // Выше - горы
)

// Options - параметры генератора
type Options struct {
	Seed       int64
	Alpha      float64
	Beta       float64
	Octaves    int32
	NoiseScale float64 // Масштаб шума высоты на единицу рельефа
	BiomeScale float64 // Масштаб шума биомов
}

// DefaultOptions возвращает настройки по умолчанию для сида seed
func DefaultOptions(seed int64) Options {
	return Options{
		Seed:       seed,
		Alpha:      2.0,
		Beta:       2.0,
		Octaves:    3,
		NoiseScale: 0.05,
		BiomeScale: 0.02,
	}
}

// Generator отвечает на вопросы о рельефе в единицах рельефа. Самостоятельного
// состояния мира у него нет: один и тот же сид дает один и тот же ответ.
type Generator struct {
	height *Noise
	biome  *Noise
	logger *logging.Logger
}

func NewGenerator(opts Options) *Generator {
	return &Generator{
		height: NewNoise(opts.Seed, opts.Alpha, opts.Beta, opts.Octaves, opts.NoiseScale),
		biome:  NewNoise(opts.Seed+42, opts.Alpha, opts.Beta, opts.Octaves, opts.BiomeScale),
		logger: logging.GetWorldgenLogger(),
	}
}

func (g *Generator) rawHeight(p coords.PointAbsTerrain) float64 {
	return g.height.Sample(p.X(), p.Y())
}

// levelOf переводит нормированную высоту в уровень [MinZ, MaxZ]
func levelOf(h float64) int {
	levels := coords.MaxZ - coords.MinZ + 1
	z := coords.MinZ + int(math.Floor(h*float64(levels)))
	return min(max(z, coords.MinZ), coords.MaxZ)
}

// Elevation возвращает уровень поверхности единицы рельефа p
func (g *Generator) Elevation(p coords.PointAbsTerrain) int {
	return levelOf(g.rawHeight(p))
}

// TileElevation - уровень поверхности под тайлом
func (g *Generator) TileElevation(p coords.PointAbsTile) int {
	return g.Elevation(coords.ProjectTo[coords.TerrainUnit](p))
}

// Biome определяет биом единицы рельефа
func (g *Generator) Biome(p coords.PointAbsTerrain) BiomeType {
	h := g.rawHeight(p)
	switch {
	case h < DeepWaterMax:
		return BiomeDeepWater
	case h < ShallowWaterMax:
		return BiomeWater
	case h > MountainStart:
		return BiomeMountains
	}

	b := g.biome.Sample(p.X(), p.Y())
	switch {
	case b < 0.3:
		return BiomeDesert
	case b > 0.6:
		return BiomeForest
	default:
		return BiomePlains
	}
}

// SurfaceChunk возвращает чанк c с высотой поверхности его единицы рельефа
func (g *Generator) SurfaceChunk(c coords.PointAbsChunk) coords.TripointAbsChunk {
	return coords.Lift(c, g.Elevation(coords.ProjectTo[coords.TerrainUnit](c)))
}
