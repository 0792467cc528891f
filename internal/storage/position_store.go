package storage

import (
	"context"

	"github.com/annel0/mmo-coords/internal/coords"
	"github.com/annel0/mmo-coords/internal/vec"
)

// PositionStore сохраняет абсолютные позиции тайлов. Перед записью метки
// снимаются, после чтения навешиваются заново: репозиторий видит только
// сырые (x, y, z).
type PositionStore struct {
	repo    PositionRepo
	metrics *Metrics
}

// NewPositionStore оборачивает репозиторий. metrics может быть nil.
func NewPositionStore(repo PositionRepo, metrics *Metrics) *PositionStore {
	return &PositionStore{repo: repo, metrics: metrics}
}

func (s *PositionStore) Save(ctx context.Context, userID uint64, p coords.TripointAbsTile) error {
	err := s.repo.Save(ctx, userID, p.Raw())
	s.metrics.positionOp("save", err)
	return err
}

// Load возвращает позицию пользователя. found == false при первом входе.
func (s *PositionStore) Load(ctx context.Context, userID uint64) (coords.TripointAbsTile, bool, error) {
	raw, found, err := s.repo.Load(ctx, userID)
	s.metrics.positionOp("load", err)
	if err != nil || !found {
		return coords.TripointAbsTile{}, found, err
	}
	return coords.FromRaw[coords.Abs, coords.Tile](raw), true, nil
}

// LoadDecomposed загружает позицию сразу разложенной по чанку и региону
func (s *PositionStore) LoadDecomposed(ctx context.Context, userID uint64) (coords.Decomposition, int, bool, error) {
	p, found, err := s.Load(ctx, userID)
	if err != nil || !found {
		return coords.Decomposition{}, 0, found, err
	}
	return coords.Decompose(p.XY()), p.Z(), true, nil
}

func (s *PositionStore) Delete(ctx context.Context, userID uint64) error {
	err := s.repo.Delete(ctx, userID)
	s.metrics.positionOp("delete", err)
	return err
}

// SaveAll сохраняет позиции пачкой
func (s *PositionStore) SaveAll(ctx context.Context, positions map[uint64]coords.TripointAbsTile) error {
	raw := make(map[uint64]vec.Vec3, len(positions))
	for userID, p := range positions {
		raw[userID] = p.Raw()
	}
	err := s.repo.BatchSave(ctx, raw)
	s.metrics.positionOp("batch_save", err)
	return err
}
