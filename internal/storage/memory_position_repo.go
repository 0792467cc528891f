package storage

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/annel0/mmo-coords/internal/vec"
)

// MemoryPositionRepo реализует PositionRepo в памяти.
// Используется, когда Redis и MariaDB не настроены, и в тестах.
// Данные теряются при перезапуске.
type MemoryPositionRepo struct {
	mu   sync.RWMutex
	data map[uint64]vec.Vec3 // userID -> позиция
}

func NewMemoryPositionRepo() *MemoryPositionRepo {
	return &MemoryPositionRepo{
		data: make(map[uint64]vec.Vec3),
	}
}

// Save сохраняет позицию в памяти.
func (r *MemoryPositionRepo) Save(ctx context.Context, userID uint64, pos vec.Vec3) error {
	if err := validatePosition(userID, pos); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[userID] = pos
	return nil
}

// Load загружает позицию из памяти.
func (r *MemoryPositionRepo) Load(ctx context.Context, userID uint64) (vec.Vec3, bool, error) {
	if userID == 0 {
		return vec.Vec3{}, false, ErrInvalidUser
	}
	if err := ctx.Err(); err != nil {
		return vec.Vec3{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.data[userID]
	return pos, exists, nil
}

// Delete удаляет позицию из памяти.
func (r *MemoryPositionRepo) Delete(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[userID]; !exists {
		return fmt.Errorf("пользователь %d: %w", userID, ErrNotFound)
	}

	delete(r.data, userID)
	return nil
}

// BatchSave сохраняет позиции нескольких пользователей. При ошибке
// валидации не записывается ничего.
func (r *MemoryPositionRepo) BatchSave(ctx context.Context, positions map[uint64]vec.Vec3) error {
	if len(positions) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateBatch(positions); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	maps.Copy(r.data, positions)
	return nil
}

// GetAllPositions возвращает копию всех позиций (для отладки).
func (r *MemoryPositionRepo) GetAllPositions() map[uint64]vec.Vec3 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.data)
}

// Count возвращает количество сохраненных позиций.
func (r *MemoryPositionRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Clear очищает все позиции (для тестов).
func (r *MemoryPositionRepo) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[uint64]vec.Vec3)
}
