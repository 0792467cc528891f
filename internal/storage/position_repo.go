package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/annel0/mmo-coords/internal/coords"
	"github.com/annel0/mmo-coords/internal/vec"
)

var (
	// ErrInvalidUser - нулевой userID
	ErrInvalidUser = errors.New("недействительный userID")
	// ErrHeightOutOfRange - высота вне [coords.MinZ, coords.MaxZ]
	ErrHeightOutOfRange = errors.New("высота вне допустимого диапазона")
	// ErrNotFound - записи нет
	ErrNotFound = errors.New("позиция не найдена")
)

// PositionRepo определяет интерфейс для сохранения и загрузки позиций.
// Репозиторий хранит только сырые координаты тайла (x, y, z) без меток:
// метки снимает и навешивает PositionStore.
type PositionRepo interface {
	// Save сохраняет позицию пользователя.
	Save(ctx context.Context, userID uint64, pos vec.Vec3) error

	// Load загружает позицию. found == false, если позиции еще нет.
	Load(ctx context.Context, userID uint64) (pos vec.Vec3, found bool, err error)

	// Delete удаляет позицию. Если записи нет, возвращает ErrNotFound.
	Delete(ctx context.Context, userID uint64) error

	// BatchSave сохраняет позиции нескольких пользователей разом.
	// Перед записью проверяются все элементы.
	BatchSave(ctx context.Context, positions map[uint64]vec.Vec3) error
}

// validatePosition проверяет userID и высоту
func validatePosition(userID uint64, pos vec.Vec3) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if pos.Z < coords.MinZ || pos.Z > coords.MaxZ {
		return fmt.Errorf("%w: %d (должна быть %d..%d)", ErrHeightOutOfRange, pos.Z, coords.MinZ, coords.MaxZ)
	}
	return nil
}

func validateBatch(positions map[uint64]vec.Vec3) error {
	for userID, pos := range positions {
		if err := validatePosition(userID, pos); err != nil {
			return fmt.Errorf("batch, пользователь %d: %w", userID, err)
		}
	}
	return nil
}
