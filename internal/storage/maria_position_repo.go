package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/annel0/mmo-coords/internal/vec"
	_ "github.com/go-sql-driver/mysql"
)

// MariaPositionRepo реализует PositionRepo для MariaDB/MySQL.
// Использует таблицу tile_positions.
type MariaPositionRepo struct {
	db *sql.DB
}

const upsertPositionQuery = `
	INSERT INTO tile_positions (user_id, x, y, z)
	VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		x = VALUES(x),
		y = VALUES(y),
		z = VALUES(z),
		updated_at = CURRENT_TIMESTAMP
`

// NewMariaPositionRepo открывает соединение и создает таблицу, если ее нет.
//
// dsn - строка подключения (user:pass@tcp(host:port)/dbname)
func NewMariaPositionRepo(ctx context.Context, dsn string) (*MariaPositionRepo, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к MariaDB: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось проверить соединение с MariaDB: %w", err)
	}

	repo := &MariaPositionRepo{db: db}
	if err := repo.createTable(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *MariaPositionRepo) createTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tile_positions (
			user_id    BIGINT UNSIGNED PRIMARY KEY,
			x          INT         NOT NULL,
			y          INT         NOT NULL,
			z          TINYINT     NOT NULL DEFAULT 0,
			updated_at TIMESTAMP   DEFAULT CURRENT_TIMESTAMP
			           ON UPDATE   CURRENT_TIMESTAMP,
			INDEX idx_updated_at (updated_at)
		) ENGINE=InnoDB
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ошибка создания таблицы tile_positions: %w", err)
	}
	return nil
}

// Save сохраняет позицию (INSERT ... ON DUPLICATE KEY UPDATE)
func (r *MariaPositionRepo) Save(ctx context.Context, userID uint64, pos vec.Vec3) error {
	if err := validatePosition(userID, pos); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, upsertPositionQuery, userID, pos.X, pos.Y, pos.Z); err != nil {
		return fmt.Errorf("ошибка сохранения позиции для пользователя %d: %w", userID, err)
	}
	return nil
}

// Load загружает позицию
func (r *MariaPositionRepo) Load(ctx context.Context, userID uint64) (vec.Vec3, bool, error) {
	if userID == 0 {
		return vec.Vec3{}, false, ErrInvalidUser
	}

	var pos vec.Vec3
	err := r.db.QueryRowContext(ctx, `SELECT x, y, z FROM tile_positions WHERE user_id = ?`, userID).
		Scan(&pos.X, &pos.Y, &pos.Z)
	if errors.Is(err, sql.ErrNoRows) {
		return vec.Vec3{}, false, nil
	}
	if err != nil {
		return vec.Vec3{}, false, fmt.Errorf("ошибка загрузки позиции для пользователя %d: %w", userID, err)
	}

	return pos, true, nil
}

// Delete удаляет позицию
func (r *MariaPositionRepo) Delete(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return ErrInvalidUser
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM tile_positions WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления позиции для пользователя %d: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества затронутых строк: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("пользователь %d: %w", userID, ErrNotFound)
	}
	return nil
}

// BatchSave сохраняет позиции в одной транзакции
func (r *MariaPositionRepo) BatchSave(ctx context.Context, positions map[uint64]vec.Vec3) error {
	if len(positions) == 0 {
		return nil
	}
	if err := validateBatch(positions); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertPositionQuery)
	if err != nil {
		return fmt.Errorf("ошибка подготовки запроса: %w", err)
	}
	defer stmt.Close()

	for userID, pos := range positions {
		if _, err := stmt.ExecContext(ctx, userID, pos.X, pos.Y, pos.Z); err != nil {
			return fmt.Errorf("ошибка сохранения позиции для пользователя %d в batch: %w", userID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}

// Close закрывает соединение с базой данных
func (r *MariaPositionRepo) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
