package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/annel0/mmo-coords/internal/logging"
	"github.com/annel0/mmo-coords/internal/vec"
	"github.com/go-redis/redis/v8"
)

// RedisPositionRepo хранит позиции в Redis: один ключ на пользователя,
// значение - JSON с сырыми координатами тайла.
type RedisPositionRepo struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *logging.Logger
}

// redisPosition - запись в Redis
type redisPosition struct {
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Z         int       `json:"z"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr      string        // Адрес Redis сервера
	Password  string        // Пароль (пустой если не требуется)
	DB        int           // Номер базы данных
	KeyPrefix string        // Префикс для ключей
	TTL       time.Duration // Время жизни записей, 0 - без ограничения
}

// DefaultRedisConfig возвращает конфигурацию по умолчанию
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:      "localhost:6379",
		KeyPrefix: "mmo:pos:",
	}
}

// NewRedisPositionRepo подключается к Redis и проверяет соединение
func NewRedisPositionRepo(ctx context.Context, config *RedisConfig) (*RedisPositionRepo, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("не удалось подключиться к Redis %s: %w", config.Addr, err)
	}

	logger := logging.GetStorageLogger()
	logger.Info("Подключено к Redis %s", config.Addr)

	return &RedisPositionRepo{
		client:    client,
		keyPrefix: config.KeyPrefix,
		ttl:       config.TTL,
		logger:    logger,
	}, nil
}

func (r *RedisPositionRepo) key(userID uint64) string {
	return r.keyPrefix + strconv.FormatUint(userID, 10)
}

func encodeRedisPosition(pos vec.Vec3) ([]byte, error) {
	return json.Marshal(redisPosition{X: pos.X, Y: pos.Y, Z: pos.Z, UpdatedAt: time.Now().UTC()})
}

// Save сохраняет позицию
func (r *RedisPositionRepo) Save(ctx context.Context, userID uint64, pos vec.Vec3) error {
	if err := validatePosition(userID, pos); err != nil {
		return err
	}

	data, err := encodeRedisPosition(pos)
	if err != nil {
		return fmt.Errorf("сериализация позиции: %w", err)
	}

	if err := r.client.Set(ctx, r.key(userID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("сохранение позиции пользователя %d: %w", userID, err)
	}
	return nil
}

// Load загружает позицию
func (r *RedisPositionRepo) Load(ctx context.Context, userID uint64) (vec.Vec3, bool, error) {
	if userID == 0 {
		return vec.Vec3{}, false, ErrInvalidUser
	}

	data, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return vec.Vec3{}, false, nil
	}
	if err != nil {
		return vec.Vec3{}, false, fmt.Errorf("загрузка позиции пользователя %d: %w", userID, err)
	}

	var rec redisPosition
	if err := json.Unmarshal(data, &rec); err != nil {
		return vec.Vec3{}, false, fmt.Errorf("разбор позиции пользователя %d: %w", userID, err)
	}
	return vec.Vec3{X: rec.X, Y: rec.Y, Z: rec.Z}, true, nil
}

// Delete удаляет позицию
func (r *RedisPositionRepo) Delete(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return ErrInvalidUser
	}

	n, err := r.client.Del(ctx, r.key(userID)).Result()
	if err != nil {
		return fmt.Errorf("удаление позиции пользователя %d: %w", userID, err)
	}
	if n == 0 {
		return fmt.Errorf("пользователь %d: %w", userID, ErrNotFound)
	}
	return nil
}

// BatchSave записывает все позиции одним пайплайном
func (r *RedisPositionRepo) BatchSave(ctx context.Context, positions map[uint64]vec.Vec3) error {
	if len(positions) == 0 {
		return nil
	}
	if err := validateBatch(positions); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for userID, pos := range positions {
		data, err := encodeRedisPosition(pos)
		if err != nil {
			return fmt.Errorf("сериализация позиции пользователя %d: %w", userID, err)
		}
		pipe.Set(ctx, r.key(userID), data, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("выполнение batch: %w", err)
	}
	r.logger.Debug("Сохранено %d позиций в Redis", len(positions))
	return nil
}

// Count возвращает количество сохраненных позиций (SCAN по префиксу)
func (r *RedisPositionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	iter := r.client.Scan(ctx, 0, r.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("подсчет позиций: %w", err)
	}
	return count, nil
}

// Close закрывает соединение с Redis
func (r *RedisPositionRepo) Close() error {
	return r.client.Close()
}
