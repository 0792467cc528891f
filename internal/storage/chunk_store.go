package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/annel0/mmo-coords/internal/coords"
	"github.com/annel0/mmo-coords/internal/logging"
	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"
)

// ErrStoreClosed возвращается после Close
var ErrStoreClosed = errors.New("хранилище чанков закрыто")

// Первый байт значения
const (
	payloadRaw  byte = 0
	payloadZstd byte = 1
)

// ChunkStore хранит непрозрачное содержимое чанков в BadgerDB.
// Ключ - абсолютный чанк с уровнем; ключи одного сегмента имеют общий
// префикс, поэтому ListSegment читает только свой диапазон.
type ChunkStore struct {
	db      *badger.DB
	enc     *zstd.Encoder
	dec     *zstd.Decoder
	metrics *Metrics
	logger  *logging.Logger

	mu     sync.RWMutex
	closed bool
}

// ChunkStoreOptions - параметры NewChunkStore
type ChunkStoreOptions struct {
	// Dir - каталог базы. Пустая строка - база в памяти.
	Dir string
	// Compress - сжимать содержимое zstd
	Compress bool
	Metrics  *Metrics
}

// NewChunkStore открывает хранилище чанков
func NewChunkStore(opts ChunkStoreOptions) (*ChunkStore, error) {
	bopts := badger.DefaultOptions(opts.Dir)
	if opts.Dir == "" {
		bopts = bopts.WithInMemory(true)
	}
	bopts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	s := &ChunkStore{
		db:      db,
		dec:     dec,
		metrics: opts.Metrics,
		logger:  logging.GetStorageLogger(),
	}

	if opts.Compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			dec.Close()
			db.Close()
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		s.enc = enc
	}

	s.logger.Info("Хранилище чанков открыто (dir=%q, zstd=%v)", opts.Dir, opts.Compress)
	return s, nil
}

func segmentPrefix(seg coords.PointAbsSegment) string {
	return fmt.Sprintf("chunk:%d:%d:", seg.X(), seg.Y())
}

// chunkKey: chunk:<сегмент x>:<сегмент y>:<x>:<y>:<z>
func chunkKey(c coords.TripointAbsChunk) []byte {
	seg := coords.ProjectTo[coords.Segment](c.XY())
	return fmt.Appendf(nil, "%s%d:%d:%d", segmentPrefix(seg), c.X(), c.Y(), c.Z())
}

func parseChunkKey(key []byte) (coords.TripointAbsChunk, error) {
	var sx, sy, x, y, z int
	if _, err := fmt.Sscanf(string(key), "chunk:%d:%d:%d:%d:%d", &sx, &sy, &x, &y, &z); err != nil {
		return coords.TripointAbsChunk{}, fmt.Errorf("ключ %q: %w", key, err)
	}
	return coords.New3[coords.Abs, coords.Chunk](x, y, z), nil
}

func (s *ChunkStore) begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

func (s *ChunkStore) encode(data []byte) []byte {
	if s.enc == nil {
		return append([]byte{payloadRaw}, data...)
	}
	return s.enc.EncodeAll(data, []byte{payloadZstd})
}

func (s *ChunkStore) decode(val []byte) ([]byte, error) {
	if len(val) == 0 {
		return nil, errors.New("пустое значение")
	}
	switch val[0] {
	case payloadRaw:
		return append([]byte(nil), val[1:]...), nil
	case payloadZstd:
		return s.dec.DecodeAll(val[1:], nil)
	default:
		return nil, fmt.Errorf("неизвестный формат значения %d", val[0])
	}
}

// Put записывает содержимое чанка c
func (s *ChunkStore) Put(ctx context.Context, c coords.TripointAbsChunk, data []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.begin(ctx); err != nil {
		return err
	}

	val := s.encode(data)
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(c), val)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения чанка %v: %w", c, err)
	}

	s.metrics.chunkOp("put")
	s.metrics.chunkStored(len(val))
	return nil
}

// Get читает содержимое чанка. found == false, если чанк не записан.
func (s *ChunkStore) Get(ctx context.Context, c coords.TripointAbsChunk) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.begin(ctx); err != nil {
		return nil, false, err
	}

	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(c))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		s.metrics.chunkOp("miss")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения чанка %v: %w", c, err)
	}

	data, err := s.decode(val)
	if err != nil {
		return nil, false, fmt.Errorf("чанк %v: %w", c, err)
	}
	s.metrics.chunkOp("get")
	return data, true, nil
}

// Delete удаляет чанк. Удаление отсутствующего чанка не ошибка.
func (s *ChunkStore) Delete(ctx context.Context, c coords.TripointAbsChunk) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.begin(ctx); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(chunkKey(c))
	})
	if err != nil {
		return fmt.Errorf("ошибка удаления чанка %v: %w", c, err)
	}
	s.metrics.chunkOp("delete")
	return nil
}

// ListSegment возвращает записанные чанки сегмента seg в порядке coords.Compare
func (s *ChunkStore) ListSegment(ctx context.Context, seg coords.PointAbsSegment) ([]coords.TripointAbsChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.begin(ctx); err != nil {
		return nil, err
	}

	prefix := []byte(segmentPrefix(seg))
	var out []coords.TripointAbsChunk
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := parseChunkKey(it.Item().Key())
			if err != nil {
				return err
			}
			out = append(out, c)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("перебор сегмента %v: %w", seg, err)
	}

	coords.Sort(out)
	s.metrics.chunkOp("list")
	return out, nil
}

// Close закрывает хранилище. Повторный вызов ничего не делает.
func (s *ChunkStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if s.enc != nil {
		s.enc.Close()
	}
	s.dec.Close()
	return s.db.Close()
}
