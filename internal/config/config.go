package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации coordtool и адаптеров хранения.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Storage  StorageConfig  `yaml:"storage"`
	Worldgen WorldgenConfig `yaml:"worldgen"`
	Window   WindowConfig   `yaml:"window"`
}

type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

type StorageConfig struct {
	// ChunkDir - каталог badger. Пустая строка - хранение в памяти.
	ChunkDir  string `yaml:"chunk_dir"`
	RedisAddr string `yaml:"redis_addr"`
	MariaDSN  string `yaml:"maria_dsn"`
	// Compress включает zstd для содержимого чанков
	Compress bool `yaml:"compress"`
}

type WorldgenConfig struct {
	Seed    int64   `yaml:"seed"`
	Octaves int32   `yaml:"octaves"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
}

type WindowConfig struct {
	CornerX int `yaml:"corner_x"`
	CornerY int `yaml:"corner_y"`
	Size    int `yaml:"size"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "INFO"},
		Storage: StorageConfig{Compress: true},
		Worldgen: WorldgenConfig{
			Seed:    1,
			Octaves: 3,
			Alpha:   2.0,
			Beta:    2.0,
		},
		Window: WindowConfig{Size: 11},
	}
}

// GetRedisAddr возвращает адрес Redis: config -> env MMO_REDIS_ADDR -> "".
// Пустой адрес означает хранение позиций в памяти.
func (s *StorageConfig) GetRedisAddr() string {
	return getStringWithEnvFallback(s.RedisAddr, "MMO_REDIS_ADDR", "")
}

// GetMariaDSN возвращает DSN MariaDB: config -> env MMO_MARIA_DSN -> ""
func (s *StorageConfig) GetMariaDSN() string {
	return getStringWithEnvFallback(s.MariaDSN, "MMO_MARIA_DSN", "")
}

// GetSeed возвращает зерно генератора: config -> env MMO_WORLD_SEED -> 1
func (w *WorldgenConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("MMO_WORLD_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil && seed != 0 {
			return seed
		}
	}
	return 1
}

func getStringWithEnvFallback(configVal, envVar, defaultVal string) string {
	if configVal != "" {
		return configVal
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultVal
}

// Validate проверяет значения, которые нельзя исправить молча
func (c *Config) Validate() error {
	if c.Window.Size <= 0 {
		return fmt.Errorf("window.size должен быть положительным, получено %d", c.Window.Size)
	}
	if c.Worldgen.Octaves <= 0 {
		return fmt.Errorf("worldgen.octaves должен быть положительным, получено %d", c.Worldgen.Octaves)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх Default().
// Если path == "", пытается прочитать путь из ENV COORDS_CONFIG; если и там
// пусто, возвращает значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("COORDS_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
