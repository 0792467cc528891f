package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/mmo-coords/internal/config"
	"github.com/annel0/mmo-coords/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config (default: $COORDS_CONFIG)")
		command    = flag.String("cmd", "decompose", "Command: decompose, heightmap, chunks, save, load")
		x          = flag.Int("x", 0, "X coordinate (tile; region for heightmap)")
		y          = flag.Int("y", 0, "Y coordinate (tile; region for heightmap)")
		z          = flag.Int("z", 0, "Height level")
		user       = flag.Uint64("user", 0, "User ID for save/load")
		radius     = flag.Int("radius", 1, "Chunk radius for chunks")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := logging.InitLogger(cfg.Logging.Dir, level); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := options{
		Command: *command,
		X:       *x,
		Y:       *y,
		Z:       *z,
		User:    *user,
		Radius:  *radius,
	}
	if err := run(ctx, cfg, opts, os.Stdout); err != nil {
		logging.Error("Команда %s завершилась ошибкой: %v", opts.Command, err)
		os.Exit(1)
	}
}
