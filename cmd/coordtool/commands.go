package main

import (
	"context"
	"fmt"
	"io"

	"github.com/annel0/mmo-coords/internal/config"
	"github.com/annel0/mmo-coords/internal/coords"
	"github.com/annel0/mmo-coords/internal/logging"
	"github.com/annel0/mmo-coords/internal/storage"
	"github.com/annel0/mmo-coords/internal/worldgen"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	Command string
	X, Y, Z int
	User    uint64
	Radius  int
}

func run(ctx context.Context, cfg *config.Config, opts options, out io.Writer) error {
	switch opts.Command {
	case "decompose":
		return decompose(cfg, opts, out)
	case "heightmap":
		return heightmap(cfg, opts, out)
	case "chunks":
		return chunks(ctx, cfg, opts, out)
	case "save", "load":
		return position(ctx, cfg, opts, out)
	default:
		return fmt.Errorf("неизвестная команда %q", opts.Command)
	}
}

func generator(cfg *config.Config) *worldgen.Generator {
	gen := worldgen.DefaultOptions(cfg.Worldgen.GetSeed())
	gen.Octaves = cfg.Worldgen.Octaves
	if cfg.Worldgen.Alpha > 0 {
		gen.Alpha = cfg.Worldgen.Alpha
	}
	if cfg.Worldgen.Beta > 0 {
		gen.Beta = cfg.Worldgen.Beta
	}
	return worldgen.NewGenerator(gen)
}

func window(cfg *config.Config) coords.Window {
	corner := coords.New[coords.Abs, coords.Chunk](cfg.Window.CornerX, cfg.Window.CornerY)
	return coords.NewWindow(corner, cfg.Window.Size)
}

func decompose(cfg *config.Config, opts options, out io.Writer) error {
	tile := coords.New3[coords.Abs, coords.Tile](opts.X, opts.Y, opts.Z)
	d := coords.Decompose(tile.XY())
	w := window(cfg)
	active := coords.ToWindow(w, tile)

	fmt.Fprintf(out, "tile:        %v\n", tile)
	fmt.Fprintf(out, "chunk:       %v + %v\n", d.Chunk, d.TileInChunk)
	fmt.Fprintf(out, "region:      %v + %v\n", d.Region, d.ChunkInRegion)
	fmt.Fprintf(out, "terrain:     %v\n", d.TerrainInRegion)
	fmt.Fprintf(out, "segment:     %v\n", coords.ProjectTo[coords.Segment](d.Chunk))
	fmt.Fprintf(out, "%v: %v (inside=%v)\n", w, active, coords.InWindow(w, active))
	fmt.Fprintf(out, "elevation:   %d\n", generator(cfg).TileElevation(tile.XY()))
	return nil
}

func heightmap(cfg *config.Config, opts options, out io.Writer) error {
	r := coords.New[coords.Abs, coords.Region](opts.X, opts.Y)
	gen := generator(cfg)
	hm := gen.RegionHeightmap(r)
	lo, hi := hm.Range()

	bounds := coords.ProjectBounds[coords.Tile](r)
	fmt.Fprintf(out, "region %v tiles %v\n", r, bounds)
	fmt.Fprintf(out, "levels %d..%d\n", lo, hi)

	corner := coords.NewIB[coords.Local[coords.Region], coords.TerrainUnit](0, 0)
	fmt.Fprintf(out, "corner biome %s level %d\n", gen.Biome(coords.ProjectCombine(r, corner)), hm.At(corner))
	return nil
}

// chunks генерирует поверхность вокруг тайла, записывает ее в хранилище
// чанков и выводит содержимое сегмента
func chunks(ctx context.Context, cfg *config.Config, opts options, out io.Writer) error {
	store, err := storage.NewChunkStore(storage.ChunkStoreOptions{
		Dir:      cfg.Storage.ChunkDir,
		Compress: cfg.Storage.Compress,
		Metrics:  storage.NewMetrics(prometheus.NewRegistry()),
	})
	if err != nil {
		return err
	}
	defer closeLogged(logging.GetStorageLogger(), "хранилища чанков", store.Close)

	gen := generator(cfg)
	center := coords.ProjectTo[coords.Chunk](coords.New[coords.Abs, coords.Tile](opts.X, opts.Y))
	for _, c := range coords.ClosestPointsFirst(center, opts.Radius) {
		surface := gen.SurfaceChunk(c)
		biome := gen.Biome(coords.ProjectTo[coords.TerrainUnit](c))
		if err := store.Put(ctx, surface, []byte(biome.String())); err != nil {
			return err
		}
	}

	seg := coords.ProjectTo[coords.Segment](center)
	list, err := store.ListSegment(ctx, seg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "segment %v: %d chunks\n", seg, len(list))
	for _, c := range list {
		data, _, err := store.Get(ctx, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %v %s\n", c, data)
	}
	return nil
}

// closeLogged закрывает ресурс в defer; ошибку некуда вернуть, она уходит в лог
func closeLogged(log *logging.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("Ошибка закрытия %s: %v", what, err)
	}
}

func openPositionRepo(ctx context.Context, cfg *config.Config) (storage.PositionRepo, func() error, error) {
	if addr := cfg.Storage.GetRedisAddr(); addr != "" {
		rc := storage.DefaultRedisConfig()
		rc.Addr = addr
		repo, err := storage.NewRedisPositionRepo(ctx, rc)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}
	if dsn := cfg.Storage.GetMariaDSN(); dsn != "" {
		repo, err := storage.NewMariaPositionRepo(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}

	logging.Warn("Redis и MariaDB не настроены, позиции хранятся в памяти процесса")
	return storage.NewMemoryPositionRepo(), func() error { return nil }, nil
}

func position(ctx context.Context, cfg *config.Config, opts options, out io.Writer) error {
	repo, closeRepo, err := openPositionRepo(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLogged(logging.GetStorageLogger(), "хранилища позиций", closeRepo)

	store := storage.NewPositionStore(repo, nil)
	if opts.Command == "save" {
		p := coords.New3[coords.Abs, coords.Tile](opts.X, opts.Y, opts.Z)
		if err := store.Save(ctx, opts.User, p); err != nil {
			return err
		}
		fmt.Fprintf(out, "saved %d %v\n", opts.User, p)
		return nil
	}

	d, z, found, err := store.LoadDecomposed(ctx, opts.User)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "user %d: no position\n", opts.User)
		return nil
	}
	fmt.Fprintf(out, "user %d: %v z=%d\n", opts.User, d, z)
	return nil
}
