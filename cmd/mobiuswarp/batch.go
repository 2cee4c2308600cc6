package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/pixelforge/mobius"
	"github.com/pixelforge/mobius/resample"
	"github.com/pixelforge/mobius/tensor"
)

// batchConfig is the TOML configuration for batch augmentation.
type batchConfig struct {
	InputDir  string     `toml:"input_dir"`
	OutputDir string     `toml:"output_dir"`
	Workers   int        `toml:"workers"`
	Warp      warpConfig `toml:"warp"`
}

// warpConfig mirrors the Warp constructor options. Height and width are
// optional; when set every input is resized before warping, otherwise each
// image is warped at its native size.
type warpConfig struct {
	Probability float64 `toml:"probability"`
	Order       int     `toml:"order"`
	Mode        string  `toml:"mode"`
	Fill        float64 `toml:"fill"`
	Height      int     `toml:"height"`
	Width       int     `toml:"width"`
	Seed        uint64  `toml:"seed"`
	HasSeed     bool    `toml:"-"`
}

func defaultBatchConfig() batchConfig {
	return batchConfig{
		Workers: 4,
		Warp: warpConfig{
			Probability: 0.6,
			Order:       2,
			Mode:        "constant",
			Fill:        127,
		},
	}
}

func loadBatchConfig(path string) (batchConfig, error) {
	cfg := defaultBatchConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Warp.HasSeed = meta.IsDefined("warp", "seed")
	if cfg.InputDir == "" || cfg.OutputDir == "" {
		return cfg, fmt.Errorf("config %s: input_dir and output_dir are required", path)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg, nil
}

func batchCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Warp every image in a directory",
		Long: `Batch reads a TOML config describing an input directory, an output
directory, and the warp settings, then processes all images with a pool of
workers. Outputs are written as PNG under the output directory, preserving
file names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadBatchConfig(configPath)
			if err != nil {
				return err
			}
			return runBatch(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "mobiuswarp.toml", "path to TOML config")
	return cmd
}

func runBatch(ctx context.Context, cfg batchConfig) error {
	logger := loggerFromContext(ctx)
	start := time.Now()

	files, err := listImages(cfg.InputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("no images found", "dir", cfg.InputDir)
		return nil
	}
	logger.Info("starting batch", "images", len(files), "workers", cfg.Workers)

	// One shared source keeps seeded runs reproducible across the pool.
	var source mobius.Source
	if cfg.Warp.HasSeed {
		source = mobius.NewSource(cfg.Warp.Seed)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)
	queue := make(chan string)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				if err := processOne(cfg, source, path); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					logger.Error("failed", "file", path, "err", err)
					continue
				}
				mu.Lock()
				done++
				mu.Unlock()
				logger.Debug("warped", "file", filepath.Base(path))
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case queue <- path:
		}
	}
	close(queue)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("batch complete", "written", done, "elapsed", time.Since(start).Round(time.Millisecond))
	return firstErr
}

// processOne loads, optionally resizes, warps, and saves a single image.
func processOne(cfg batchConfig, source mobius.Source, path string) error {
	mode, err := resample.ParseMode(cfg.Warp.Mode)
	if err != nil {
		return err
	}
	img, err := loadImage(path)
	if err != nil {
		return err
	}
	sample := tensor.FromImage(img)

	if cfg.Warp.Height > 0 && cfg.Warp.Width > 0 &&
		(sample.Height() != cfg.Warp.Height || sample.Width() != cfg.Warp.Width) {
		sample, err = sample.Resize(cfg.Warp.Height, cfg.Warp.Width)
		if err != nil {
			return err
		}
	}

	opts := []mobius.Option{
		mobius.WithProbability(cfg.Warp.Probability),
		mobius.WithOrder(cfg.Warp.Order),
		mobius.WithEdgeMode(mode),
		mobius.WithFillValue(cfg.Warp.Fill),
		mobius.WithRandSource(source), // nil keeps the default source
	}
	warp, err := mobius.New(sample.Height(), sample.Width(), opts...)
	if err != nil {
		return err
	}
	out, err := warp.Apply(sample)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	return saveImage(filepath.Join(cfg.OutputDir, name), out.ToImage())
}

// listImages returns the image files directly under dir, sorted by name.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
