package tui

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charlievieth/fastwalk"
)

// scanMaxWorkers is the fastwalk worker count.
const scanMaxWorkers = 4

// scanTimeout bounds a single directory scan.
const scanTimeout = 10 * time.Second

// errScanMaxItems stops the walk once the item cap is reached. It never
// reaches callers.
var errScanMaxItems = errors.New("max items reached")

// errScanCanceled is turned back into ctx.Err() for callers.
var errScanCanceled = errors.New("scan canceled")

// scanSkipDirs are listed but never descended into.
var scanSkipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"__pycache__":  {},
}

type scanOptions struct {
	maxDepth   int
	maxItems   int
	showHidden bool
}

type scanStats struct {
	elapsed   time.Duration
	truncated bool
}

// scanTiles walks root concurrently and returns its entries as sorted tiles.
func scanTiles(ctx context.Context, root string, opts scanOptions) ([]*tile, scanStats, error) {
	startedAt := time.Now()
	root = filepath.Clean(root)
	if opts.maxItems <= 0 {
		return nil, scanStats{}, nil
	}

	var (
		mu      sync.Mutex
		tiles   = make([]*tile, 0, 128)
		stopped bool
	)

	conf := &fastwalk.Config{
		NumWorkers: scanMaxWorkers,
		Follow:     false,
		Sort:       fastwalk.SortNone,
		MaxDepth:   opts.maxDepth,
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errScanCanceled
		default:
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if !opts.showHidden && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		t := &tile{name: name, path: path, rel: filepath.ToSlash(rel), dir: d.IsDir()}
		if !t.dir {
			if info, infoErr := d.Info(); infoErr == nil {
				t.size = info.Size()
			}
		}

		mu.Lock()
		defer mu.Unlock()
		if stopped {
			return errScanMaxItems
		}
		tiles = append(tiles, t)
		if len(tiles) >= opts.maxItems {
			stopped = true
			return errScanMaxItems
		}
		if t.dir {
			if _, skip := scanSkipDirs[name]; skip {
				return fs.SkipDir
			}
		}
		return nil
	}

	err := fastwalk.Walk(conf, root, fastwalk.IgnorePermissionErrors(walkFn))
	stats := scanStats{elapsed: time.Since(startedAt), truncated: stopped}
	switch {
	case err == nil, errors.Is(err, errScanMaxItems):
	case errors.Is(err, errScanCanceled):
		sortTiles(tiles)
		if ctx.Err() != nil {
			return tiles, stats, ctx.Err()
		}
		return tiles, stats, context.Canceled
	default:
		return nil, stats, err
	}

	sortTiles(tiles)
	return tiles, stats, nil
}

// scanCmd runs scanTiles off the update loop.
func scanCmd(root string, opts scanOptions, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		tiles, stats, err := scanTiles(ctx, root, opts)
		return tilesScannedMsg{tiles: tiles, stats: stats, err: err, gen: gen}
	}
}
