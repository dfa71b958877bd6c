// SPDX-License-Identifier: MIT
package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/oramap/oramap"
)

// Sink receives each finished Result. Write is never called concurrently
// by a Runner.
type Sink interface {
	Write(runID string, r Result) error
}

// Runner analyses archives concurrently, at most Workers at a time.
type Runner struct {
	Catalogs CatalogSource
	Workers  int
	Logger   *log.Logger
	Sinks    []Sink
}

// Summary describes one Run.
type Summary struct {
	RunID   string
	Total   int
	Failed  int
	Results []Result
}

// Discover lists the *.oramap files directly inside dir, sorted by name.
func Discover(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), oramap.Ext) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// Run analyses every path. Per-archive failures are logged and recorded in
// their Result; they do not stop the batch. Results keep the order of paths.
// Run returns early only when ctx is cancelled; the first sink error is
// returned after all archives are processed.
func (r *Runner) Run(ctx context.Context, paths []string) (Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	sum := Summary{
		RunID:   uuid.NewString(),
		Total:   len(paths),
		Results: make([]Result, len(paths)),
	}

	var (
		mu      sync.Mutex
		sinkErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := AnalyzeFile(path, r.Catalogs)
			if err != nil {
				logger.Printf("error while parsing map %s: %s: %v", path, res.ErrorKind, err)
			} else {
				logger.Printf("map %q size %dx%d biggest area %d valid symmetries %v",
					res.Title, res.Width, res.Height, res.BiggestArea, res.Symmetries)
			}

			mu.Lock()
			defer mu.Unlock()
			sum.Results[i] = res
			if res.Failed() {
				sum.Failed++
			}
			for _, s := range r.Sinks {
				if werr := s.Write(sum.RunID, res); werr != nil && sinkErr == nil {
					sinkErr = fmt.Errorf("sink: %w", werr)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}
	logger.Printf("run %s: %d maps, %d failed", sum.RunID, sum.Total, sum.Failed)
	return sum, sinkErr
}

// ErrNoArchives is returned by RunDir when dir holds no archives.
var ErrNoArchives = errors.New("analysis: no .oramap archives found")

// RunDir discovers and runs every archive in dir.
func (r *Runner) RunDir(ctx context.Context, dir string) (Summary, error) {
	paths, err := Discover(dir)
	if err != nil {
		return Summary{}, err
	}
	if len(paths) == 0 {
		return Summary{}, fmt.Errorf("%w in %s", ErrNoArchives, dir)
	}
	return r.Run(ctx, paths)
}
