// SPDX-License-Identifier: MIT
// Command mapcheck analyses every .oramap archive in a directory and prints,
// per map, its size, the area of the largest traversable region and the
// symmetries it satisfies.
//
// Usage:
//
//	mapcheck [-openra DIR] [-workers N] [-db PATH] [-report PATH] [MAPDIR]
//
// Flags override the OPENRA_DIR, MAPCHECK_WORKERS, MAPCHECK_DB and
// MAPCHECK_REPORT environment variables. MAPDIR defaults to ".".
// The exit status is 1 when any archive fails and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/katalvlaran/oramap/analysis"
	"github.com/katalvlaran/oramap/config"
	"github.com/katalvlaran/oramap/report"
	"github.com/katalvlaran/oramap/terrain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "mapcheck: ", 0)

	cfg, err := config.Load()
	if err != nil {
		logger.Print(err)
		return 2
	}

	fs := flag.NewFlagSet("mapcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	openraDir := fs.String("openra", cfg.OpenRADir, "OpenRA install directory containing mods/")
	workers := fs.Int("workers", cfg.Workers, "archives analysed concurrently")
	dbPath := fs.String("db", cfg.DBPath, "sqlite database for results (optional)")
	reportPath := fs.String("report", cfg.ReportPath, "zstd-compressed JSONL report path (optional)")
	quiet := fs.Bool("q", false, "suppress per-map log lines")
	if err = fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		logger.Print("expected at most one map directory")
		return 2
	}
	mapDir := "."
	if fs.NArg() == 1 {
		mapDir = fs.Arg(0)
	}

	cfg.OpenRADir, cfg.Workers, cfg.DBPath, cfg.ReportPath = *openraDir, *workers, *dbPath, *reportPath
	if err = cfg.Validate(); err != nil {
		logger.Print(err)
		return 2
	}
	if strings.TrimSpace(cfg.OpenRADir) == "" {
		logger.Print("missing -openra (or OPENRA_DIR)")
		return 2
	}

	runner := &analysis.Runner{
		Catalogs: terrain.NewModDirectory(os.DirFS(cfg.OpenRADir)),
		Workers:  cfg.Workers,
		Logger:   logger,
	}
	if *quiet {
		runner.Logger = nil
	}

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			if cerr := c.Close(); cerr != nil {
				logger.Printf("close: %v", cerr)
			}
		}
	}()
	if cfg.ReportPath != "" {
		w, werr := report.NewJSONLZstdWriter(cfg.ReportPath)
		if werr != nil {
			logger.Printf("open report: %v", werr)
			return 1
		}
		runner.Sinks = append(runner.Sinks, w)
		closers = append(closers, w)
	}
	if cfg.DBPath != "" {
		store, serr := report.OpenSQLite(cfg.DBPath)
		if serr != nil {
			logger.Printf("open db: %v", serr)
			return 1
		}
		runner.Sinks = append(runner.Sinks, store)
		closers = append(closers, store)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := runner.RunDir(ctx, mapDir)
	if err != nil && !errors.Is(err, context.Canceled) && len(sum.Results) == 0 {
		logger.Print(err)
		return 1
	}
	printSummary(stdout, sum)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if sum.Failed > 0 {
		return 1
	}
	return 0
}

func printSummary(w io.Writer, sum analysis.Summary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tSIZE\tBIGGEST AREA\tSYMMETRIES\tRESOURCE SYMMETRIES")
	for _, r := range sum.Results {
		if r.Archive == "" {
			continue
		}
		if r.Failed() {
			fmt.Fprintf(tw, "%s\t-\t-\terror: %s\t%s\n", label(r), r.ErrorKind, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%dx%d\t%d\t%s\t%s\n", label(r), r.Width, r.Height, r.BiggestArea,
			list(r.Symmetries), list(r.ResourceSymmetries))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d maps, %d failed (run %s)\n", sum.Total, sum.Failed, sum.RunID)
}

func label(r analysis.Result) string {
	if r.Title != "" {
		return r.Title
	}
	return r.Archive
}

func list(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
