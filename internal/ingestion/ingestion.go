package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cryptopulse/internal/logger"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// indirections for creating the repositories; tests can override these.
var (
	currencyRepoCtor = func(db *sql.DB) storage.CurrencyRepository {
		return storage.NewCurrencyRepository(db)
	}
	statsRepoCtor = func(db *sql.DB) storage.StatsRepository {
		return storage.NewStatsRepository(db)
	}
)

// ProcessDirectory ingests every *.csv file found in dir.
//
// Parameters:
//   - dir:       directory containing .csv input files.
//   - db:        open *sql.DB (PostgreSQL).
//   - batchSize: rows per persisted batch (see Ingestor).
//   - parallel:  how many files to process concurrently; 0 means NumCPU.
//
// Behavior:
//   - Each file is a single-currency upload and runs in its own transaction.
//   - Files are processed concurrently up to the parallel limit.
//   - If any file fails, the rest are canceled and that error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, batchSize int, parallel int) error {
	currencies := currencyRepoCtor(db)
	stats := statsRepoCtor(db)
	ing := NewIngestor(currencies, stats, batchSize)

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("list csv files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .csv files found in %s", dir)
	}

	maxParallel := runtime.NumCPU()
	if parallel > 0 {
		maxParallel = parallel
	}

	log := logger.For("ingestion")
	log.Info().Int("files", len(files)).Int("max_parallel", maxParallel).Str("dir", dir).Msg("ingestion start")

	// errgroup cancels siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			log.Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			fh, err := os.Open(f)
			if err != nil {
				return fmt.Errorf("file %s: open: %w", f, err)
			}
			res, err := ing.IngestCSV(gctx, fh)
			_ = fh.Close()
			if err != nil {
				log.Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}

			if err := stats.InsertIngestionLog(res.Symbol, base, res.Rows); err != nil {
				log.Error().Str("file", base).Err(err).Msg("record ingestion log failed")
				return fmt.Errorf("file %s: record ingestion log: %w", f, err)
			}

			log.Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).
				Str("symbol", res.Symbol).Int("rows", res.Rows).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}
