package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/cryptopulse/internal/domain/errs"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/storage"
)

const (
	// columnsPerRow is the exact shape of every CSV line: epoch-millis, symbol, price.
	columnsPerRow = 3

	defaultBatchSize = 30
)

// Ingestor parses uploaded CSV price series and persists them in batches.
//
// File contract:
//   - line 1 is a header and is discarded unread;
//   - line 2 fixes the expected currency for the whole file, which must
//     already be registered;
//   - every data line (line 2 included) must have exactly 3 columns and name
//     the expected currency (case-insensitive).
//
// All batches of one file share a single transaction: the file lands fully
// or not at all.
type Ingestor struct {
	currencies storage.CurrencyRepository
	stats      storage.StatsRepository
	batchSize  int
}

// NewIngestor builds an Ingestor flushing every batchSize rows.
// Non-positive sizes fall back to the default of 30.
func NewIngestor(currencies storage.CurrencyRepository, stats storage.StatsRepository, batchSize int) *Ingestor {
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	return &Ingestor{currencies: currencies, stats: stats, batchSize: batchSize}
}

// Result summarizes one successful ingestion.
type Result struct {
	Symbol string // registered symbol the file was ingested for
	Rows   int    // data rows persisted (header excluded)
}

// IngestCSV streams one CSV file into storage.
//
// It fails with:
//   - errs.CSVProcessError on malformed rows, mixed currencies, unparseable
//     values, or stream read errors (an empty stream included);
//   - errs.NotFoundError when the file's currency is not registered.
//
// On any failure the whole file is rolled back.
func (ing *Ingestor) IngestCSV(ctx context.Context, r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // variable on purpose; shape is checked per line

	// Discard the header.
	if _, err := cr.Read(); err != nil {
		return nil, errs.StreamReadFailure(err)
	}

	// The second line determines the expected currency for the whole file.
	rec, err := cr.Read()
	if err != nil {
		return nil, errs.StreamReadFailure(err)
	}
	if len(rec) != columnsPerRow {
		return nil, errs.MalformedRow()
	}

	symbol := strings.TrimSpace(rec[1])
	cur, err := ing.currencies.GetCurrencyBySymbol(symbol)
	if err != nil {
		return nil, fmt.Errorf("lookup currency %q: %w", symbol, err)
	}
	if cur == nil {
		return nil, errs.CurrencyNotRegistered()
	}
	expected := cur.Symbol

	writer, err := ing.stats.BeginPriceBatch()
	if err != nil {
		return nil, fmt.Errorf("begin price batch: %w", err)
	}
	defer func() { _ = writer.Rollback() }()

	buf := make([]models.PricePoint, 0, ing.batchSize)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := writer.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0
	line := 2 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if len(rec) != columnsPerRow {
			return nil, errs.MalformedRow()
		}
		found := strings.TrimSpace(rec[1])
		if !strings.EqualFold(found, expected) {
			return nil, errs.CurrencyMismatch(expected, found)
		}

		p, err := recordToPricePoint(rec, expected, line)
		if err != nil {
			return nil, err
		}

		buf = append(buf, p)
		total++
		if len(buf) >= ing.batchSize {
			if err := flush(); err != nil {
				return nil, fmt.Errorf("flush batch ending line %d: %w", line, err)
			}
		}

		rec, err = cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errs.StreamReadFailure(err)
		}
		line++
	}

	// Final partial batch
	if err := flush(); err != nil {
		return nil, fmt.Errorf("final flush: %w", err)
	}
	if err := writer.Commit(); err != nil {
		return nil, fmt.Errorf("commit ingestion: %w", err)
	}

	return &Result{Symbol: expected, Rows: total}, nil
}

// recordToPricePoint converts one validated CSV record into a PricePoint.
//
// Column order:
//
//	0 epoch milliseconds → DateTime (local zone)
//	1 symbol             → carried as the registered symbol, not the raw cell
//	2 decimal price      → Price
func recordToPricePoint(rec []string, symbol string, line int) (models.PricePoint, error) {
	var p models.PricePoint

	ts := strings.TrimSpace(rec[0])
	ms, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return p, errs.InvalidField("timestamp", ts, line, err)
	}

	raw := strings.TrimSpace(rec[2])
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return p, errs.InvalidField("price", raw, line, err)
	}

	p.DateTime = time.UnixMilli(ms)
	p.Symbol = symbol
	p.Price = price
	return p, nil
}
