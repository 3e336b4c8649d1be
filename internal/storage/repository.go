package storage

import (
	"database/sql"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// StatsRepository defines the contract for price persistence and the
// grouped aggregation queries. All range queries use [start, end).
type StatsRepository interface {
	BeginPriceBatch() (PriceBatchWriter, error)
	GetStatsBySymbol(symbol string, start, end time.Time) (*models.MinMaxStats, error)
	GetNormalizedPrices(start, end time.Time) ([]models.NormalizedPrice, error)
	GetTopNormalizedPrice(start, end time.Time) (*models.NormalizedPrice, error)
	InsertIngestionLog(symbol, filename string, rowCount int) error
}

// PriceBatchWriter streams successive batches of price points into a single
// transaction. A file either commits as a whole or not at all: callers write
// every batch, then Commit once; Rollback after Commit is a no-op, so it is
// safe to defer.
type PriceBatchWriter interface {
	Write(points []models.PricePoint) error
	Commit() error
	Rollback() error
}

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// BeginPriceBatch opens the ingestion transaction for one uploaded file.
func (r *statsRepository) BeginPriceBatch() (PriceBatchWriter, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	return &priceBatchWriter{tx: tx}, nil
}

type priceBatchWriter struct {
	tx   *sql.Tx
	done bool
}

// Write copies one batch into currency_stats via COPY. Each batch runs a
// full COPY cycle so the transaction is reusable for the next batch.
func (w *priceBatchWriter) Write(points []models.PricePoint) error {
	stmt, err := w.tx.Prepare(pq.CopyIn(
		"currency_stats",
		"date_time",
		"currency_symbol",
		"price",
	))
	if err != nil {
		return err
	}

	for _, p := range points {
		if _, err := stmt.Exec(p.DateTime, p.Symbol, p.Price); err != nil {
			_ = stmt.Close()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		return err
	}
	return stmt.Close()
}

func (w *priceBatchWriter) Commit() error {
	w.done = true
	return w.tx.Commit()
}

func (w *priceBatchWriter) Rollback() error {
	if w.done {
		return nil
	}
	w.done = true
	return w.tx.Rollback()
}

// GetStatsBySymbol returns oldest/newest timestamps and min/max price for one
// symbol within [start, end), or (nil, nil) when the window holds no rows.
func (r *statsRepository) GetStatsBySymbol(symbol string, start, end time.Time) (*models.MinMaxStats, error) {
	const query = `
		SELECT currency_symbol,
		       MIN(date_time) AS oldest_date,
		       MAX(date_time) AS newest_date,
		       MIN(price)     AS min_price,
		       MAX(price)     AS max_price
		FROM currency_stats
		WHERE currency_symbol = $1
		  AND date_time >= $2
		  AND date_time < $3
		GROUP BY currency_symbol
	`

	var out models.MinMaxStats
	err := r.db.QueryRow(query, symbol, start, end).
		Scan(&out.Symbol, &out.OldestDate, &out.NewestDate, &out.MinPrice, &out.MaxPrice)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNormalizedPrices computes (max-min)/min per currency over [start, end),
// descending. Currencies whose minimum price in range is zero are excluded
// so the division is always defined.
func (r *statsRepository) GetNormalizedPrices(start, end time.Time) ([]models.NormalizedPrice, error) {
	const query = `
		SELECT currency_symbol,
		       (MAX(price) - MIN(price)) / MIN(price) AS normalized_price
		FROM currency_stats
		WHERE date_time >= $1
		  AND date_time < $2
		GROUP BY currency_symbol
		HAVING MIN(price) > 0
		ORDER BY normalized_price DESC
	`

	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.NormalizedPrice
	for rows.Next() {
		var np models.NormalizedPrice
		if err := rows.Scan(&np.Symbol, &np.Value); err != nil {
			return nil, err
		}
		out = append(out, np)
	}
	return out, rows.Err()
}

// GetTopNormalizedPrice returns the highest normalized entry in [start, end),
// or (nil, nil) when no currency has data there.
func (r *statsRepository) GetTopNormalizedPrice(start, end time.Time) (*models.NormalizedPrice, error) {
	const query = `
		SELECT currency_symbol,
		       (MAX(price) - MIN(price)) / MIN(price) AS normalized_price
		FROM currency_stats
		WHERE date_time >= $1
		  AND date_time < $2
		GROUP BY currency_symbol
		HAVING MIN(price) > 0
		ORDER BY normalized_price DESC
		LIMIT 1
	`

	var np models.NormalizedPrice
	err := r.db.QueryRow(query, start, end).Scan(&np.Symbol, &np.Value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &np, nil
}

// InsertIngestionLog records one successful upload in the audit trail.
func (r *statsRepository) InsertIngestionLog(symbol, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (currency_symbol, filename, row_count)
		VALUES ($1, $2, $3)
	`, symbol, filename, rowCount)
	return err
}
