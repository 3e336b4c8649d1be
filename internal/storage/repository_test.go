package storage

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMockRepo(t *testing.T) (*statsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &statsRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func samplePoints(n int) []models.PricePoint {
	out := make([]models.PricePoint, 0, n)
	base := time.Date(2022, 1, 4, 15, 0, 0, 0, time.Local)
	for i := 0; i < n; i++ {
		out = append(out, models.PricePoint{
			DateTime: base.Add(time.Duration(i) * time.Minute),
			Symbol:   "BTC",
			Price:    decimal.NewFromInt(int64(40000 + i)),
		})
	}
	return out
}

func TestPriceBatchWriter_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	// pq.CopyIn cannot be intercepted precisely; allow any prepared statement,
	// one exec per row plus the terminating empty exec. Full COPY semantics are
	// covered by the integration tests.
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w, err := repo.BeginPriceBatch()
	if err != nil {
		t.Fatalf("BeginPriceBatch: %v", err)
	}
	if err := w.Write(samplePoints(2)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	// Rollback after Commit must be a no-op
	if err := w.Rollback(); err != nil {
		t.Fatalf("Rollback after Commit: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBeginPriceBatch_ErrorOnBegin(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin().WillReturnError(dummyErr{})
	if _, err := repo.BeginPriceBatch(); err == nil {
		t.Fatalf("expected error on begin")
	}
}

func TestBeginPriceBatch_ErrorOnSetLocal(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnError(dummyErr{})
	mock.ExpectRollback()

	if _, err := repo.BeginPriceBatch(); err == nil {
		t.Fatalf("expected error on SET LOCAL")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPriceBatchWriter_ErrorOnRowExec(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnError(dummyErr{})
	mock.ExpectRollback()

	w, err := repo.BeginPriceBatch()
	if err != nil {
		t.Fatalf("BeginPriceBatch: %v", err)
	}
	if err := w.Write(samplePoints(1)); err == nil {
		t.Fatalf("expected error on row exec")
	}
	if err := w.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPriceBatchWriter_ErrorOnFinalExec(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET LOCAL synchronous_commit = OFF")).WillReturnResult(sqlmock.NewResult(0, 0))
	prep := mock.ExpectPrepare(".*")
	prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(".*").WillReturnError(dummyErr{})
	mock.ExpectRollback()

	w, err := repo.BeginPriceBatch()
	if err != nil {
		t.Fatalf("BeginPriceBatch: %v", err)
	}
	if err := w.Write(samplePoints(1)); err == nil {
		t.Fatalf("expected error on final exec")
	}
	if err := w.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
}

func TestGetStatsBySymbol_SQLMock(t *testing.T) {
	selectRegex := `SELECT currency_symbol,\s+MIN\(date_time\) AS oldest_date`
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)

	t.Run("with rows", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()

		oldest := time.Date(2022, 1, 4, 15, 0, 0, 0, time.UTC)
		newest := time.Date(2022, 1, 31, 10, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"currency_symbol", "oldest_date", "newest_date", "min_price", "max_price"}).
			AddRow("BTC", oldest, newest, "20", "50")
		mock.ExpectQuery(selectRegex).WithArgs("BTC", start, end).WillReturnRows(rows)

		out, err := repo.GetStatsBySymbol("BTC", start, end)
		if err != nil || out == nil {
			t.Fatalf("unexpected out=%+v err=%v", out, err)
		}
		if out.Symbol != "BTC" || !out.MinPrice.Equal(decimal.NewFromInt(20)) || !out.MaxPrice.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("unexpected stats: %+v", out)
		}
		if !out.OldestDate.Equal(oldest) || !out.NewestDate.Equal(newest) {
			t.Fatalf("unexpected dates: %+v", out)
		}
	})

	t.Run("no rows", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()

		mock.ExpectQuery(selectRegex).WithArgs("DOGE", start, end).WillReturnError(sql.ErrNoRows)
		out, err := repo.GetStatsBySymbol("DOGE", start, end)
		if err != nil || out != nil {
			t.Fatalf("want nil,nil got out=%+v err=%v", out, err)
		}
	})
}

func TestGetNormalizedPrices_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)

	rows := sqlmock.NewRows([]string{"currency_symbol", "normalized_price"}).
		AddRow("ETH", "4.0").
		AddRow("BTC", "1.5")
	mock.ExpectQuery(`SELECT currency_symbol,\s+\(MAX\(price\) - MIN\(price\)\) / MIN\(price\)`).
		WithArgs(start, end).WillReturnRows(rows)

	out, err := repo.GetNormalizedPrices(start, end)
	if err != nil {
		t.Fatalf("GetNormalizedPrices: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 entries got %d", len(out))
	}
	if out[0].Symbol != "ETH" || !out[0].Value.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("unexpected first entry: %+v", out[0])
	}
	if out[1].Symbol != "BTC" || !out[1].Value.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("unexpected second entry: %+v", out[1])
	}
}

func TestGetTopNormalizedPrice_SQLMock(t *testing.T) {
	start := time.Date(2022, 1, 3, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 1)

	t.Run("found", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()

		mock.ExpectQuery(`ORDER BY normalized_price DESC\s+LIMIT 1`).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"currency_symbol", "normalized_price"}).AddRow("ETH", "4.0"))
		out, err := repo.GetTopNormalizedPrice(start, end)
		if err != nil || out == nil || out.Symbol != "ETH" {
			t.Fatalf("unexpected out=%+v err=%v", out, err)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()

		mock.ExpectQuery(`ORDER BY normalized_price DESC\s+LIMIT 1`).
			WithArgs(start, end).WillReturnError(sql.ErrNoRows)
		out, err := repo.GetTopNormalizedPrice(start, end)
		if err != nil || out != nil {
			t.Fatalf("want nil,nil got out=%+v err=%v", out, err)
		}
	})
}

func TestInsertIngestionLog_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectExec(`INSERT INTO ingestion_log \(currency_symbol, filename, row_count\)`).
		WithArgs("BTC", "prices.csv", 30).WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.InsertIngestionLog("BTC", "prices.csv", 30); err != nil {
		t.Fatalf("InsertIngestionLog: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestNewStatsRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if r := NewStatsRepository(db); r == nil {
		t.Fatalf("expected non-nil repository")
	}
}
