package storage

import (
	"database/sql"
	"errors"

	"github.com/guttosm/cryptopulse/internal/domain/errs"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a violated unique constraint.
const uniqueViolation = "23505"

// CurrencyRepository defines the contract for currency registry persistence.
type CurrencyRepository interface {
	InsertCurrency(c models.Currency) error
	GetCurrencyBySymbol(symbol string) (*models.Currency, error)
	GetAllCurrencies() ([]models.Currency, error)
}

type currencyRepository struct {
	db *sql.DB
}

func NewCurrencyRepository(db *sql.DB) CurrencyRepository {
	return &currencyRepository{db: db}
}

// InsertCurrency persists a new currency. Uniqueness is enforced solely by
// the primary key; a duplicate surfaces as errs.DuplicateError.
func (r *currencyRepository) InsertCurrency(c models.Currency) error {
	_, err := r.db.Exec(`INSERT INTO currency (symbol) VALUES ($1)`, c.Symbol)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.DuplicateCurrency(c.Symbol)
		}
		return err
	}
	return nil
}

// GetCurrencyBySymbol returns the currency or (nil, nil) when absent.
func (r *currencyRepository) GetCurrencyBySymbol(symbol string) (*models.Currency, error) {
	var c models.Currency
	err := r.db.QueryRow(`SELECT symbol FROM currency WHERE symbol = $1`, symbol).Scan(&c.Symbol)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAllCurrencies returns every registered currency in primary-key order.
func (r *currencyRepository) GetAllCurrencies() ([]models.Currency, error) {
	rows, err := r.db.Query(`SELECT symbol FROM currency ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Currency
	for rows.Next() {
		var c models.Currency
		if err := rows.Scan(&c.Symbol); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
