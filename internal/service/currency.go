package service

import (
	"context"

	"github.com/guttosm/cryptopulse/internal/domain/errs"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// CurrencyService defines business logic for the currency registry.
type CurrencyService interface {
	CreateCurrency(ctx context.Context, symbol string) (*models.Currency, error)
	GetCurrency(ctx context.Context, symbol string) (*models.Currency, error)
	GetAllCurrencies(ctx context.Context) ([]models.Currency, error)
}

type currencyService struct {
	repo storage.CurrencyRepository
}

func NewCurrencyService(repo storage.CurrencyRepository) CurrencyService {
	return &currencyService{repo: repo}
}

// CreateCurrency registers a new symbol. The symbol is stored exactly as
// given; duplicates surface as errs.DuplicateError.
func (s *currencyService) CreateCurrency(ctx context.Context, symbol string) (*models.Currency, error) {
	c := models.Currency{Symbol: symbol}
	if err := s.repo.InsertCurrency(c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *currencyService) GetCurrency(ctx context.Context, symbol string) (*models.Currency, error) {
	cur, err := s.repo.GetCurrencyBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, errs.CurrencyNotFound(symbol)
	}
	return cur, nil
}

func (s *currencyService) GetAllCurrencies(ctx context.Context) ([]models.Currency, error) {
	currencies, err := s.repo.GetAllCurrencies()
	if err != nil {
		return nil, err
	}
	if currencies == nil {
		currencies = []models.Currency{}
	}
	return currencies, nil
}
