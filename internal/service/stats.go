package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/guttosm/cryptopulse/internal/domain/errs"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/ingestion"
	"github.com/guttosm/cryptopulse/internal/storage"
)

// nowFunc indirection so tests can pin "now".
var nowFunc = time.Now

// CSVIngestor abstracts CSV ingestion for the stats service.
type CSVIngestor interface {
	IngestCSV(ctx context.Context, r io.Reader) (*ingestion.Result, error)
}

// StatsService defines business logic for price statistics.
//
// Range queries accept optional bounds: a missing end defaults to now, a
// missing start to now minus the configured lookback period. Ranges are
// half-open, [start, end).
type StatsService interface {
	CreateStats(ctx context.Context, r io.Reader, filename string) error
	GetCurrencyStats(ctx context.Context, symbol string, start, end *time.Time) (*models.MinMaxStats, error)
	GetAllCurrenciesNormalized(ctx context.Context, start, end *time.Time) ([]models.NormalizedPrice, error)
	GetHighestNormalizedPriceForDay(ctx context.Context, day *time.Time) (*models.NormalizedPrice, error)
}

const defaultPeriodDays = 30

type statsService struct {
	repo       storage.StatsRepository
	ingestor   CSVIngestor
	periodDays int
}

// NewStatsService builds a StatsService. Non-positive periodDays falls back
// to the default of 30.
func NewStatsService(repo storage.StatsRepository, ingestor CSVIngestor, periodDays int) StatsService {
	if periodDays < 1 {
		periodDays = defaultPeriodDays
	}
	return &statsService{repo: repo, ingestor: ingestor, periodDays: periodDays}
}

// CreateStats ingests one uploaded CSV file and records the upload in the
// ingestion audit log.
func (s *statsService) CreateStats(ctx context.Context, r io.Reader, filename string) error {
	res, err := s.ingestor.IngestCSV(ctx, r)
	if err != nil {
		return err
	}
	if err := s.repo.InsertIngestionLog(res.Symbol, filename, res.Rows); err != nil {
		return fmt.Errorf("record ingestion log: %w", err)
	}
	return nil
}

func (s *statsService) GetCurrencyStats(ctx context.Context, symbol string, start, end *time.Time) (*models.MinMaxStats, error) {
	from, to, err := s.resolveRange(start, end)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.GetStatsBySymbol(symbol, from, to)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, errs.CurrencyNotFound(symbol)
	}
	return stats, nil
}

func (s *statsService) GetAllCurrenciesNormalized(ctx context.Context, start, end *time.Time) ([]models.NormalizedPrice, error) {
	from, to, err := s.resolveRange(start, end)
	if err != nil {
		return nil, err
	}
	prices, err := s.repo.GetNormalizedPrices(from, to)
	if err != nil {
		return nil, err
	}
	if prices == nil {
		prices = []models.NormalizedPrice{}
	}
	return prices, nil
}

func (s *statsService) GetHighestNormalizedPriceForDay(ctx context.Context, day *time.Time) (*models.NormalizedPrice, error) {
	d := nowFunc()
	if day != nil {
		d = *day
	}
	dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
	top, err := s.repo.GetTopNormalizedPrice(dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if top == nil {
		return nil, errs.PricesNotFoundForDay(dayStart)
	}
	return top, nil
}

// resolveRange applies the defaults and rejects start >= end.
func (s *statsService) resolveRange(start, end *time.Time) (time.Time, time.Time, error) {
	now := nowFunc()

	to := now
	if end != nil {
		to = *end
	}
	from := now.AddDate(0, 0, -s.periodDays)
	if start != nil {
		from = *start
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, &errs.WrongTimePeriodError{Start: from, End: to}
	}
	return from, to, nil
}
