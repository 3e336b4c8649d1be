// Package errs defines the typed domain errors raised by the currency and
// stats components. The API layer maps each type to a fixed HTTP status;
// the Message field is the user-visible text and must stay stable.
package errs

import (
	"fmt"
	"time"
)

// NotFoundError marks failures where a requested entity or time window
// holds no data. Mapped to 404 by the API layer.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// CurrencyNotFound is raised when a registry lookup or a stats range query
// comes back empty for the given symbol.
func CurrencyNotFound(symbol string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Currency '%s' not found", symbol)}
}

// CurrencyNotRegistered is raised when an uploaded file references a symbol
// that was never registered.
func CurrencyNotRegistered() *NotFoundError {
	return &NotFoundError{Message: "Currency not found, need to enable the currency first"}
}

// PricesNotFoundForDay is raised when no currency has data inside a 24h window.
func PricesNotFoundForDay(day time.Time) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Prices not found for the day '%s'", day.Format("2006-01-02"))}
}

// CSVProcessError covers every rejection of an uploaded CSV file: malformed
// rows, mixed currencies, unparseable values, and stream read failures.
// Mapped to 400 by the API layer.
type CSVProcessError struct {
	Message string
	Err     error
}

func (e *CSVProcessError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *CSVProcessError) Unwrap() error { return e.Err }

// MalformedRow is raised when any line of the file does not have exactly
// three columns.
func MalformedRow() *CSVProcessError {
	return &CSVProcessError{Message: "CSV file must contain exactly 3 columns per line"}
}

// CurrencyMismatch is raised when a row names a different currency than the
// one the file started with.
func CurrencyMismatch(expected, found string) *CSVProcessError {
	return &CSVProcessError{Message: fmt.Sprintf("Multiple currencies found, expected only '%s' but found '%s'", expected, found)}
}

// StreamReadFailure is raised when the upload stream cannot be read, header
// included. An empty file lands here too.
func StreamReadFailure(err error) *CSVProcessError {
	return &CSVProcessError{Message: "Exception occurs while reading CSV file", Err: err}
}

// InvalidField is raised when a timestamp or price column cannot be parsed.
func InvalidField(name, value string, line int, err error) *CSVProcessError {
	return &CSVProcessError{
		Message: fmt.Sprintf("invalid %s '%s' on line %d", name, value, line),
		Err:     err,
	}
}

// WrongTimePeriodError rejects query windows where the start is not strictly
// before the end. Mapped to 400 by the API layer.
type WrongTimePeriodError struct {
	Start time.Time
	End   time.Time
}

func (e *WrongTimePeriodError) Error() string {
	return fmt.Sprintf("The start date '%s' must be before the end date '%s'",
		FormatLocalDateTime(e.Start), FormatLocalDateTime(e.End))
}

// DuplicateError marks an attempt to register a symbol that already exists.
// Mapped to 400 by the API layer.
type DuplicateError struct {
	Symbol string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("Currency '%s' already exists", e.Symbol)
}

// DuplicateCurrency wraps the storage-level unique violation for a symbol.
func DuplicateCurrency(symbol string) *DuplicateError {
	return &DuplicateError{Symbol: symbol}
}

// FormatLocalDateTime renders a timestamp as an ISO local date-time, omitting
// the seconds when both seconds and fraction are zero and printing the
// fraction in the shortest of 3, 6 or 9 digits. "2000-02-02T01:01" and
// "2022-01-04T15:00:30.500" are both valid outputs.
func FormatLocalDateTime(t time.Time) string {
	s := t.Format("2006-01-02T15:04")
	sec, nsec := t.Second(), t.Nanosecond()
	if sec == 0 && nsec == 0 {
		return s
	}
	s += fmt.Sprintf(":%02d", sec)
	switch {
	case nsec == 0:
		return s
	case nsec%1e6 == 0:
		return s + fmt.Sprintf(".%03d", nsec/1e6)
	case nsec%1e3 == 0:
		return s + fmt.Sprintf(".%06d", nsec/1e3)
	default:
		return s + fmt.Sprintf(".%09d", nsec)
	}
}
