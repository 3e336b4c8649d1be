package dto

import (
	"fmt"
	"strconv"
	"time"
)

const (
	localDateTimeLayout = "2006-01-02T15:04:05"
	localDateTimeShort  = "2006-01-02T15:04"
)

// LocalDateTime is a zone-less date-time as it travels over the API:
// "2006-01-02T15:04:05", no offset, interpreted in the server's local zone.
type LocalDateTime time.Time

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format(localDateTimeLayout))), nil
}

func (t *LocalDateTime) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("invalid date-time literal %s: %w", string(b), err)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*t = LocalDateTime(parsed)
	return nil
}

// Time returns the underlying time.Time.
func (t LocalDateTime) Time() time.Time { return time.Time(t) }

// ParseLocalDateTime accepts an ISO local date-time with or without the
// seconds component ("2022-01-04T15:00:00" or "2022-01-04T15:00").
func ParseLocalDateTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(localDateTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTimeShort, s, time.Local)
}
