package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLocalDateTime_MarshalJSON(t *testing.T) {
	in := LocalDateTime(time.Date(2022, 1, 4, 15, 0, 30, 0, time.Local))
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2022-01-04T15:00:30"` {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestLocalDateTime_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "with seconds", in: `"2022-01-04T15:00:30"`, want: time.Date(2022, 1, 4, 15, 0, 30, 0, time.Local)},
		{name: "without seconds", in: `"2022-01-04T15:00"`, want: time.Date(2022, 1, 4, 15, 0, 0, 0, time.Local)},
		{name: "date only rejected", in: `"2022-01-04"`, wantErr: true},
		{name: "not a string", in: `12345`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out LocalDateTime
			err := json.Unmarshal([]byte(tc.in), &out)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !out.Time().Equal(tc.want) {
				t.Fatalf("want %v got %v", tc.want, out.Time())
			}
		})
	}
}

func TestParseLocalDateTime_Local(t *testing.T) {
	got, err := ParseLocalDateTime("2000-02-02T01:01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Location() != time.Local {
		t.Fatalf("expected local zone, got %v", got.Location())
	}
}
