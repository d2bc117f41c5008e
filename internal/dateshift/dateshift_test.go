package dateshift

import (
	"errors"
	"testing"
	"time"

	"github.com/okelund/fastwin/internal/clock"
)

func TestAddYears(t *testing.T) {
	fixed := clock.Fixed{Time: time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)}

	tests := []struct {
		name    string
		years   int
		start   string
		want    string
		wantErr error
	}{
		{
			name:  "forward from explicit date",
			years: 5,
			start: "2020-01-15",
			want:  "2025-01-15",
		},
		{
			name:  "backward from explicit date",
			years: -3,
			start: "2020-01-15",
			want:  "2017-01-15",
		},
		{
			name:  "zero years is identity",
			years: 0,
			start: "1999-12-31",
			want:  "1999-12-31",
		},
		{
			name:  "leap day onto non-leap year normalizes to March 1",
			years: 1,
			start: "2020-02-29",
			want:  "2021-03-01",
		},
		{
			name:  "leap day onto leap year stays",
			years: 4,
			start: "2020-02-29",
			want:  "2024-02-29",
		},
		{
			name:  "empty start uses today",
			years: 10,
			start: "",
			want:  "2036-08-23",
		},
		{
			name:    "wrong separator",
			years:   1,
			start:   "2020/01/15",
			wantErr: ErrFormat,
		},
		{
			name:    "reversed order",
			years:   1,
			start:   "15-01-2020",
			wantErr: ErrFormat,
		},
		{
			name:    "not a date at all",
			years:   1,
			start:   "soon",
			wantErr: ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddYears(tt.years, tt.start, fixed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
