package fasting

import (
	"errors"
	"testing"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{
			name:  "whole hours",
			input: "16",
			want:  960,
		},
		{
			name:  "fractional hours",
			input: "16.5",
			want:  990,
		},
		{
			name:  "fractional minutes truncate",
			input: "0.999",
			want:  59,
		},
		{
			name:  "duration string",
			input: "16h30m",
			want:  990,
		},
		{
			name:  "duration string minutes only",
			input: "90m",
			want:  90,
		},
		{
			name:    "zero hours",
			input:   "0",
			wantErr: ErrRange,
		},
		{
			name:    "negative hours",
			input:   "-2",
			wantErr: ErrRange,
		},
		{
			name:    "sub-minute duration",
			input:   "30s",
			wantErr: ErrRange,
		},
		{
			name:    "not a duration",
			input:   "abc",
			wantErr: ErrFormat,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHours(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want kind %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d minutes, want %d", got, tt.want)
			}
		})
	}
}
