// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"testing"
	"time"
)

func TestNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "before the hour, same day",
			now:  time.Date(2024, 1, 4, 6, 30, 0, 0, time.UTC),
			hour: 8,
			want: time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "after the hour, next day",
			now:  time.Date(2024, 1, 4, 9, 15, 0, 0, time.UTC),
			hour: 8,
			want: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly on the hour, next day",
			now:  time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC),
			hour: 8,
			want: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight schedule",
			now:  time.Date(2024, 1, 4, 12, 0, 0, 0, time.UTC),
			hour: 0,
			want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextRun(tt.now, tt.hour)
			if !got.Equal(tt.want) {
				t.Errorf("nextRun(%v, %d) = %v, want %v", tt.now, tt.hour, got, tt.want)
			}
		})
	}
}
