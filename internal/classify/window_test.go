package classify

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWindowFor(t *testing.T) {
	tests := []struct {
		name       string
		anchor     string
		before     int
		after      int
		wantStart  string
		wantEnd    string
	}{
		{
			name:      "mid-month no clamping",
			anchor:    "2025-11-10",
			before:    5,
			after:     5,
			wantStart: "2025-11-05",
			wantEnd:   "2025-11-15",
		},
		{
			name:      "end clamps to last day of month",
			anchor:    "2025-01-30",
			before:    3,
			after:     5,
			wantStart: "2025-01-27",
			wantEnd:   "2025-01-31",
		},
		{
			name:      "start clamps to first day of month",
			anchor:    "2025-11-02",
			before:    5,
			after:     5,
			wantStart: "2025-11-01",
			wantEnd:   "2025-11-07",
		},
		{
			name:      "february leap year",
			anchor:    "2024-02-27",
			before:    3,
			after:     5,
			wantStart: "2024-02-24",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "february non-leap year",
			anchor:    "2025-02-26",
			before:    3,
			after:     5,
			wantStart: "2025-02-23",
			wantEnd:   "2025-02-28",
		},
		{
			name:      "zero offsets degenerate to the anchor",
			anchor:    "2025-06-15",
			before:    0,
			after:     0,
			wantStart: "2025-06-15",
			wantEnd:   "2025-06-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := date(tt.anchor)
			w := windowFor(anchor, tt.before, tt.after)

			if w.Start != date(tt.wantStart) {
				t.Errorf("windowFor() start = %s, want %s", w.Start, tt.wantStart)
			}
			if w.End != date(tt.wantEnd) {
				t.Errorf("windowFor() end = %s, want %s", w.End, tt.wantEnd)
			}
			if !w.Contains(anchor) {
				t.Errorf("windowFor() window %s..%s does not contain anchor %s", w.Start, w.End, anchor)
			}
			if w.End.Before(w.Start) {
				t.Errorf("windowFor() start %s after end %s", w.Start, w.End)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month int
		want  int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tt := range tests {
		got := daysInMonth(tt.year, time.Month(tt.month))
		if got != tt.want {
			t.Errorf("daysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
