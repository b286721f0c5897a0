package util

import (
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name          string
		date          time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "mid January 2024",
			date:          time.Date(2024, time.January, 15, 12, 30, 0, 0, time.UTC),
			expectedStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "February in a leap year",
			date:          time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.UTC),
		},
		{
			name:          "December wraps the year",
			date:          time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2023, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.date)

			if !start.Equal(tt.expectedStart) {
				t.Errorf("MonthBounds() start = %v, want %v", start, tt.expectedStart)
			}
			if !end.Equal(tt.expectedEnd) {
				t.Errorf("MonthBounds() end = %v, want %v", end, tt.expectedEnd)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{
			name:     "January",
			date:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			expected: 31,
		},
		{
			name:     "February leap year",
			date:     time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			expected: 29,
		},
		{
			name:     "February non leap year",
			date:     time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC),
			expected: 28,
		},
		{
			name:     "April",
			date:     time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.date); got != tt.expected {
				t.Errorf("DaysInMonth() = %d, want %d", got, tt.expected)
			}
		})
	}
}
