package planner

import (
	"testing"
	"time"
)

func TestResolveExamYear(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"mid February targets this year", time.Date(2026, time.February, 15, 12, 0, 0, 0, Tokyo), 2026},
		{"January 1st targets this year", time.Date(2026, time.January, 1, 0, 0, 0, 0, Tokyo), 2026},
		{"last minute of March targets this year", time.Date(2026, time.March, 31, 23, 59, 0, 0, Tokyo), 2026},
		{"April 1st targets next year", time.Date(2026, time.April, 1, 0, 0, 0, 0, Tokyo), 2027},
		{"December 31st targets next year", time.Date(2026, time.December, 31, 23, 59, 0, 0, Tokyo), 2027},
		{"UTC instant already April in Tokyo", time.Date(2026, time.March, 31, 15, 0, 0, 0, time.UTC), 2027},
		{"UTC instant still March in Tokyo", time.Date(2026, time.March, 31, 14, 59, 0, 0, time.UTC), 2026},
		{"UTC New Year's Eve is January in Tokyo", time.Date(2025, time.December, 31, 16, 0, 0, 0, time.UTC), 2026},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolveExamYear(tc.now); got != tc.expected {
				t.Errorf("ResolveExamYear(%v) = %d, want %d", tc.now, got, tc.expected)
			}
		})
	}
}

func TestExamYearOf_EveryMonth(t *testing.T) {
	t.Parallel()

	for m := time.January; m <= time.December; m++ {
		want := 2026
		if m >= time.April {
			want = 2027
		}
		for _, dayOfMonth := range []int{1, 15, 28} {
			if got := ExamYearOf(NewDate(2026, m, dayOfMonth)); got != want {
				t.Errorf("ExamYearOf(2026-%02d-%02d) = %d, want %d", m, dayOfMonth, got, want)
			}
		}
	}
}
