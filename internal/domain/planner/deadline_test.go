package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func datePtr(d Date) *Date {
	return &d
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	today := MustParseDate("2026-10-16")

	testCases := []struct {
		name     string
		deadline *Date
		wantDays int
		wantOK   bool
	}{
		{"no deadline", nil, 0, false},
		{"deadline today", datePtr(today), 0, true},
		{"deadline tomorrow", datePtr(today.AddDays(1)), 1, true},
		{"deadline yesterday", datePtr(today.AddDays(-1)), -1, true},
		{"deadline across a month boundary", datePtr(MustParseDate("2026-11-02")), 17, true},
		{"deadline next year", datePtr(MustParseDate("2027-01-17")), 93, true},
		{"deadline centuries ahead", datePtr(MustParseDate("2400-01-01")), 136312, true},
		{"deadline centuries behind", datePtr(MustParseDate("1700-01-01")), -119357, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			days, ok := DaysUntil(tc.deadline, today)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantDays, days)
		})
	}
}

func TestDailyTarget(t *testing.T) {
	t.Parallel()

	today := MustParseDate("2026-10-16")

	testCases := []struct {
		name     string
		current  int
		target   int
		deadline *Date
		want     int
		wantOK   bool
	}{
		{"even split", 50, 130, datePtr(today.AddDays(20)), 4, true},
		{"rounds up", 49, 130, datePtr(today.AddDays(20)), 5, true},
		{"one day left takes everything", 0, 37, datePtr(today.AddDays(1)), 37, true},
		{"already past target", 130, 100, datePtr(today.AddDays(5)), 0, true},
		{"exactly at target", 100, 100, datePtr(today.AddDays(5)), 0, true},
		{"deadline today", 0, 100, datePtr(today), 0, false},
		{"deadline passed", 0, 100, datePtr(today.AddDays(-3)), 0, false},
		{"deadline passed and target met", 100, 100, datePtr(today.AddDays(-3)), 0, false},
		{"no deadline", 0, 100, nil, 0, false},
		{"deadline centuries ahead", 0, 1000000, datePtr(MustParseDate("2400-01-01")), 8, true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := DailyTarget(tc.current, tc.target, tc.deadline, today)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDailyTarget_PlanReachesTarget(t *testing.T) {
	t.Parallel()

	today := MustParseDate("2026-10-16")
	for remaining := 1; remaining <= 250; remaining++ {
		for days := 1; days <= 40; days++ {
			pace, ok := DailyTarget(0, remaining, datePtr(today.AddDays(days)), today)
			if !ok {
				t.Fatalf("remaining=%d days=%d: expected a pace", remaining, days)
			}
			if pace*days < remaining {
				t.Fatalf("remaining=%d days=%d: pace %d undershoots", remaining, days, pace)
			}
			if (pace-1)*days >= remaining {
				t.Fatalf("remaining=%d days=%d: pace %d is not minimal", remaining, days, pace)
			}
		}
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	today := MustParseDate("2026-10-16")

	assert.Equal(t, DeadlineNone, StatusOf(nil, today))
	assert.Equal(t, DeadlineUpcoming, StatusOf(datePtr(today.AddDays(4)), today))
	assert.Equal(t, DeadlineDueToday, StatusOf(datePtr(today), today))
	assert.Equal(t, DeadlineOverdue, StatusOf(datePtr(today.AddDays(-1)), today))
}

func TestIsUrgent(t *testing.T) {
	t.Parallel()

	today := MustParseDate("2026-10-16")

	assert.False(t, IsUrgent(nil, today))
	assert.False(t, IsUrgent(datePtr(today.AddDays(UrgentWithinDays+1)), today))
	assert.True(t, IsUrgent(datePtr(today.AddDays(UrgentWithinDays)), today))
	assert.True(t, IsUrgent(datePtr(today), today))
	assert.True(t, IsUrgent(datePtr(today.AddDays(-2)), today))
}
