package planner

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/edulens/edulens-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOf_UsesTokyoCalendar(t *testing.T) {
	t.Parallel()

	// 15:30 UTC on the 31st is already the 1st in Tokyo.
	instant := time.Date(2026, time.March, 31, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2026, time.April, 1), DateOf(instant))

	// Time of day never leaks into the date.
	late := time.Date(2026, time.March, 31, 23, 59, 59, 0, Tokyo)
	early := time.Date(2026, time.March, 31, 0, 0, 0, 0, Tokyo)
	assert.Equal(t, DateOf(early), DateOf(late))
}

func TestNewDate_Normalizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Date{Year: 2026, Month: time.March, Day: 2}, NewDate(2026, time.February, 30))
	assert.Equal(t, Date{Year: 2027, Month: time.January, Day: 1}, NewDate(2026, time.December, 32))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{"plain date", "2026-02-15", NewDate(2026, time.February, 15), false},
		{"surrounding whitespace", " 2026-02-15\n", NewDate(2026, time.February, 15), false},
		{"rfc3339 utc crosses into next tokyo day", "2026-02-15T20:00:00Z", NewDate(2026, time.February, 16), false},
		{"rfc3339 with offset", "2026-02-15T08:00:00+09:00", NewDate(2026, time.February, 15), false},
		{"first representable year", "0001-01-01", NewDate(1, time.January, 1), false},
		{"last four-digit year", "9999-12-31", NewDate(9999, time.December, 31), false},
		{"empty", "", Date{}, true},
		{"garbage", "next friday", Date{}, true},
		{"impossible day", "2026-02-30", Date{}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDate_Arithmetic(t *testing.T) {
	t.Parallel()

	d := MustParseDate("2026-10-16")

	assert.Equal(t, MustParseDate("2026-10-17"), d.AddDays(1))
	assert.Equal(t, MustParseDate("2026-09-30"), d.AddDays(-16))
	assert.Equal(t, 365, MustParseDate("2027-10-16").Sub(d))
	assert.Equal(t, -1, d.AddDays(-1).Sub(d))

	first, last := MustParseDate("0001-01-01"), MustParseDate("9999-12-31")
	assert.Equal(t, 3652058, last.Sub(first))
	assert.Equal(t, -3652058, first.Sub(last))
	assert.Equal(t, last, first.AddDays(3652058))
	assert.Equal(t, time.Monday, first.Weekday())
	assert.Equal(t, time.Friday, last.Weekday())
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))
	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "2026-10-16", d.String())
	assert.Equal(t, "10月16日", d.FormatJP())
	assert.True(t, Date{}.IsZero())
	assert.False(t, d.IsZero())
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Deadline *Date `json:"deadline,omitempty"`
	}

	out, err := json.Marshal(payload{Deadline: &Date{Year: 2027, Month: time.January, Day: 17}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2027-01-17"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"deadline":"2027-01-17"}`), &in))
	require.NotNil(t, in.Deadline)
	assert.Equal(t, NewDate(2027, time.January, 17), *in.Deadline)

	err = json.Unmarshal([]byte(`{"deadline":"tomorrow"}`), &in)
	assert.Error(t, err)
}
