package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulens/edulens-api/internal/domain/textbook"
)

// run executes the CLI with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	base := []string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}
	cmd.SetArgs(append(base, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExamYearCmd(t *testing.T) {
	out, _, err := run(t, "", "exam-year", "--now", "2026-10-16")
	require.NoError(t, err)
	assert.JSONEq(t, `{"exam_year":2027,"as_of":"2026-10-16"}`, out)

	out, _, err = run(t, "", "exam-year", "--now", "2027-03-31T23:59:00+09:00")
	require.NoError(t, err)
	assert.Contains(t, out, `"exam_year": 2027`)
}

func TestDeadlineCmd(t *testing.T) {
	out, _, err := run(t, "", "deadline", "--now", "2026-10-16",
		"--current", "10", "--target", "40", "--deadline", "2026-10-19")
	require.NoError(t, err)

	var plan map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.EqualValues(t, 3, plan["days_left"])
	assert.EqualValues(t, 10, plan["daily_target"])
	assert.Equal(t, "upcoming", plan["status"])
	assert.Equal(t, true, plan["urgent"])

	_, _, err = run(t, "", "deadline", "--current", "10")
	assert.Error(t, err, "--target is required")

	_, stderr, err := run(t, "", "deadline", "--target", "10", "--deadline", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, stderr, "deadline must be a date")
}

func TestStudyTimeCmd(t *testing.T) {
	out, _, err := run(t, "", "study-time", "--now", "2026-10-16", "--exam", "2026-10-26", "--subjects", "2")
	require.NoError(t, err)

	var plan map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.EqualValues(t, 50, plan["total_hours"])
	assert.EqualValues(t, 25, plan["hours_per_subject"])
	assert.EqualValues(t, 2, plan["subjects"])
	assert.EqualValues(t, 3, plan["weekday_hours"])
}

func TestNormalizeCmd(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		out, _, err := run(t, "", "normalize", "New Crown 中1 - Lesson1", "LEAP（覚えた）")
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"label": "New Crown 中1 - Lesson1", "name": "New Crown 中1"},
			{"label": "LEAP（覚えた）", "name": "LEAP"}
		]`, out)
	})

	t.Run("stdin", func(t *testing.T) {
		out, _, err := run(t, "ターゲット1900 Unit 2\n\n  DUO 3.0（復習）  \n", "normalize")
		require.NoError(t, err)
		assert.JSONEq(t, `[
			{"label": "ターゲット1900 Unit 2", "name": "ターゲット1900"},
			{"label": "DUO 3.0（復習）", "name": "DUO 3.0"}
		]`, out)
	})
}

func TestGroupCmd(t *testing.T) {
	out, _, err := run(t, "LEAP Unit 1\nLEAP Unit 2\nLEAP（メモ）\n", "group")
	require.NoError(t, err)

	var grouping textbook.Grouping
	require.NoError(t, json.Unmarshal([]byte(out), &grouping))
	require.Len(t, grouping.Groups, 2)
	assert.Equal(t, "LEAP", grouping.Groups[0].Name)
	assert.Equal(t, 2, grouping.Groups[0].Count)
	assert.Equal(t, []string{"LEAP（メモ）"}, grouping.Unrecognized)
}

func TestUnitsCmd(t *testing.T) {
	out, _, err := run(t, "", "units", "leap", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"start": 401`)
	assert.Contains(t, out, `"end": 800`)
	assert.Contains(t, out, `"url": "https://edulens.jp/mistap/textbook/leap/2"`)

	out, _, err = run(t, "", "units", "system-words")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_units": 5`)

	out, _, err = run(t, "", "units")
	require.NoError(t, err)
	assert.Contains(t, out, `"slug": "kobun-351"`)

	_, stderr, err := run(t, "", "units", "nope")
	require.Error(t, err)
	assert.Contains(t, stderr, "wordbook not found")

	_, _, err = run(t, "", "units", "leap", "two")
	assert.Error(t, err)
}

func TestPagesCmd(t *testing.T) {
	out, _, err := run(t, "", "pages", "duo-30")
	require.NoError(t, err)

	var pages []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &pages))
	require.Len(t, pages, 45)
	assert.Equal(t, "/mistap/textbook/duo-30/45", pages[44]["path"])
}

func TestInvalidNow(t *testing.T) {
	_, stderr, err := run(t, "", "exam-year", "--now", "someday")
	require.Error(t, err)
	assert.Contains(t, stderr, "--now")
}
