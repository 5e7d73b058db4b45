package textbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupLabels(t *testing.T) {
	t.Parallel()

	labels := []string{
		"New Crown 中1 - Lesson1",
		"New Crown 中1 - Lesson2",
		"システム英単語（覚えた）",
		"New Crown 中1 - Lesson1",
		"",
		"システム英単語",
		"重要古文単語315（新版）",
	}

	got := GroupLabels(labels)

	assert.Equal(t, []Group{
		{Name: "New Crown 中1", Labels: []string{"New Crown 中1 - Lesson1", "New Crown 中1 - Lesson2"}, Count: 3},
		{Name: "システム英単語", Labels: []string{"システム英単語（覚えた）", "システム英単語"}, Count: 2},
		{Name: "重要古文単語315（新版）", Labels: []string{"重要古文単語315（新版）"}, Count: 1},
	}, got.Groups)
	assert.Equal(t, []string{"重要古文単語315（新版）"}, got.Unrecognized)
}

func TestGroupLabels_Empty(t *testing.T) {
	t.Parallel()

	got := GroupLabels(nil)
	assert.NotNil(t, got.Groups)
	assert.Empty(t, got.Groups)
	assert.NotNil(t, got.Unrecognized)
	assert.Empty(t, got.Unrecognized)
}
