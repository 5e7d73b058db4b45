package textbook

import (
	"regexp"
	"strings"
	"unicode"
)

// ws matches ASCII and Unicode space separators, including the full-width
// space U+3000 that shows up in Japanese labels.
const ws = `[\s\p{Z}]`

// stripRule removes a suffix of a label. Every pattern is anchored at the end
// of the string so a rule can never cut text out of the middle of a name.
type stripRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r stripRule) apply(s string) string {
	return r.pattern.ReplaceAllString(s, "")
}

// normalizeRules run in order; later rules see the output of earlier ones.
var normalizeRules = []stripRule{
	// "New Crown 中1 - Lesson1" → "New Crown 中1". Cuts at the first dash.
	{
		name:    "dash-suffix",
		pattern: regexp.MustCompile(ws + `*[-–—]` + ws + `*.*$`),
	},
	// "Sunshine 2 Unit 3 Part 1" → "Sunshine 2". The marker must be followed
	// by digits, so "Unit" as part of a title on its own survives.
	{
		name:    "unit-marker",
		pattern: regexp.MustCompile(`(?i)` + ws + `*(?:lesson|unit|chapter)` + ws + `*\d+.*$`),
	},
	// "ターゲット1900（復習テスト）" → "ターゲット1900".
	{
		name:    "review-annotation",
		pattern: regexp.MustCompile(ws + `*[（(][^）)]*復習[^)）]*[)）]` + ws + `*$`),
	},
	// "システム英単語（覚えた）" → "システム英単語".
	{
		name:    "status-annotation",
		pattern: regexp.MustCompile(ws + `*[（(][^）)]*(?:覚えた|要チェック|覚えていない)[^)）]*[)）]` + ws + `*$`),
	},
	{
		name:    "trailing-dash-space",
		pattern: regexp.MustCompile(`[-–—\s\p{Z}]+$`),
	},
}

// trailingParenthetical matches a parenthetical that ends the string.
var trailingParenthetical = regexp.MustCompile(`[（(][^（()）]*[)）]$`)

// Normalize returns the canonical textbook name for a raw label by stripping
// lesson/unit/chapter suffixes and review-status annotations. Empty input
// yields an empty string.
//
// The rule pipeline is repeated until the label stops changing. A single
// pass can expose a new trailing annotation ("名前（復習）（覚えた）" loses
// the status first, revealing the review marker), and repeating makes
// Normalize idempotent.
func Normalize(label string) string {
	current := label
	for {
		next := normalizeOnce(current)
		if next == current {
			return next
		}
		current = next
	}
}

func normalizeOnce(s string) string {
	for _, r := range normalizeRules {
		s = r.apply(s)
	}
	return strings.TrimFunc(s, unicode.IsSpace)
}

// HasTrailingAnnotation reports whether a normalized name still ends in a
// parenthetical. Only four review-status words are recognized, so a new
// status label added to the catalog shows up here instead of being
// stripped. Some textbook titles legitimately end in parentheses, so this
// is a signal for review, not an error.
func HasTrailingAnnotation(name string) bool {
	return trailingParenthetical.MatchString(name)
}
