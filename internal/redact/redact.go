// Package redact scrubs personal and operational details from strings before
// they are written to logs. Textbook labels and request payloads are typed
// by students, so error messages that echo them can carry e-mail addresses
// or phone numbers; config errors can carry file paths and secrets.
package redact

import (
	"regexp"
	"unicode/utf8"
)

// Placeholders substituted for redacted fragments.
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPhonePlaceholder = "[REDACTED_PHONE]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules run in order. E-mail addresses go first so the path rule never sees
// the domain part of an address.
var rules = []rule{
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		RedactedEmailPlaceholder,
	},
	{
		// Japanese mobile and landline numbers, with or without separators.
		regexp.MustCompile(`\b0\d{1,4}[-‐ー ]?\d{1,4}[-‐ー ]?\d{3,4}\b`),
		RedactedPhonePlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)(['"\s:=]+)[^'"\s&]{6,}`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		"[STACK_TRACE_REDACTED]",
	},
	{
		regexp.MustCompile(`(/[\w.-]+){3,}`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`),
		RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Truncate redacts s and shortens it to at most maxRunes runes, appending
// "…" when anything was cut.
func Truncate(s string, maxRunes int) string {
	s = String(s)
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes]) + "…"
}
