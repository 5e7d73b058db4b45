package planner

import "time"

// ResolveExamYear returns the entrance-exam year that planning currently
// targets.
//
// The Japanese school year runs April to March. From January through March
// the exams of the current calendar year are still ahead, so that year is
// returned. From April onward planning has moved to the next cycle and the
// following year is returned.
//
// now is interpreted in Asia/Tokyo, and only its calendar month matters:
// 2026-03-31T23:59 JST resolves to 2026, 2026-04-01T00:00 JST to 2027.
func ResolveExamYear(now time.Time) int {
	return ExamYearOf(DateOf(now))
}

// ExamYearOf is ResolveExamYear for a calendar date that has already been
// taken in Asia/Tokyo.
func ExamYearOf(d Date) int {
	if d.Month >= time.April {
		return d.Year + 1
	}
	return d.Year
}
