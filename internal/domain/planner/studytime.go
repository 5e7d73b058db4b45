package planner

import (
	"math"
	"time"
)

// DayCounts splits the days before an exam into school days and weekend days.
type DayCounts struct {
	Total    int `json:"total"`
	Weekdays int `json:"weekdays"`
	Weekends int `json:"weekends"`
}

// CountDays counts the days from from (inclusive) to to (exclusive).
// Saturdays and Sundays are weekend days; every other day is a weekday.
// When to is on or before from all counts are zero.
func CountDays(from, to Date) DayCounts {
	total := to.Sub(from)
	if total <= 0 {
		return DayCounts{}
	}

	weeks, rest := total/7, total%7
	c := DayCounts{Total: total, Weekdays: weeks * 5, Weekends: weeks * 2}

	wd := from.Weekday()
	for i := 0; i < rest; i++ {
		switch (wd + time.Weekday(i)) % 7 {
		case time.Saturday, time.Sunday:
			c.Weekends++
		default:
			c.Weekdays++
		}
	}
	return c
}

// StudyTimeInput describes a study-time simulation.
type StudyTimeInput struct {
	Today        Date
	ExamDate     Date
	WeekdayHours float64
	WeekendHours float64
	Subjects     int
}

// StudyTimeResult is the outcome of a study-time simulation.
type StudyTimeResult struct {
	Days            DayCounts `json:"days"`
	TotalHours      int       `json:"total_hours"`
	HoursPerSubject float64   `json:"hours_per_subject"`
}

// StudyTime estimates how many hours of study fit before the exam.
//
// Algorithm behavior:
//   - Days from today up to (not including) the exam date are split into
//     weekdays and weekend days
//   - TotalHours = floor(weekdays*WeekdayHours + weekends*WeekendHours)
//   - HoursPerSubject = TotalHours / Subjects rounded to one decimal place;
//     with no subjects the whole total is reported
//   - An exam date that is today or already past yields an all-zero result
func StudyTime(in StudyTimeInput) StudyTimeResult {
	days := CountDays(in.Today, in.ExamDate)

	total := int(math.Floor(
		float64(days.Weekdays)*in.WeekdayHours + float64(days.Weekends)*in.WeekendHours,
	))

	perSubject := float64(total)
	if in.Subjects > 0 {
		perSubject = roundTenths(float64(total) / float64(in.Subjects))
	}

	return StudyTimeResult{
		Days:            days,
		TotalHours:      total,
		HoursPerSubject: perSubject,
	}
}

func roundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}
