package planner

// UrgentWithinDays is the number of remaining days at or below which a
// deadline is flagged as urgent.
const UrgentWithinDays = 3

// DeadlineStatus classifies a deadline relative to today.
type DeadlineStatus string

// Valid deadline statuses.
const (
	DeadlineNone     DeadlineStatus = "none"
	DeadlineUpcoming DeadlineStatus = "upcoming"
	DeadlineDueToday DeadlineStatus = "due_today"
	DeadlineOverdue  DeadlineStatus = "overdue"
)

// DaysUntil returns the number of days from today to deadline.
//
// A nil deadline means no deadline has been set; ok is false and callers
// should treat the plan as unbounded. Otherwise both sides are civil dates,
// so the difference is already a whole number of days and matches taking
// the ceiling of the millisecond difference between the two midnights:
//   - deadline today      → 0
//   - deadline tomorrow   → 1
//   - deadline yesterday  → -1
func DaysUntil(deadline *Date, today Date) (days int, ok bool) {
	if deadline == nil {
		return 0, false
	}
	return deadline.Sub(today), true
}

// DailyTarget returns the minimum whole number of pages per day needed to
// go from currentPage to targetPage by the deadline.
//
// Parameters:
//   - currentPage: pages already done, >= 0
//   - targetPage: goal page, >= 0
//   - deadline: nil when no deadline is set
//   - today: the caller's current calendar date
//
// Returns:
//   - (0, false) when there is no deadline, or the deadline is today or has
//     passed; a pace is meaningless once the deadline has arrived
//   - (0, true) when the goal is already met or exceeded
//   - (ceil(remaining / daysLeft), true) otherwise, rounding up so that
//     following the plan never undershoots
func DailyTarget(currentPage, targetPage int, deadline *Date, today Date) (int, bool) {
	daysLeft, ok := DaysUntil(deadline, today)
	if !ok || daysLeft <= 0 {
		return 0, false
	}

	remaining := targetPage - currentPage
	if remaining <= 0 {
		return 0, true
	}

	return ceilDiv(remaining, daysLeft), true
}

// StatusOf classifies deadline relative to today.
func StatusOf(deadline *Date, today Date) DeadlineStatus {
	daysLeft, ok := DaysUntil(deadline, today)
	switch {
	case !ok:
		return DeadlineNone
	case daysLeft > 0:
		return DeadlineUpcoming
	case daysLeft == 0:
		return DeadlineDueToday
	default:
		return DeadlineOverdue
	}
}

// IsUrgent reports whether a deadline exists and is at most
// UrgentWithinDays away. Overdue deadlines are urgent too.
func IsUrgent(deadline *Date, today Date) bool {
	daysLeft, ok := DaysUntil(deadline, today)
	return ok && daysLeft <= UrgentWithinDays
}

// ceilDiv returns ceil(a / b) for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
