package textbook

// Range is a 1-based inclusive slice [Start, End] of a word bank.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of items in r, or 0 for a degenerate range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// UnitRange returns the item range of unit unitIndex when totalItems items
// are split into units of unitSize:
//
//	start = (unitIndex-1)*unitSize + 1
//	end   = min(unitIndex*unitSize, totalItems)
//
// The final unit is clamped so it never runs past totalItems.
//
// Inputs are not validated. It is only driven by enumerators that already
// keep unitIndex within [1, TotalUnits(totalItems, unitSize)]; anything else
// produces a degenerate range (End < Start) or one outside the word bank.
// Use Wordbook.Range for user-supplied unit numbers.
func UnitRange(totalItems, unitSize, unitIndex int) Range {
	return Range{
		Start: (unitIndex-1)*unitSize + 1,
		End:   min(unitIndex*unitSize, totalItems),
	}
}

// TotalUnits returns ceil(totalItems / unitSize), the number of unit pages a
// word bank needs. Non-positive inputs yield 0.
func TotalUnits(totalItems, unitSize int) int {
	if totalItems <= 0 || unitSize <= 0 {
		return 0
	}
	return (totalItems + unitSize - 1) / unitSize
}
