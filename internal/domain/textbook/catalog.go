package textbook

import (
	"fmt"
	"path"
	"strconv"
	"unicode/utf8"
)

// Wordbook describes one word bank and how it is split into unit pages.
type Wordbook struct {
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	JPName     string `json:"jp_name"`
	UnitLabel  string `json:"unit_label"`
	TotalItems int    `json:"total_items"`
	UnitSize   int    `json:"unit_size"`
	// Ranges, when set, replaces the fixed-size split for books whose
	// chapters have uneven lengths. They must tile [1, TotalItems].
	Ranges []Range `json:"ranges,omitempty"`
}

// TotalUnits returns the number of unit pages generated for the book.
func (w Wordbook) TotalUnits() int {
	if len(w.Ranges) > 0 {
		return len(w.Ranges)
	}
	return TotalUnits(w.TotalItems, w.UnitSize)
}

// Range returns the item range of unit, validating that unit is within
// [1, TotalUnits].
func (w Wordbook) Range(unit int) (Range, error) {
	if unit < 1 || unit > w.TotalUnits() {
		return Range{}, fmt.Errorf("%w: %s has %d units, got %d",
			ErrUnitOutOfRange, w.Slug, w.TotalUnits(), unit)
	}
	return w.unitRange(unit), nil
}

func (w Wordbook) unitRange(unit int) Range {
	if len(w.Ranges) > 0 {
		return w.Ranges[unit-1]
	}
	return UnitRange(w.TotalItems, w.UnitSize, unit)
}

// Units returns the ranges of every unit in order.
func (w Wordbook) Units() []Range {
	n := w.TotalUnits()
	units := make([]Range, 0, n)
	for unit := 1; unit <= n; unit++ {
		units = append(units, w.unitRange(unit))
	}
	return units
}

// UnitName renders a unit heading: "Section 3" for Latin labels, "第3章" for
// Japanese counters.
func (w Wordbook) UnitName(unit int) string {
	if r, _ := utf8.DecodeRuneInString(w.UnitLabel); r < utf8.RuneSelf {
		return w.UnitLabel + " " + strconv.Itoa(unit)
	}
	return "第" + strconv.Itoa(unit) + w.UnitLabel
}

func (w Wordbook) validate() error {
	switch {
	case w.Slug == "":
		return fmt.Errorf("%w: empty slug", ErrInvalidWordbook)
	case w.TotalItems <= 0:
		return fmt.Errorf("%w: %s: total items must be positive", ErrInvalidWordbook, w.Slug)
	case len(w.Ranges) == 0 && w.UnitSize <= 0:
		return fmt.Errorf("%w: %s: unit size must be positive", ErrInvalidWordbook, w.Slug)
	}

	next := 1
	for i, r := range w.Ranges {
		if r.Start != next || r.End < r.Start {
			return fmt.Errorf("%w: %s: range %d (%d-%d) does not continue from %d",
				ErrInvalidWordbook, w.Slug, i+1, r.Start, r.End, next)
		}
		next = r.End + 1
	}
	if len(w.Ranges) > 0 && next != w.TotalItems+1 {
		return fmt.Errorf("%w: %s: ranges end at %d, want %d",
			ErrInvalidWordbook, w.Slug, next-1, w.TotalItems)
	}
	return nil
}

// Page is one statically generated unit landing page.
type Page struct {
	Slug     string `json:"slug"`
	Unit     int    `json:"unit"`
	Path     string `json:"path"`
	Title    string `json:"title"`
	Range    Range  `json:"range"`
	Wordbook string `json:"wordbook"`
}

// Pages enumerates one page per unit, with paths rooted at prefix.
func (w Wordbook) Pages(prefix string) []Page {
	units := w.Units()
	pages := make([]Page, 0, len(units))
	for i, r := range units {
		unit := i + 1
		pages = append(pages, Page{
			Slug:     w.Slug,
			Unit:     unit,
			Path:     path.Join(prefix, w.Slug, strconv.Itoa(unit)),
			Title:    w.JPName + " " + w.UnitName(unit),
			Range:    r,
			Wordbook: w.Name,
		})
	}
	return pages
}

// Catalog is an immutable, ordered set of wordbooks keyed by slug. It is
// safe for concurrent use.
type Catalog struct {
	books []Wordbook
	index map[string]int
}

// NewCatalog validates books and builds a catalog preserving their order.
func NewCatalog(books ...Wordbook) (*Catalog, error) {
	c := &Catalog{
		books: make([]Wordbook, 0, len(books)),
		index: make(map[string]int, len(books)),
	}
	for _, b := range books {
		if err := b.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[b.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %s", ErrInvalidWordbook, b.Slug)
		}
		c.index[b.Slug] = len(c.books)
		c.books = append(c.books, b)
	}
	return c, nil
}

// Get returns the wordbook registered under slug.
func (c *Catalog) Get(slug string) (Wordbook, error) {
	i, ok := c.index[slug]
	if !ok {
		return Wordbook{}, fmt.Errorf("%w: %s", ErrWordbookNotFound, slug)
	}
	return c.books[i], nil
}

// All returns every wordbook in catalog order.
func (c *Catalog) All() []Wordbook {
	out := make([]Wordbook, len(c.books))
	copy(out, c.books)
	return out
}

// Pages enumerates the unit pages of every wordbook.
func (c *Catalog) Pages(prefix string) []Page {
	var pages []Page
	for _, b := range c.books {
		pages = append(pages, b.Pages(prefix)...)
	}
	return pages
}
