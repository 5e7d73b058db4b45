package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/edulens/edulens-api/internal/config"
	"github.com/edulens/edulens-api/internal/domain/textbook"
	"github.com/edulens/edulens-api/internal/platform/logger"
)

// MaxLabels bounds the number of labels accepted by Normalize and Group.
const MaxLabels = 1000

// WordbookDetail is a wordbook with its derived unit layout.
type WordbookDetail struct {
	textbook.Wordbook
	TotalUnits int              `json:"total_units"`
	Units      []textbook.Range `json:"units"`
}

// UnitPage is a unit page together with its absolute URL on the site.
type UnitPage struct {
	textbook.Page
	URL string `json:"url"`
}

// TextbookService defines the textbook and word-bank operations.
type TextbookService interface {
	// Normalize returns the canonical textbook name of every label, in order.
	Normalize(ctx context.Context, labels []string) ([]string, error)

	// Group normalizes labels and groups them by canonical name.
	Group(ctx context.Context, labels []string) (*textbook.Grouping, error)

	// Wordbooks lists every wordbook in catalog order.
	Wordbooks(ctx context.Context) []WordbookDetail

	// Wordbook returns one wordbook by slug.
	Wordbook(ctx context.Context, slug string) (*WordbookDetail, error)

	// Unit returns the page for a single unit of a wordbook.
	Unit(ctx context.Context, slug string, unit int) (*UnitPage, error)

	// Pages enumerates every unit page of a wordbook. An empty slug
	// enumerates the whole catalog.
	Pages(ctx context.Context, slug string) ([]UnitPage, error)
}

type textbookService struct {
	catalog *textbook.Catalog
	site    config.SiteConfig
	logger  *slog.Logger
}

// NewTextbookService creates a TextbookService backed by catalog.
func NewTextbookService(
	catalog *textbook.Catalog,
	site config.SiteConfig,
	logger *slog.Logger,
) TextbookService {
	if catalog == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalog cannot be nil for TextbookService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TextbookService")
	}
	return &textbookService{
		catalog: catalog,
		site:    site,
		logger:  logger.With(slog.String("component", "textbook_service")),
	}
}

func checkLabelCount(labels []string) error {
	if len(labels) > MaxLabels {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyLabels, len(labels), MaxLabels)
	}
	return nil
}

func (s *textbookService) Normalize(ctx context.Context, labels []string) ([]string, error) {
	if err := checkLabelCount(labels); err != nil {
		return nil, err
	}

	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = textbook.Normalize(label)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("normalized labels",
		slog.Int("count", len(labels)))

	return names, nil
}

func (s *textbookService) Group(ctx context.Context, labels []string) (*textbook.Grouping, error) {
	if err := checkLabelCount(labels); err != nil {
		return nil, err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	grouping := textbook.GroupLabels(labels)

	if len(grouping.Unrecognized) > 0 {
		log.Warn("labels still carry an annotation after normalization",
			slog.Any("names", grouping.Unrecognized))
	}
	log.Debug("grouped labels",
		slog.Int("labels", len(labels)),
		slog.Int("groups", len(grouping.Groups)))

	return &grouping, nil
}

func detailOf(w textbook.Wordbook) WordbookDetail {
	return WordbookDetail{
		Wordbook:   w,
		TotalUnits: w.TotalUnits(),
		Units:      w.Units(),
	}
}

func (s *textbookService) Wordbooks(ctx context.Context) []WordbookDetail {
	books := s.catalog.All()
	details := make([]WordbookDetail, 0, len(books))
	for _, w := range books {
		details = append(details, detailOf(w))
	}
	return details
}

func (s *textbookService) Wordbook(ctx context.Context, slug string) (*WordbookDetail, error) {
	w, err := s.catalog.Get(slug)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("wordbook lookup failed",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return nil, err
	}
	detail := detailOf(w)
	return &detail, nil
}

func (s *textbookService) Unit(ctx context.Context, slug string, unit int) (*UnitPage, error) {
	w, err := s.catalog.Get(slug)
	if err != nil {
		return nil, err
	}
	if _, err := w.Range(unit); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("unit out of range",
			slog.String("slug", slug),
			slog.Int("unit", unit),
			slog.Int("total_units", w.TotalUnits()))
		return nil, err
	}

	page := s.withURL(w.Pages(s.site.TextbookPath)[unit-1])
	return &page, nil
}

func (s *textbookService) Pages(ctx context.Context, slug string) ([]UnitPage, error) {
	var pages []textbook.Page
	if slug == "" {
		pages = s.catalog.Pages(s.site.TextbookPath)
	} else {
		w, err := s.catalog.Get(slug)
		if err != nil {
			return nil, err
		}
		pages = w.Pages(s.site.TextbookPath)
	}

	result := make([]UnitPage, 0, len(pages))
	for _, p := range pages {
		result = append(result, s.withURL(p))
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("enumerated unit pages",
		slog.String("slug", slug),
		slog.Int("pages", len(result)))

	return result, nil
}

func (s *textbookService) withURL(p textbook.Page) UnitPage {
	u, err := url.JoinPath(s.site.BaseURL, p.Path)
	if err != nil {
		// BaseURL is validated at config load; fall back to the bare path.
		u = p.Path
	}
	return UnitPage{Page: p, URL: u}
}
