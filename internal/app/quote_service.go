// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quotes-service/app"

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	store        ports.QuoteStore
	sanitizer    ports.Sanitizer
	logger       *slog.Logger
	tracer       trace.Tracer
	defaultLimit int
	parallel     bool
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store     ports.QuoteStore
	Sanitizer ports.Sanitizer
	Logger    *slog.Logger

	// DefaultLimit is the page size used when a request has no usable limit.
	// Zero selects domain.DefaultTake.
	DefaultLimit int

	// ParallelQueries runs the three listing reads concurrently.
	ParallelQueries bool
}

// ListQuotesQuery holds the already-parsed parameters of a listing request.
type ListQuotesQuery struct {
	// Title and Author are raw free-text terms; empty means no condition.
	Title  string
	Author string

	// AuthorID, when non-nil, is matched exactly against the book's author.
	AuthorID *string

	// Limit is the requested page size; non-positive selects the default.
	Limit int

	// Page is the requested 1-based page number.
	Page int
}

// NewQuoteService creates a new quote service with the provided dependencies.
// It panics if Store or Sanitizer is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	if cfg.Sanitizer == nil {
		panic("app: QuoteServiceConfig.Sanitizer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := cfg.DefaultLimit
	if limit <= 0 {
		limit = domain.DefaultTake
	}

	return &QuoteService{
		store:        cfg.Store,
		sanitizer:    cfg.Sanitizer,
		logger:       logger.With(slog.String("component", "app.QuoteService")),
		tracer:       otel.Tracer(tracerName),
		defaultLimit: limit,
		parallel:     cfg.ParallelQueries,
	}
}

// ListQuotes returns one page of quotes matching the query.
// An empty page is reported as domain.ErrNoResults, store failures as domain.ErrQuery.
func (s *QuoteService) ListQuotes(ctx context.Context, q ListQuotesQuery) (*domain.QuotePage, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.ListQuotes")
	defer span.End()

	take := q.Limit
	if take <= 0 {
		take = s.defaultLimit
	}

	window, err := domain.NewWindow(q.Page, take)
	if err != nil {
		return nil, s.fail(span, "invalid pagination", err)
	}

	filter := s.BuildFilter(q)

	span.SetAttributes(
		attribute.Int("quotes.skip", window.Skip),
		attribute.Int("quotes.take", window.Take),
		attribute.Bool("quotes.filter.title", filter.Title != nil),
		attribute.Bool("quotes.filter.author", filter.AuthorName != nil),
		attribute.Bool("quotes.filter.author_id", filter.AuthorID != nil),
	)

	s.logger.DebugContext(ctx, "listing quotes",
		slog.Int("skip", window.Skip),
		slog.Int("take", window.Take),
	)

	quotes, count, total, err := s.fetchPage(ctx, filter, window)
	if err != nil {
		return nil, s.fail(span, "failed to list quotes", err)
	}

	if len(quotes) == 0 {
		return nil, s.fail(span, "no quotes matched", domain.NewNoResultsError("quotes", window))
	}

	span.SetAttributes(attribute.Int64("quotes.total", total))

	s.logger.InfoContext(ctx, "listed quotes",
		slog.Int("returned", len(quotes)),
		slog.Int64("total", total),
	)

	return &domain.QuotePage{
		Count:      count,
		TotalCount: total,
		Page:       q.Page,
		Quotes:     quotes,
	}, nil
}

// GetQuoteByID retrieves a specific quote by its identifier.
func (s *QuoteService) GetQuoteByID(ctx context.Context, id string) (*domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.GetQuoteByID",
		trace.WithAttributes(attribute.String("quote.id", id)),
	)
	defer span.End()

	if strings.TrimSpace(id) == "" {
		return nil, s.fail(span, "missing quote id", domain.NewValidationError("id", "is required"))
	}

	quote, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return nil, s.fail(span, "failed to fetch quote", err)
	}

	s.logger.InfoContext(ctx, "fetched quote",
		slog.String("quote_id", quote.ID),
	)

	return quote, nil
}

// BuildFilter turns the raw query terms into a store filter.
// Free-text terms go through the sanitizer; the author identifier is an
// equality match and is only trimmed.
func (s *QuoteService) BuildFilter(q ListQuotesQuery) domain.QuoteFilter {
	var filter domain.QuoteFilter

	if q.Title != "" {
		filter.Title = s.sanitizer.Sanitize(q.Title)
	}

	if q.Author != "" {
		filter.AuthorName = s.sanitizer.Sanitize(q.Author)
	}

	if q.AuthorID != nil {
		id := strings.TrimSpace(*q.AuthorID)
		filter.AuthorID = &id
	}

	return filter
}

func (s *QuoteService) fetchPage(
	ctx context.Context,
	filter domain.QuoteFilter,
	window domain.Window,
) ([]domain.Quote, int64, int64, error) {
	list := func(ctx context.Context) ([]domain.Quote, error) {
		return s.store.ListQuotes(ctx, filter, window)
	}
	countWindow := func(ctx context.Context) (int64, error) {
		return s.store.CountQuotes(ctx, filter, &window)
	}
	countAll := func(ctx context.Context) (int64, error) {
		return s.store.CountQuotes(ctx, filter, nil)
	}

	if s.parallel {
		return Parallel3(ctx, list, countWindow, countAll)
	}

	quotes, err := list(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	count, err := countWindow(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	total, err := countAll(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	return quotes, count, total, nil
}

// fail records err and its domain kind on the span and returns it unchanged.
// Logging is left to the HTTP boundary, which sees every rejected request.
func (s *QuoteService) fail(span trace.Span, msg string, err error) error {
	span.RecordError(err)
	span.SetAttributes(attribute.String("error.kind", domain.Kind(err)))
	span.SetStatus(codes.Error, msg)

	return err
}
