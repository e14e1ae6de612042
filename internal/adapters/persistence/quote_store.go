package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

const quoteColumns = "quotes.id AS id, quotes.text AS text, books.title AS book_title, authors.name AS author_name"

// quoteRow is the flat projection of one quote with its book and author.
type quoteRow struct {
	ID         string
	Text       string
	BookTitle  string
	AuthorName string
}

func (r quoteRow) toDomain() domain.Quote {
	return domain.Quote{
		ID:   r.ID,
		Text: r.Text,
		Book: domain.Book{
			Title:  r.BookTitle,
			Author: domain.Author{Name: r.AuthorName},
		},
	}
}

// QuoteStore reads quotes joined with their book and author.
// It is safe for concurrent use.
type QuoteStore struct {
	db *gorm.DB
}

// NewQuoteStore creates a store backed by db.
func NewQuoteStore(db *gorm.DB) *QuoteStore {
	return &QuoteStore{db: db}
}

// ListQuotes returns the quotes matching filter inside window, in the database's natural order.
func (s *QuoteStore) ListQuotes(
	ctx context.Context,
	filter domain.QuoteFilter,
	window domain.Window,
) ([]domain.Quote, error) {
	var rows []quoteRow

	err := s.matching(ctx, filter).
		Select(quoteColumns).
		Offset(window.Skip).
		Limit(window.Take).
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewQueryError("list quotes", err)
	}

	quotes := make([]domain.Quote, len(rows))
	for i, row := range rows {
		quotes[i] = row.toDomain()
	}

	return quotes, nil
}

// CountQuotes counts the quotes matching filter. With a window it counts the rows
// of the windowed query, so the result never exceeds window.Take.
func (s *QuoteStore) CountQuotes(
	ctx context.Context,
	filter domain.QuoteFilter,
	window *domain.Window,
) (int64, error) {
	var n int64

	query := s.matching(ctx, filter)

	if window != nil {
		windowed := query.Select("quotes.id").Offset(window.Skip).Limit(window.Take)
		query = s.db.WithContext(ctx).Table("(?) AS windowed", windowed)
	}

	if err := query.Count(&n).Error; err != nil {
		return 0, domain.NewQueryError("count quotes", err)
	}

	return n, nil
}

// GetQuote returns the quote with the given id.
func (s *QuoteStore) GetQuote(ctx context.Context, id string) (*domain.Quote, error) {
	var row quoteRow

	err := s.joined(ctx).
		Select(quoteColumns).
		Where("quotes.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("quote", id)
	}

	if err != nil {
		return nil, domain.NewQueryError("get quote", err)
	}

	quote := row.toDomain()

	return &quote, nil
}

// Name implements ports.HealthChecker.
func (s *QuoteStore) Name() string {
	return "database"
}

// Check implements ports.HealthChecker by pinging the connection pool.
func (s *QuoteStore) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return domain.NewUnavailableError("database", err.Error())
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return domain.NewUnavailableError("database", err.Error())
	}

	return nil
}

// joined starts a fresh query over quotes joined to books and authors.
func (s *QuoteStore) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("quotes").
		Joins("JOIN books ON books.id = quotes.book_id").
		Joins("JOIN authors ON authors.id = books.author_id")
}

// matching applies filter to a joined query. Absent conditions match everything.
func (s *QuoteStore) matching(ctx context.Context, filter domain.QuoteFilter) *gorm.DB {
	query := s.joined(ctx)

	if filter.Title != nil {
		query = query.Where(likeCondition("books.title", filter.Title.Escape), filter.Title.Pattern)
	}

	if filter.AuthorName != nil {
		query = query.Where(likeCondition("authors.name", filter.AuthorName.Escape), filter.AuthorName.Pattern)
	}

	if filter.AuthorID != nil {
		query = query.Where("books.author_id = ?", *filter.AuthorID)
	}

	return query
}

// likeCondition builds a case-insensitive LIKE clause for column with the given escape character.
func likeCondition(column string, escape rune) string {
	if escape == 0 || escape == '\'' {
		escape = LikeEscape
	}

	return fmt.Sprintf("LOWER(%s) LIKE LOWER(?) ESCAPE '%c'", column, escape)
}
