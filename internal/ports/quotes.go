// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrQuery, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteStore is the read side of the quote archive.
//
// Example usage in application layer:
//
//	type QuoteService struct {
//	    store ports.QuoteStore
//	}
type QuoteStore interface {
	// ListQuotes returns the projected quotes matching filter inside window,
	// in the store's default ordering.
	// Returns domain.ErrQuery if the store fails.
	ListQuotes(ctx context.Context, filter domain.QuoteFilter, window domain.Window) ([]domain.Quote, error)

	// CountQuotes counts quotes matching filter. With a non-nil window the
	// count is taken over the windowed result, so it never exceeds window.Take.
	// Returns domain.ErrQuery if the store fails.
	CountQuotes(ctx context.Context, filter domain.QuoteFilter, window *domain.Window) (int64, error)

	// GetQuote returns the projected quote with the given identifier.
	// Returns domain.ErrNotFound if no such quote exists.
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
}

// Sanitizer turns raw free-text input into a safe matching condition.
// Implementations must be pure and side-effect free.
type Sanitizer interface {
	// Sanitize returns the condition for raw. A nil result means raw
	// carried nothing to match on and no condition should be applied.
	Sanitize(raw string) *domain.TextMatch
}
