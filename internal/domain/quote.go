// Package domain contains core business entities and rules.
package domain

import (
	"math"
)

// DefaultTake is the page size used when the caller does not ask for one.
const DefaultTake = 10

// Quote is the read-only projection of a quote joined with its book and author.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the excerpt itself.
	Text string

	// Book is the book the excerpt was taken from.
	Book Book
}

// Book is the projected view of a quote's book.
type Book struct {
	Title  string
	Author Author
}

// Author is the projected view of a book's author.
type Author struct {
	Name string
}

// TextMatch is a case-insensitive "contains" condition produced by a sanitizer.
// Pattern is a LIKE pattern in which Escape precedes literal metacharacters.
type TextMatch struct {
	Pattern string
	Escape  rune
}

// QuoteFilter is a predicate over quotes expressed through their book and author.
// A nil field applies no condition.
type QuoteFilter struct {
	// Title matches against the book title.
	Title *TextMatch

	// AuthorName matches against the name of the book's author.
	AuthorName *TextMatch

	// AuthorID is compared for equality with the book's author identifier.
	AuthorID *string
}

// Window is the (skip, take) slice of matching quotes a page covers.
type Window struct {
	Skip int
	Take int
}

// NewWindow computes the window for a 1-based page of the given size.
// Pages below 2 start at offset zero. An offset that does not fit in an int
// is reported as a validation error.
func NewWindow(page, take int) (Window, error) {
	if take <= 0 {
		return Window{}, NewValidationErrorWithValue("limit", "must be a positive integer", take)
	}

	if page <= 1 {
		return Window{Skip: 0, Take: take}, nil
	}

	if page-1 > math.MaxInt/take {
		return Window{}, NewValidationErrorWithValue("page", "offset out of range", page)
	}

	return Window{Skip: (page - 1) * take, Take: take}, nil
}

// QuotePage is one page of a filtered quote listing.
type QuotePage struct {
	// Count is the number of matches inside the window.
	Count int64

	// TotalCount is the number of matches ignoring the window.
	TotalCount int64

	// Page echoes the requested page number.
	Page int

	Quotes []Quote
}
