package dto

// ListQuotesRequest holds the raw query parameters of GET /quotes.
type ListQuotesRequest struct {
	// Title filters on the book title (case-insensitive contains).
	Title string `form:"title" json:"title" validate:"max=1024"`

	// Author filters on the author name (case-insensitive contains).
	Author string `form:"author" json:"author" validate:"max=1024"`

	// AuthorID is nil when the parameter is absent and non-nil, possibly empty, when present.
	AuthorID *string `form:"authorId" json:"authorId" validate:"omitempty,max=1024"`

	// Limit and Page are kept as text and parsed leniently.
	Limit string `form:"limit" json:"limit"`
	Page  string `form:"page"  json:"page"`
}

// GetQuoteRequest holds the path parameters of GET /quotes/:id.
type GetQuoteRequest struct {
	ID string `uri:"id" json:"id" validate:"notempty,max=128"`
}
