package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// AuthorResponse is the projected author of a quote's book.
type AuthorResponse struct {
	Name string `json:"name"`
}

// BookResponse is the projected book a quote was taken from.
type BookResponse struct {
	Title  string         `json:"title"`
	Author AuthorResponse `json:"author"`
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	ID   string       `json:"id"`
	Text string       `json:"text"`
	Book BookResponse `json:"book"`
}

// QuoteListResponse is one page of quotes with its counts.
type QuoteListResponse struct {
	Count      int64           `json:"count"`
	TotalCount int64           `json:"totalCount"`
	Page       int             `json:"page"`
	Quotes     []QuoteResponse `json:"quotes"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:   q.ID,
		Text: q.Text,
		Book: BookResponse{
			Title: q.Book.Title,
			Author: AuthorResponse{
				Name: q.Book.Author.Name,
			},
		},
	}
}

func toQuoteListResponse(p *domain.QuotePage) QuoteListResponse {
	quotes := make([]QuoteResponse, 0, len(p.Quotes))
	for i := range p.Quotes {
		quotes = append(quotes, toQuoteResponse(&p.Quotes[i]))
	}

	return QuoteListResponse{
		Count:      p.Count,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		Quotes:     quotes,
	}
}

// ListQuotes handles GET /api/v1/quotes
// Returns a page of quotes filtered by book title, author name and author id.
// Any failure, including an empty page, is answered with the same 400.
//
// @Summary List quotes
// @Description Lists quotes with optional filters and pagination
// @Tags quotes
// @Produce json
// @Param title query string false "Book title contains"
// @Param author query string false "Author name contains"
// @Param authorId query string false "Exact author id"
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} QuoteListResponse
// @Failure 400 {object} dto.StatusResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	var req dto.ListQuotesRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.RespondBadRequest(c, err, dto.MessageCheckQueryParameters)
		return
	}

	limit, err := dto.ParseLimit(req.Limit)
	if err != nil {
		dto.RespondBadRequest(c, err, dto.MessageCheckQueryParameters)
		return
	}

	page, err := dto.ParsePage(req.Page)
	if err != nil {
		dto.RespondBadRequest(c, err, dto.MessageCheckQueryParameters)
		return
	}

	result, err := h.service.ListQuotes(c.Request.Context(), app.ListQuotesQuery{
		Title:    req.Title,
		Author:   req.Author,
		AuthorID: req.AuthorID,
		Limit:    limit,
		Page:     page,
	})
	if err != nil {
		dto.RespondBadRequest(c, err, dto.MessageCheckQueryParameters)
		return
	}

	c.JSON(http.StatusOK, toQuoteListResponse(result))
}

// GetQuoteByID handles GET /api/v1/quotes/:id
// Returns a specific quote by its identifier. Unknown and malformed
// identifiers both produce 400 "Invalid ID".
//
// @Summary Get a quote by ID
// @Description Fetches a specific quote by its identifier
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} dto.StatusResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	var req dto.GetQuoteRequest
	if err := dto.BindURIAndValidate(c, &req); err != nil {
		dto.RespondBadRequest(c, err, dto.MessageInvalidID)
		return
	}

	quote, err := h.service.GetQuoteByID(c.Request.Context(), req.ID)
	if err != nil {
		dto.RespondBadRequest(c, err, dto.MessageInvalidID)
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/:id", h.GetQuoteByID)
}
