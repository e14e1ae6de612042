package dto

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// FirstPage is the page reported when the request carries no usable page number.
const FirstPage = 1

// ParseLimit parses a requested page size.
// Missing, non-numeric and non-positive values return 0, which selects the default.
// Fractions such as "2.5" are not integers and count as non-numeric.
// Values beyond the int range are rejected.
func ParseLimit(raw string) (int, error) {
	n, ok, err := parseInt("limit", raw)
	if err != nil {
		return 0, err
	}

	if !ok || n <= 0 {
		return 0, nil
	}

	return n, nil
}

// ParsePage parses a requested page number.
// Missing and non-numeric values, fractions included, return FirstPage; any other
// integer is returned as given.
// Values beyond the int range are rejected.
func ParsePage(raw string) (int, error) {
	n, ok, err := parseInt("page", raw)
	if err != nil {
		return 0, err
	}

	if !ok {
		return FirstPage, nil
	}

	return n, nil
}

// parseInt reports ok=false for input that is not an integer at all and an
// error only for integers that do not fit.
func parseInt(field, raw string) (int, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(raw)
	if err == nil {
		return n, true, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		return 0, false, domain.NewValidationErrorWithValue(field, "out of range", raw)
	}

	return 0, false, nil
}
