package persistence

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

const (
	// MaxTermLength is the longest search term, in runes, kept after cleaning.
	MaxTermLength = 200

	// LikeEscape is the escape character used in generated LIKE patterns.
	LikeEscape = '!'
)

var likeEscaper = strings.NewReplacer(
	string(LikeEscape), string(LikeEscape)+string(LikeEscape),
	"%", string(LikeEscape)+"%",
	"_", string(LikeEscape)+"_",
)

// LikeSanitizer turns raw search terms into case-insensitive "contains" patterns.
// The zero value is ready to use.
type LikeSanitizer struct {
	// MaxLength overrides MaxTermLength when positive.
	MaxLength int
}

// NewLikeSanitizer returns a sanitizer with the default term length.
func NewLikeSanitizer() *LikeSanitizer {
	return &LikeSanitizer{MaxLength: MaxTermLength}
}

// Sanitize normalizes raw and escapes its LIKE metacharacters.
// It returns nil when nothing searchable remains.
func (s *LikeSanitizer) Sanitize(raw string) *domain.TextMatch {
	term := Clean(raw, s.maxLength())
	if term == "" {
		return nil
	}

	return &domain.TextMatch{
		Pattern: "%" + likeEscaper.Replace(term) + "%",
		Escape:  LikeEscape,
	}
}

func (s *LikeSanitizer) maxLength() int {
	if s == nil || s.MaxLength <= 0 {
		return MaxTermLength
	}

	return s.MaxLength
}

// Clean applies NFC normalization, drops control characters, collapses
// whitespace and truncates the result to maxRunes.
func Clean(raw string, maxRunes int) string {
	term := norm.NFC.String(raw)

	term = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r), r == utf8.RuneError:
			return -1
		default:
			return r
		}
	}, term)

	term = strings.Join(strings.Fields(term), " ")

	if utf8.RuneCountInString(term) > maxRunes {
		term = strings.TrimSpace(string([]rune(term)[:maxRunes]))
	}

	return term
}
