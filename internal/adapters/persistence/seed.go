package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SampleData is a small catalogue of authors, books and quotes used for local runs and tests.
// Some titles and names contain LIKE metacharacters on purpose.
type SampleData struct {
	Authors []Author
	Books   []Book
	Quotes  []Quote
}

// Sample returns a fresh copy of the sample catalogue.
func Sample() SampleData {
	return SampleData{
		Authors: []Author{
			{ID: "a-austen", Name: "Jane Austen"},
			{ID: "a-twain", Name: "Mark Twain"},
			{ID: "a-other", Name: "Ann_Other"},
		},
		Books: []Book{
			{ID: "b-pride", Title: "Pride and Prejudice", AuthorID: "a-austen"},
			{ID: "b-emma", Title: "Emma", AuthorID: "a-austen"},
			{ID: "b-sawyer", Title: "The Adventures of Tom Sawyer", AuthorID: "a-twain"},
			{ID: "b-proof", Title: "100% Proof", AuthorID: "a-other"},
		},
		Quotes: []Quote{
			{ID: "q-01", BookID: "b-pride", Text: "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife."},
			{ID: "q-02", BookID: "b-pride", Text: "I declare after all there is no enjoyment like reading!"},
			{ID: "q-03", BookID: "b-emma", Text: "I may have lost my heart, but not my self-control."},
			{ID: "q-04", BookID: "b-emma", Text: "Silly things do cease to be silly if they are done by sensible people in an impudent way."},
			{ID: "q-05", BookID: "b-sawyer", Text: "Work consists of whatever a body is obliged to do."},
			{ID: "q-06", BookID: "b-sawyer", Text: "Tom appeared on the sidewalk with a bucket of whitewash and a long-handled brush."},
			{ID: "q-07", BookID: "b-proof", Text: "Ten percent of nothing is still nothing."},
		},
	}
}

// Seed inserts data in a single transaction. Rows that already exist are left untouched.
func Seed(ctx context.Context, db *gorm.DB, data SampleData) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		insert := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Session(&gorm.Session{})

		if len(data.Authors) > 0 {
			if err := insert.Create(&data.Authors).Error; err != nil {
				return fmt.Errorf("seeding authors: %w", err)
			}
		}

		if len(data.Books) > 0 {
			if err := insert.Create(&data.Books).Error; err != nil {
				return fmt.Errorf("seeding books: %w", err)
			}
		}

		if len(data.Quotes) > 0 {
			if err := insert.Create(&data.Quotes).Error; err != nil {
				return fmt.Errorf("seeding quotes: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("seeding sample data: %w", err)
	}

	return nil
}
