package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Author is the row model of the authors table.
type Author struct {
	ID   string `gorm:"primaryKey;size:64"`
	Name string `gorm:"size:255;not null"`
}

// TableName pins the table name regardless of naming strategy.
func (Author) TableName() string { return "authors" }

// Book is the row model of the books table.
type Book struct {
	ID       string `gorm:"primaryKey;size:64"`
	Title    string `gorm:"size:255;not null"`
	AuthorID string `gorm:"size:64;not null;index"`
	Author   Author
}

// TableName pins the table name regardless of naming strategy.
func (Book) TableName() string { return "books" }

// Quote is the row model of the quotes table.
type Quote struct {
	ID     string `gorm:"primaryKey;size:64"`
	Text   string `gorm:"type:text;not null"`
	BookID string `gorm:"size:64;not null;index"`
	Book   Book
}

// TableName pins the table name regardless of naming strategy.
func (Quote) TableName() string { return "quotes" }

// Migrate creates or updates the quote tables.
// Production schemas are owned outside this service; this exists for local runs and tests.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&Author{}, &Book{}, &Quote{}); err != nil {
		return fmt.Errorf("migrating quote tables: %w", err)
	}

	return nil
}
