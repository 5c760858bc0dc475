// Package catalog provides database operations for author and book records.
//
// This package implements the store interfaces defined in internal/catalog
// and internal/http.
//
// # Usage
//
//	repo := catalog.NewRepository(db)
//	books, err := repo.ListBooks(catalog.ListOptions{Query: "orwell", SortBy: "author"})
package catalog

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

// SortBy values accepted by ListOptions. Any other value falls back to
// sorting by book title.
const (
	SortByTitle  = "title"
	SortByAuthor = "author"
)

// ListOptions controls filtering and ordering of the book listing.
type ListOptions struct {
	Query  string // case-insensitive substring match on book title or author name
	SortBy string // "title" (default) or "author"
	Order  string // "asc" (default) or "desc"
}

// Repository handles all catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks returns books joined with their authors, optionally filtered by a
// case-insensitive substring of the book title or author name, ordered by the
// requested sort key. Authors are fetched eagerly in a single extra query
// rather than one query per book.
func (r *Repository) ListBooks(opts ListOptions) ([]entities.Book, error) {
	query := r.db.Model(&entities.Book{}).
		Select("books.*").
		Joins("JOIN authors ON authors.id = books.author_id").
		Preload("Author")

	if q := strings.TrimSpace(opts.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(books.title) LIKE ? OR LOWER(authors.name) LIKE ?",
			pattern, pattern,
		)
	}

	column := "books.title"
	if opts.SortBy == SortByAuthor {
		column = "authors.name"
	}
	direction := "ASC"
	if opts.Order == "desc" {
		direction = "DESC"
	}

	// Secondary ordering by id keeps ties stable in insertion order.
	query = query.Order(column + " " + direction).Order("books.id ASC")

	var books []entities.Book
	err := query.Find(&books).Error
	return books, err
}

// GetAllAuthors returns all authors ordered by name.
func (r *Repository) GetAllAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("name ASC").Find(&authors).Error
	return authors, err
}

// GetAuthorByID retrieves an author by ID. Returns (nil, nil) when the
// author does not exist.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetBookByID retrieves a book with its author preloaded. Returns (nil, nil)
// when the book does not exist.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateAuthor inserts a new author and commits immediately.
func (r *Repository) CreateAuthor(author *entities.Author) error {
	return r.db.Create(author).Error
}

// CreateBook inserts a new book and commits immediately.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// CountBooksByAuthor counts books referencing the given author, excluding
// excludeBookID when non-zero.
func (r *Repository) CountBooksByAuthor(authorID, excludeBookID uint) (int64, error) {
	var count int64
	query := r.db.Model(&entities.Book{}).Where("author_id = ?", authorID)
	if excludeBookID != 0 {
		query = query.Where("id <> ?", excludeBookID)
	}
	err := query.Count(&count).Error
	return count, err
}

// DeleteBookCascade removes the book with the given id and, when it was the
// author's last remaining book, the author row as well. Both deletions run in
// one transaction: either both rows go or neither does.
//
// Returns the deleted book (nil when no such book existed) and whether the
// author was removed with it. A missing book is not an error; a concurrent
// second delete of the same id simply observes not-found.
func (r *Repository) DeleteBookCascade(id uint) (*entities.Book, bool, error) {
	book, err := r.GetBookByID(id)
	if err != nil {
		return nil, false, err
	}
	if book == nil {
		return nil, false, nil
	}

	authorDeleted := false
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var remaining int64
		if err := tx.Model(&entities.Book{}).
			Where("author_id = ? AND id <> ?", book.AuthorID, book.ID).
			Count(&remaining).Error; err != nil {
			return err
		}

		if err := tx.Delete(&entities.Book{}, book.ID).Error; err != nil {
			return err
		}

		// Deleting an already-deleted row affects zero rows and is not an
		// error, so a racing cascade stays a no-op.
		if remaining == 0 {
			if err := tx.Delete(&entities.Author{}, book.AuthorID).Error; err != nil {
				return err
			}
			authorDeleted = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return book, authorDeleted, nil
}
