// Package catalog implements the author/book lifecycle: input validation,
// date and integer parsing, and the cascade-delete rule that removes an
// author together with their last book.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/library/internal/entities"
)

// DateLayout is the expected format for author dates on forms.
const DateLayout = "2006-01-02"

// Store defines the catalog database operations the service depends on.
// Implemented by internal/database/catalog.Repository.
type Store interface {
	CreateAuthor(author *entities.Author) error
	CreateBook(book *entities.Book) error
	GetAuthorByID(id uint) (*entities.Author, error)
	DeleteBookCascade(id uint) (deleted *entities.Book, authorDeleted bool, err error)
}

// AuthorInput carries raw form values for author creation.
type AuthorInput struct {
	Name        string
	BirthDate   string // required, YYYY-MM-DD
	DateOfDeath string // optional, YYYY-MM-DD
}

// BookInput carries raw form values for book creation.
type BookInput struct {
	Title           string
	PublicationYear string
	AuthorID        string
	ISBN            string
}

// DeleteResult describes the outcome of a book deletion.
type DeleteResult struct {
	Found         bool
	Title         string
	AuthorRemoved bool
	Message       string
}

// Service enforces create-validation and the cascade-delete invariant.
type Service struct {
	store Store
}

// NewService creates a lifecycle service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateAuthor validates and parses the input, then inserts a new author.
// Missing name or birth date yields ErrValidation; a malformed date yields
// ErrParse. The row is committed immediately and visible to subsequent reads.
func (s *Service) CreateAuthor(in AuthorInput) (*entities.Author, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.BirthDate) == "" {
		return nil, fmt.Errorf("%w: name and birth date are required", ErrValidation)
	}

	birthDate, err := parseDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	var dateOfDeath *time.Time
	if strings.TrimSpace(in.DateOfDeath) != "" {
		parsed, err := parseDate(in.DateOfDeath)
		if err != nil {
			return nil, err
		}
		dateOfDeath = &parsed
	}

	author := &entities.Author{
		Name:        name,
		BirthDate:   birthDate,
		DateOfDeath: dateOfDeath,
	}
	if err := s.store.CreateAuthor(author); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

// CreateBook validates and parses the input, checks that the referenced
// author exists, then inserts a new book. Missing fields yield ErrValidation;
// non-numeric year or author id yields ErrParse.
func (s *Service) CreateBook(in BookInput) (*entities.Book, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || strings.TrimSpace(in.PublicationYear) == "" ||
		strings.TrimSpace(in.AuthorID) == "" || strings.TrimSpace(in.ISBN) == "" {
		return nil, fmt.Errorf("%w: title, publication year, ISBN and author id are required", ErrValidation)
	}

	year, err := strconv.Atoi(strings.TrimSpace(in.PublicationYear))
	if err != nil {
		return nil, fmt.Errorf("%w: publication year must be a number", ErrParse)
	}

	authorID, err := strconv.ParseUint(strings.TrimSpace(in.AuthorID), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: author id must be a number", ErrParse)
	}

	// The sqlite driver does not enforce foreign keys unless asked, so the
	// no-orphan-books invariant is checked here before the insert.
	author, err := s.store.GetAuthorByID(uint(authorID))
	if err != nil {
		return nil, fmt.Errorf("failed to look up author: %w", err)
	}
	if author == nil {
		return nil, fmt.Errorf("%w: author %d does not exist", ErrValidation, authorID)
	}

	book := &entities.Book{
		Title:           title,
		ISBN:            strings.TrimSpace(in.ISBN),
		PublicationYear: year,
		AuthorID:        uint(authorID),
	}
	if err := s.store.CreateBook(book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// DeleteBook removes the book with the given id. When the book was its
// author's last one, the author is removed in the same transaction. A
// missing book is a benign outcome, not an error: the result reports
// not-found and nothing changes.
func (s *Service) DeleteBook(id uint) (DeleteResult, error) {
	book, authorDeleted, err := s.store.DeleteBookCascade(id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete book: %w", err)
	}
	if book == nil {
		return DeleteResult{
			Found:   false,
			Message: "Book not found (already deleted).",
		}, nil
	}
	return DeleteResult{
		Found:         true,
		Title:         book.Title,
		AuthorRemoved: authorDeleted,
		Message:       fmt.Sprintf("Deleted %q successfully.", book.Title),
	}, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid date (expected YYYY-MM-DD)", ErrParse, value)
	}
	return parsed, nil
}
