package http

import (
	"github.com/mrlokans/library/internal/catalog"
	catalogdb "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// This file consolidates the store and service interfaces used by HTTP
// controllers. Each controller defines the methods it actually needs;
// the composites below are what the router wires in.

// CatalogReader combines the read operations backed by the catalog
// repository. Implemented by database/catalog.Repository.
type CatalogReader interface {
	BookLister
	AuthorLister
}

// BookLister produces the filtered, sorted book listing for the home page.
type BookLister interface {
	ListBooks(opts catalogdb.ListOptions) ([]entities.Book, error)
}

// AuthorLister provides the author list for the add-book form.
type AuthorLister interface {
	GetAllAuthors() ([]entities.Author, error)
}

// Lifecycle combines the write operations backed by the lifecycle service.
// Implemented by catalog.Service.
type Lifecycle interface {
	AuthorCreator
	BookCreator
	BookDeleter
}

// AuthorCreator validates and persists new authors.
type AuthorCreator interface {
	CreateAuthor(in catalog.AuthorInput) (*entities.Author, error)
}

// BookCreator validates and persists new books.
type BookCreator interface {
	CreateBook(in catalog.BookInput) (*entities.Book, error)
}

// BookDeleter removes books, cascading to the author when the last book goes.
type BookDeleter interface {
	DeleteBook(id uint) (catalog.DeleteResult, error)
}
