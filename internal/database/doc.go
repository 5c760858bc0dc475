// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized as a connection wrapper plus a
// domain-specific sub-package:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	└── catalog/         # Author and book storage operations
//
// # Using the catalog repository
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./data/library.sqlite")
//
//	// Create the catalog repository
//	repo := catalog.NewRepository(db.DB)
//
//	// Use it
//	books, err := repo.ListBooks(catalog.ListOptions{Query: "orwell"})
package database
