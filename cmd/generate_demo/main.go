// Command generate_demo creates a demo catalog with sample public domain
// authors and books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/database"
	catalogdb "github.com/mrlokans/library/internal/database/catalog"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Title           string
	PublicationYear string
	ISBN            string
}

type demoAuthor struct {
	Name        string
	BirthDate   string
	DateOfDeath string
	Books       []demoBook
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	// Create database at demo path
	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	// Seed through the same lifecycle service the HTTP layer uses, so the
	// demo data passes the same validation.
	service := catalog.NewService(catalogdb.NewRepository(db.DB))

	for _, cfg := range getDemoAuthors() {
		author, err := service.CreateAuthor(catalog.AuthorInput{
			Name:        cfg.Name,
			BirthDate:   cfg.BirthDate,
			DateOfDeath: cfg.DateOfDeath,
		})
		if err != nil {
			log.Printf("Failed to create author %s: %v", cfg.Name, err)
			continue
		}
		log.Printf("Created author: %s", author.Name)

		for _, b := range cfg.Books {
			book, err := service.CreateBook(catalog.BookInput{
				Title:           b.Title,
				PublicationYear: b.PublicationYear,
				AuthorID:        formatID(author.ID),
				ISBN:            b.ISBN,
			})
			if err != nil {
				log.Printf("Failed to create book %s: %v", b.Title, err)
				continue
			}
			log.Printf("  Created book: %s (%d)", book.Title, book.PublicationYear)
		}
	}

	log.Println("Demo database generated successfully!")
}

func formatID(id uint) string {
	return fmt.Sprintf("%d", id)
}

func getDemoAuthors() []demoAuthor {
	return []demoAuthor{
		{
			Name:        "Jane Austen",
			BirthDate:   "1775-12-16",
			DateOfDeath: "1817-07-18",
			Books: []demoBook{
				{Title: "Pride and Prejudice", PublicationYear: "1813", ISBN: "9780141439518"},
				{Title: "Emma", PublicationYear: "1815", ISBN: "9780141439587"},
				{Title: "Sense and Sensibility", PublicationYear: "1811", ISBN: "9780141439662"},
			},
		},
		{
			Name:        "George Orwell",
			BirthDate:   "1903-06-25",
			DateOfDeath: "1950-01-21",
			Books: []demoBook{
				{Title: "Nineteen Eighty-Four", PublicationYear: "1949", ISBN: "9780451524935"},
				{Title: "Animal Farm", PublicationYear: "1945", ISBN: "9780451526342"},
			},
		},
		{
			Name:      "Haruki Murakami",
			BirthDate: "1949-01-12",
			Books: []demoBook{
				{Title: "Kafka on the Shore", PublicationYear: "2002", ISBN: "9781400079278"},
			},
		},
		{
			Name:        "Mary Shelley",
			BirthDate:   "1797-08-30",
			DateOfDeath: "1851-02-01",
			Books: []demoBook{
				{Title: "Frankenstein", PublicationYear: "1818", ISBN: "9780141439471"},
			},
		},
	}
}
