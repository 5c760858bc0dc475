package entities

import "time"

// Author is a catalog author. Authors are created explicitly and never
// updated; an author row is removed when its last book is deleted.
type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"index;size:255" json:"name"`
	BirthDate   time.Time  `json:"birth_date"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"` // nil = living
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
}

func (Author) TableName() string {
	return "authors"
}

// Book is a catalog book. Every book references exactly one author;
// orphan books are not allowed.
type Book struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ISBN            string `gorm:"uniqueIndex;size:20" json:"isbn"`
	Title           string `gorm:"index;size:512" json:"title"`
	PublicationYear int    `json:"publication_year"`
	AuthorID        uint   `gorm:"index" json:"author_id"`
	Author          Author `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
