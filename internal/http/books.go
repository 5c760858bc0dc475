package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type BooksController struct {
	creator BookCreator
	authors AuthorLister
}

func NewBooksController(creator BookCreator, authors AuthorLister) *BooksController {
	return &BooksController{creator: creator, authors: authors}
}

// AddBookPage renders the book creation form with the author selection list.
// GET /add_book
func (bc *BooksController) AddBookPage(c *gin.Context) {
	authors, err := bc.authors.GetAllAuthors()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading authors: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "add_book", gin.H{
		"Authors": authors,
	})
}

// AddBook validates the submitted form and creates the book. The referenced
// author must exist; validation and parse failures re-render the form with
// an error message.
// POST /add_book
func (bc *BooksController) AddBook(c *gin.Context) {
	input := catalog.BookInput{
		Title:           c.PostForm("title"),
		PublicationYear: c.PostForm("publication_year"),
		AuthorID:        c.PostForm("author_id"),
		ISBN:            c.PostForm("isbn"),
	}

	_, err := bc.creator.CreateBook(input)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) || errors.Is(err, catalog.ErrParse) {
			bc.renderForm(c, gin.H{"ErrorMessage": err.Error()})
			return
		}
		c.String(http.StatusInternalServerError, "Error creating book: %s", err.Error())
		return
	}

	bc.renderForm(c, gin.H{"SuccessMessage": "Book added successfully!"})
}

func (bc *BooksController) renderForm(c *gin.Context, data gin.H) {
	authors, err := bc.authors.GetAllAuthors()
	if err != nil {
		authors = []entities.Author{}
	}
	data["Authors"] = authors
	c.HTML(http.StatusOK, "add_book", data)
}
