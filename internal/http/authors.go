package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
)

type AuthorsController struct {
	creator AuthorCreator
}

func NewAuthorsController(creator AuthorCreator) *AuthorsController {
	return &AuthorsController{creator: creator}
}

// AddAuthorPage renders the empty author creation form.
// GET /add_author
func (ac *AuthorsController) AddAuthorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_author", gin.H{})
}

// AddAuthor validates the submitted form and creates the author.
// Validation and parse failures re-render the form with an error message;
// the request is not applied.
// POST /add_author
func (ac *AuthorsController) AddAuthor(c *gin.Context) {
	input := catalog.AuthorInput{
		Name:        c.PostForm("name"),
		BirthDate:   c.PostForm("birth_date"),
		DateOfDeath: c.PostForm("date_of_death"),
	}

	_, err := ac.creator.CreateAuthor(input)
	if err != nil {
		if errors.Is(err, catalog.ErrValidation) || errors.Is(err, catalog.ErrParse) {
			c.HTML(http.StatusOK, "add_author", gin.H{
				"ErrorMessage": err.Error(),
			})
			return
		}
		c.String(http.StatusInternalServerError, "Error creating author: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "add_author", gin.H{
		"SuccessMessage": "Author added successfully!",
	})
}
