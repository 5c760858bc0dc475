package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalogdb "github.com/mrlokans/library/internal/database/catalog"
)

type UIController struct {
	lister BookLister
}

func NewUIController(lister BookLister) *UIController {
	return &UIController{
		lister: lister,
	}
}

// HomePage renders the book listing with optional search and sorting.
// Query parameters: q (substring filter), sort (title|author),
// order (asc|desc), msg (status message from a previous action).
func (controller *UIController) HomePage(c *gin.Context) {
	sortOption := c.DefaultQuery("sort", "title")
	orderOption := c.DefaultQuery("order", "asc")
	searchQuery := strings.TrimSpace(c.Query("q"))
	message := c.Query("msg")

	books, err := controller.lister.ListBooks(catalogdb.ListOptions{
		Query:  searchQuery,
		SortBy: sortOption,
		Order:  orderOption,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Error loading books: %s", err.Error())
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"Books":        books,
		"TotalBooks":   len(books),
		"CurrentSort":  sortOption,
		"CurrentOrder": orderOption,
		"SearchQuery":  searchQuery,
		"Message":      message,
	})
}
