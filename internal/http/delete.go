package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DeleteController struct {
	deleter BookDeleter
}

func NewDeleteController(deleter BookDeleter) *DeleteController {
	return &DeleteController{deleter: deleter}
}

// DeleteBook removes a book and redirects back to the listing with a status
// message. Deleting the author's last book removes the author too; deleting
// a book that is already gone reports not-found and changes nothing.
// POST /book/:id/delete
func (dc *DeleteController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := dc.deleter.DeleteBook(id)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error deleting book: %s", err.Error())
		return
	}

	redirectHome(c, result.Message)
}
