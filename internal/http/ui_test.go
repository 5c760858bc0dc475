package http

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	catalogdb "github.com/mrlokans/library/internal/database/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type mockBookLister struct {
	received catalogdb.ListOptions
	books    []entities.Book
	err      error
}

func (m *mockBookLister) ListBooks(opts catalogdb.ListOptions) ([]entities.Book, error) {
	m.received = opts
	return m.books, m.err
}

// setupUIRouter creates a gin router with a minimal HTML template for testing
func setupUIRouter(controller *UIController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	tmpl := template.Must(template.New("home").Parse(
		`{{ if .Message }}MSG: {{ .Message }};{{ end }}TOTAL: {{ .TotalBooks }};{{ range .Books }}[{{ .Title }} / {{ .Author.Name }}]{{ end }}`,
	))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", controller.HomePage)
	return router
}

func TestHomePage_RendersBooks(t *testing.T) {
	lister := &mockBookLister{
		books: []entities.Book{
			{ID: 1, Title: "Emma", Author: entities.Author{Name: "Jane Austen"}},
			{ID: 2, Title: "Animal Farm", Author: entities.Author{Name: "George Orwell"}},
		},
	}
	router := setupUIRouter(NewUIController(lister))

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TOTAL: 2")
	assert.Contains(t, w.Body.String(), "[Emma / Jane Austen]")
	assert.Contains(t, w.Body.String(), "[Animal Farm / George Orwell]")
}

func TestHomePage_PassesQueryParameters(t *testing.T) {
	lister := &mockBookLister{}
	router := setupUIRouter(NewUIController(lister))

	req, _ := http.NewRequest("GET", "/?q=+Orwell+&sort=author&order=desc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Orwell", lister.received.Query)
	assert.Equal(t, "author", lister.received.SortBy)
	assert.Equal(t, "desc", lister.received.Order)
}

func TestHomePage_DefaultsToTitleAscending(t *testing.T) {
	lister := &mockBookLister{}
	router := setupUIRouter(NewUIController(lister))

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "title", lister.received.SortBy)
	assert.Equal(t, "asc", lister.received.Order)
}

func TestHomePage_ShowsStatusMessage(t *testing.T) {
	lister := &mockBookLister{}
	router := setupUIRouter(NewUIController(lister))

	req, _ := http.NewRequest("GET", "/?msg=Deleted+%22Emma%22+successfully.", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Deleted &#34;Emma&#34; successfully.`)
}

func TestHomePage_StoreError(t *testing.T) {
	lister := &mockBookLister{err: errors.New("disk full")}
	router := setupUIRouter(NewUIController(lister))

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error loading books")
}
