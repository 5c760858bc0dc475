package http

import (
	"html/template"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
)

// formatDate renders a catalog date for templates. Handles both required
// dates (time.Time) and the optional date of death (*time.Time, may be nil).
func formatDate(value any) string {
	switch t := value.(type) {
	case time.Time:
		return t.Format(catalog.DateLayout)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(catalog.DateLayout)
	}
	return ""
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Define custom template functions
	funcMap := template.FuncMap{
		"formatDate": formatDate,
	}

	// Load HTML templates with custom functions
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers with appropriate interfaces
	ui := NewUIController(cfg.Catalog)
	authors := NewAuthorsController(cfg.Lifecycle)
	books := NewBooksController(cfg.Lifecycle, cfg.Catalog)
	deletes := NewDeleteController(cfg.Lifecycle)
	health := NewHealthController(cfg.Database, cfg.Version)

	router.GET("/", ui.HomePage)

	router.GET("/add_author", authors.AddAuthorPage)
	router.POST("/add_author", authors.AddAuthor)

	router.GET("/add_book", books.AddBookPage)
	router.POST("/add_book", books.AddBook)

	router.POST("/book/:id/delete", deletes.DeleteBook)

	router.GET("/api/health", health.Status)

	return router
}
