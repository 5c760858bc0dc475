package http

import (
	"github.com/mrlokans/library/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database  *database.Database
	Catalog   CatalogReader
	Lifecycle Lifecycle

	// UI paths
	TemplatesPath string
	StaticPath    string

	// Build info for the health endpoint
	Version string
}
