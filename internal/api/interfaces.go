// interfaces.go - Handler interface definitions for clean separation of concerns
package api

import (
	"context"

	"github.com/labstack/echo/v4"
)

// UploadHandler handles document upload and listing
type UploadHandler interface {
	HandleUpload(c echo.Context) error
	HandleListDocuments(c echo.Context) error
}

// QueryHandler handles questions about stored documents
type QueryHandler interface {
	HandleQuery(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// Querier answers a question from a stored document.
// This allows mocking in tests
type Querier interface {
	Query(ctx context.Context, fileName, question string) (string, error)
}
