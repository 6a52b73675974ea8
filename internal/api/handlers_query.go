// handlers_query.go - Document question handlers
package api

import (
	"net/http"

	"github.com/docqanda/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// QueryHandlerImpl implements the QueryHandler interface
type QueryHandlerImpl struct {
	querier Querier
}

// NewQueryHandler creates a new query handler instance
func NewQueryHandler(querier Querier) QueryHandler {
	return &QueryHandlerImpl{
		querier: querier,
	}
}

// HandleQuery answers a question about a previously uploaded document.
// The completion call runs under the request context.
func (h *QueryHandlerImpl) HandleQuery(c echo.Context) error {
	var req models.QueryRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	answer, err := h.querier.Query(c.Request().Context(), *req.FileName, *req.Question)
	if err != nil {
		return queryError(err)
	}

	return respond(c, http.StatusOK, models.QueryResponse{Answer: answer})
}
