// handlers_upload.go - Document upload and listing handlers
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/docqanda/backend/internal/models"
	"github.com/docqanda/backend/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/phuslu/log"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// UploadHandlerImpl implements the UploadHandler interface
type UploadHandlerImpl struct {
	store          storage.Store
	maxUploadBytes int64
	logger         *log.Logger
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(store storage.Store, maxUploadBytes int64, logger *log.Logger) UploadHandler {
	return &UploadHandlerImpl{
		store:          store,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// HandleUpload accepts a multipart file and stores it under its own file name.
// An existing document with the same name is overwritten.
func (h *UploadHandlerImpl) HandleUpload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return NewBadRequestError("no file provided", err)
	}

	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return NewPayloadTooLargeError(h.maxUploadBytes)
	}

	src, err := file.Open()
	if err != nil {
		return NewInternalError("failed to open uploaded file", err)
	}
	defer src.Close()

	info, err := h.store.Save(file.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidName) {
			return NewBadRequestError("invalid file name", err)
		}
		return NewInternalError("failed to save file", err)
	}

	h.logger.Info().
		Str("file_name", info.FileName).
		Int64("size", info.Size).
		Msg("document stored")

	return respond(c, http.StatusOK, models.UploadResponse{
		FileName: info.FileName,
		Message:  "File uploaded successfully!",
	})
}

// HandleListDocuments returns the most recently stored documents
func (h *UploadHandlerImpl) HandleListDocuments(c echo.Context) error {
	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return NewValidationError("limit")
		}
		limit = min(n, maxListLimit)
	}

	docs, err := h.store.List(limit)
	if err != nil {
		return NewInternalError("failed to list documents", err)
	}

	return respond(c, http.StatusOK, docs)
}
