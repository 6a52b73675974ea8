// handlers_upload_test.go - Tests for upload handlers
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docqanda/backend/internal/logging"
	"github.com/docqanda/backend/internal/models"
	"github.com/docqanda/backend/internal/storage"
	"github.com/docqanda/backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestUploadHandler_HandleUpload(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		content    []byte
		noFile     bool
		maxBytes   int64
		saveErr    error
		wantStatus int
		wantErr    bool
		errCode    string
	}{
		{
			name:       "valid text upload",
			fileName:   "notes.txt",
			content:    []byte("hello world"),
			maxBytes:   100_000_000,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty file is accepted",
			fileName:   "empty.txt",
			content:    []byte{},
			maxBytes:   100_000_000,
			wantStatus: http.StatusOK,
		},
		{
			name:       "file at limit",
			fileName:   "exact.bin",
			content:    []byte("12345"),
			maxBytes:   5,
			wantStatus: http.StatusOK,
		},
		{
			name:       "file over limit",
			fileName:   "big.bin",
			content:    []byte("123456"),
			maxBytes:   5,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantErr:    true,
			errCode:    "PAYLOAD_TOO_LARGE",
		},
		{
			name:       "no file part",
			noFile:     true,
			maxBytes:   100_000_000,
			wantStatus: http.StatusBadRequest,
			wantErr:    true,
			errCode:    "BAD_REQUEST",
		},
		{
			name:       "storage failure",
			fileName:   "notes.txt",
			content:    []byte("x"),
			maxBytes:   100_000_000,
			saveErr:    errors.New("disk full"),
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
			errCode:    "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			store := testutil.NewMockStorage()
			store.SaveErr = tt.saveErr
			handler := NewUploadHandler(store, tt.maxBytes, logging.Discard())

			e := echo.New()
			var req *http.Request
			if tt.noFile {
				req = httptest.NewRequest(http.MethodPost, "/upload/", strings.NewReader(""))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			} else {
				body, contentType := multipartBody(t, tt.fileName, tt.content)
				req = httptest.NewRequest(http.MethodPost, "/upload/", body)
				req.Header.Set(echo.HeaderContentType, contentType)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			// Execute
			err := handler.HandleUpload(c)

			// Assert
			if tt.wantErr {
				require.Error(t, err)
				apiErr, ok := err.(*APIError)
				require.True(t, ok, "expected APIError, got %T", err)
				assert.Equal(t, tt.wantStatus, apiErr.Status)
				assert.Equal(t, tt.errCode, apiErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var response models.UploadResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.fileName, response.FileName)
			assert.Equal(t, "File uploaded successfully!", response.Message)

			data, ok := store.GetFileData(tt.fileName)
			require.True(t, ok)
			assert.Equal(t, tt.content, data)
		})
	}
}

func TestUploadHandler_OverwritesSameName(t *testing.T) {
	store := testutil.NewMockStorage()
	handler := NewUploadHandler(store, 100_000_000, logging.Discard())
	e := echo.New()

	for _, content := range []string{"hello", "world"} {
		body, contentType := multipartBody(t, "a.txt", []byte(content))
		req := httptest.NewRequest(http.MethodPost, "/upload/", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.HandleUpload(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	data, _ := store.GetFileData("a.txt")
	assert.Equal(t, "world", string(data))
	assert.Equal(t, 1, store.GetFileCount())
}

func TestUploadHandler_RestrictedNames(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), true)
	require.NoError(t, err)
	handler := NewUploadHandler(store, 100_000_000, logging.Discard())

	body, contentType := multipartBody(t, "..", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	err = handler.HandleUpload(echo.New().NewContext(req, rec))

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected APIError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUploadHandler_HandleListDocuments(t *testing.T) {
	tests := []struct {
		name       string
		files      []string
		query      string
		accept     string
		wantCount  int
		wantStatus int
		wantErr    bool
	}{
		{name: "empty storage", wantCount: 0, wantStatus: http.StatusOK},
		{name: "all documents", files: []string{"a.txt", "b.xlsx", "c.md"}, wantCount: 3, wantStatus: http.StatusOK},
		{name: "limited", files: []string{"a.txt", "b.xlsx", "c.md"}, query: "?limit=2", wantCount: 2, wantStatus: http.StatusOK},
		{name: "msgpack", files: []string{"a.txt"}, accept: MIMEMsgpack, wantCount: 1, wantStatus: http.StatusOK},
		{name: "invalid limit", query: "?limit=abc", wantStatus: http.StatusBadRequest, wantErr: true},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusBadRequest, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockStorage()
			for _, name := range tt.files {
				store.AddFile(name, []byte("content"))
			}
			handler := NewUploadHandler(store, 100_000_000, logging.Discard())

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/documents/"+tt.query, nil)
			if tt.accept != "" {
				req.Header.Set(echo.HeaderAccept, tt.accept)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := handler.HandleListDocuments(c)

			if tt.wantErr {
				apiErr, ok := err.(*APIError)
				require.True(t, ok, "expected APIError, got %T", err)
				assert.Equal(t, tt.wantStatus, apiErr.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var docs []models.DocumentInfo
			if tt.accept == MIMEMsgpack {
				assert.Equal(t, MIMEMsgpack, rec.Header().Get(echo.HeaderContentType))
				require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &docs))
			} else {
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
			}
			assert.Len(t, docs, tt.wantCount)
		})
	}
}
