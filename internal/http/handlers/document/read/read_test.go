package read

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/document-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/document-manager/internal/lib/apperrors"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

type DocumentServiceMock struct {
	mock.Mock
}

func (m *DocumentServiceMock) GetByID(ctx context.Context, id string, requester models.Requester) (*models.Document, error) {
	args := m.Called(ctx, id, requester)
	doc, _ := args.Get(0).(*models.Document)
	return doc, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	requester := models.Requester{UID: "owner-uid", Email: "owner@example.com", Role: "user"}
	doc := &models.Document{
		ID:       "doc-1",
		Title:    "Draft",
		Content:  "Body",
		OwnerUID: requester.UID,
	}

	tests := []struct {
		name           string
		mockDoc        *models.Document
		mockErr        error
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "success",
			mockDoc:        doc,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "document not found",
			mockErr:        apperrors.ErrDocumentNotFound,
			wantStatusCode: http.StatusNotFound,
			wantError:      "document not found",
		},
		{
			name:           "access denied",
			mockErr:        apperrors.ErrAccessDenied,
			wantStatusCode: http.StatusForbidden,
			wantError:      "access denied",
		},
		{
			name:           "internal error",
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to read document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(DocumentServiceMock)
			serviceMock.On("GetByID", mock.Anything, "doc-1", requester).
				Return(tt.mockDoc, tt.mockErr).Once()

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/doc-1", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "doc-1")
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
			ctx = context.WithValue(ctx, middlewarectx.Requester, requester)
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}

func TestReadHandler_NoRequester(t *testing.T) {
	handler := New(newNoopLogger(), new(DocumentServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/doc-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "doc-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
