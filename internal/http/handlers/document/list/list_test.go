package list

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/document-manager/internal/http/middlewarectx"
	"github.com/magabrotheeeer/document-manager/internal/models"
)

type DocumentServiceMock struct {
	mock.Mock
}

func (m *DocumentServiceMock) List(ctx context.Context, requester models.Requester, limit, offset int) ([]*models.Document, error) {
	args := m.Called(ctx, requester, limit, offset)
	docs, _ := args.Get(0).([]*models.Document)
	return docs, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler_ServeHTTP(t *testing.T) {
	requester := models.Requester{UID: "owner-uid", Email: "owner@example.com", Role: "user"}
	docs := []*models.Document{
		{ID: "doc-2", Title: "Newer", OwnerUID: requester.UID},
		{ID: "doc-1", Title: "Older", OwnerUID: requester.UID},
	}

	tests := []struct {
		name       string
		url        string
		wantLimit  int
		wantOffset int
	}{
		{
			name:       "defaults applied",
			url:        "/api/v1/documents",
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "explicit pagination",
			url:        "/api/v1/documents?limit=5&offset=10",
			wantLimit:  5,
			wantOffset: 10,
		},
		{
			name:       "invalid pagination falls back to defaults",
			url:        "/api/v1/documents?limit=abc&offset=-1",
			wantLimit:  10,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(DocumentServiceMock)
			serviceMock.On("List", mock.Anything, requester, tt.wantLimit, tt.wantOffset).
				Return(docs, nil).Once()

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			ctx = context.WithValue(ctx, middlewarectx.Requester, requester)
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)
			assert.Equal(t, "OK", got["status"])

			data, ok := got["data"].(map[string]any)
			assert.True(t, ok)
			assert.Equal(t, float64(2), data["list_count"])

			serviceMock.AssertExpectations(t)
		})
	}
}

func TestListHandler_NoRequester(t *testing.T) {
	handler := New(newNoopLogger(), new(DocumentServiceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
