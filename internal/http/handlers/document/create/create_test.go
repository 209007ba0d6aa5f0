package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

func (m *DocumentServiceMock) Create(ctx context.Context, requester models.Requester, req models.DummyDocument) (*models.Document, error) {
	args := m.Called(ctx, requester, req)
	doc, _ := args.Get(0).(*models.Document)
	return doc, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	requester := models.Requester{UID: "owner-uid", Email: "owner@example.com", Role: "user"}
	createdDoc := &models.Document{
		ID:       "doc-1",
		Title:    "Draft",
		Content:  "Body",
		OwnerUID: requester.UID,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		withRequester  bool
		mockDoc        *models.Document
		mockErr        error
		setupMock      bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid create",
			requestBody:    models.DummyDocument{Title: "Draft", Content: "Body"},
			withRequester:  true,
			mockDoc:        createdDoc,
			setupMock:      true,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			withRequester:  true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "validation error - missing title",
			requestBody:    models.DummyDocument{Content: "Body"},
			withRequester:  true,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Title is a required field",
		},
		{
			name:           "no requester in context",
			requestBody:    models.DummyDocument{Title: "Draft", Content: "Body"},
			withRequester:  false,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "unauthorized",
		},
		{
			name:           "service error",
			requestBody:    models.DummyDocument{Title: "Draft", Content: "Body"},
			withRequester:  true,
			mockErr:        errors.New("db error"),
			setupMock:      true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "could not create document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(DocumentServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.setupMock {
				serviceMock.On("Create", mock.Anything, requester,
					models.DummyDocument{Title: "Draft", Content: "Body"}).
					Return(tt.mockDoc, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withRequester {
				ctx = context.WithValue(ctx, middlewarectx.Requester, requester)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "OK", got["status"])
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				doc, ok := data["document"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "doc-1", doc["id"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
