package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		handlerBody   string
		expectedLevel zap.AtomicLevel
	}{
		{
			name:          "OK response",
			handlerStatus: http.StatusOK,
			handlerBody:   "hello",
			expectedLevel: zap.NewAtomicLevelAt(zap.InfoLevel),
		},
		{
			name:          "Not found response",
			handlerStatus: http.StatusNotFound,
			handlerBody:   "missing",
			expectedLevel: zap.NewAtomicLevelAt(zap.InfoLevel),
		},
		{
			name:          "Internal server error",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "error",
			expectedLevel: zap.NewAtomicLevelAt(zap.ErrorLevel),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			log := zap.New(core).Sugar()

			var seenID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(log)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/items/filter/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			body, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(body))

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenID, "handler must see the same request ID")

			entries := logs.All()
			if assert.Len(t, entries, 2) {
				assert.Equal(t, "request", entries[0].Message)
				assert.Equal(t, "response", entries[1].Message)
				assert.Equal(t, tt.expectedLevel.Level(), entries[1].Level)
				assert.Equal(t, reqID, entries[1].ContextMap()["request_id"])
			}
		})
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", RequestIDFromContext(req.Context()))
}
