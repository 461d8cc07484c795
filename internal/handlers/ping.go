package handlers

import (
	"context"
	"net/http"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/middlewares"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

//go:generate mockgen -source=ping.go -destination=ping_mock.go -package=handlers

// Pinger checks that the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// NewPingHandler returns an HTTP handler reporting store health.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.Response "pong"
// @Failure 503 {object} handlers.Response "Database have some issues."
// @Router /ping [get]
func NewPingHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context(), readpref.Primary()); err != nil {
			logger.Log.Errorw("store ping failed", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusServiceUnavailable, MsgStoreFailure, nil)
			return
		}
		writeMessage(w, http.StatusOK, "pong", nil)
	}
}
