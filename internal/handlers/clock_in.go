package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/middlewares"
	"github.com/crud-app/records-api/internal/models"
	"github.com/crud-app/records-api/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=clock_in.go -destination=clock_in_mock.go -package=handlers

// Clock-in response messages.
const (
	MsgClockInCreated   = "Clock-in successful"
	MsgClockInRetrieved = "Clock-in record retrieved successfully."
	MsgClockInNotFound  = "Clock-in record not found."
	MsgClockInUpdated   = "Clock in record updated successfully."
	MsgClockInNoChanges = "No changes made."
	MsgClockInDeleted   = "Clock-in record deleted successfully"
	MsgClockInFiltered  = "Filtered clock-in record retrieved successfully."
)

type ClockInCreator interface {
	Create(ctx context.Context, in models.ClockInInput) (*models.ClockInDB, error)
}

type ClockInGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.ClockInDB, error)
}

type ClockInUpdater interface {
	Update(ctx context.Context, id primitive.ObjectID, in models.ClockInInput) (*models.ClockInDB, error)
}

type ClockInDeleter interface {
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ClockInFilterer interface {
	Filter(ctx context.Context, f models.ClockInFilter) ([]models.ClockInDB, error)
}

// ClockInRequest represents the JSON body for creating or updating a clock-in record
// swagger:model ClockInRequest
type ClockInRequest struct {
	// Employee email
	// required: true
	// example: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Location
	// required: true
	// example: Warehouse A
	Location *string `json:"location" validate:"required"`
}

func (req ClockInRequest) input() models.ClockInInput {
	return models.ClockInInput{Email: req.Email, Location: *req.Location}
}

// NewCreateClockInHandler returns an HTTP handler that records a clock-in.
// @Summary Clock in
// @Description Records a clock-in; clock_in_time is set by the server.
// @Tags clock-in
// @Accept json
// @Produce json
// @Param request body handlers.ClockInRequest true "Clock-in"
// @Success 200 {object} handlers.Response{data=models.ClockInResponse} "Clock-in successful"
// @Failure 422 {object} handlers.Response "Validation failed."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /clock-in/ [post]
func NewCreateClockInHandler(svc ClockInCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClockInRequest
		if errs := decodeAndValidate(r, &req); errs != nil {
			logger.Log.Warnw("invalid clock-in request", "errors", errs)
			writeValidationErrors(w, errs)
			return
		}

		record, err := svc.Create(r.Context(), req.input())
		if err != nil {
			logger.Log.Errorw("failed to create clock-in record", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			return
		}

		writeMessage(w, http.StatusOK, MsgClockInCreated, models.NewClockInResponse(*record))
	}
}

// NewGetClockInHandler returns an HTTP handler that reads one clock-in record.
// @Summary Get clock-in record
// @Tags clock-in
// @Produce json
// @Param id path string true "Clock-in identifier"
// @Success 200 {object} handlers.Response{data=models.ClockInResponse} "Clock-in record retrieved successfully."
// @Failure 400 {object} handlers.Response "Invalid identifier."
// @Failure 404 {object} handlers.Response "Clock-in record not found."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /clock-in/{id} [get]
func NewGetClockInHandler(svc ClockInGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r)
		if !ok {
			return
		}

		record, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrClockInNotFound):
				writeMessage(w, http.StatusNotFound, MsgClockInNotFound, noData)
			default:
				logger.Log.Errorw("failed to get clock-in record", "request_id", middlewares.RequestIDFromContext(r.Context()), "id", id.Hex(), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgClockInRetrieved, models.NewClockInResponse(*record))
	}
}

// NewUpdateClockInHandler returns an HTTP handler that changes email and location of a clock-in record.
// @Summary Update clock-in record
// @Description Updates email and location; clock_in_time is never modified.
// @Tags clock-in
// @Accept json
// @Produce json
// @Param id path string true "Clock-in identifier"
// @Param request body handlers.ClockInRequest true "Clock-in"
// @Success 200 {object} handlers.Response{data=models.ClockInResponse} "Clock in record updated successfully. / No changes made."
// @Failure 400 {object} handlers.Response "Invalid identifier."
// @Failure 404 {object} handlers.Response "Clock-in record not found."
// @Failure 422 {object} handlers.Response "Validation failed."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /clock-in/{id} [put]
// @Router /click-in/{id} [put]
func NewUpdateClockInHandler(svc ClockInUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r)
		if !ok {
			return
		}

		var req ClockInRequest
		if errs := decodeAndValidate(r, &req); errs != nil {
			logger.Log.Warnw("invalid clock-in request", "errors", errs)
			writeValidationErrors(w, errs)
			return
		}

		record, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoChanges):
				writeMessage(w, http.StatusOK, MsgClockInNoChanges, noData)
			case errors.Is(err, services.ErrClockInNotFound):
				writeMessage(w, http.StatusNotFound, MsgClockInNotFound, noData)
			default:
				logger.Log.Errorw("failed to update clock-in record", "request_id", middlewares.RequestIDFromContext(r.Context()), "id", id.Hex(), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgClockInUpdated, models.NewClockInResponse(*record))
	}
}

// NewDeleteClockInHandler returns an HTTP handler that deletes a clock-in record.
// @Summary Delete clock-in record
// @Tags clock-in
// @Produce json
// @Param id path string true "Clock-in identifier"
// @Success 200 {object} handlers.Response "Clock-in record deleted successfully"
// @Failure 400 {object} handlers.Response "Invalid identifier."
// @Failure 404 {object} handlers.Response "Clock-in record not found."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /clock-in/{id} [delete]
func NewDeleteClockInHandler(svc ClockInDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrClockInNotFound):
				writeMessage(w, http.StatusNotFound, MsgClockInNotFound, nil)
			default:
				logger.Log.Errorw("failed to delete clock-in record", "request_id", middlewares.RequestIDFromContext(r.Context()), "id", id.Hex(), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, nil)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgClockInDeleted, nil)
	}
}

// NewFilterClockInsHandler returns an HTTP handler that lists clock-in records matching optional criteria.
// @Summary Filter clock-in records
// @Tags clock-in
// @Produce json
// @Param email query string false "Exact email"
// @Param location query string false "Exact location"
// @Param clock_in_time query string false "Clocked in strictly after this datetime (ISO-8601)"
// @Success 200 {object} handlers.Response{data=[]models.ClockInResponse} "Filtered clock-in record retrieved successfully."
// @Failure 422 {object} handlers.Response "Validation failed."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /clock-in/filter/ [get]
func NewFilterClockInsHandler(svc ClockInFilterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := newQueryParser(r.URL.Query())
		filter := models.ClockInFilter{
			Email:          q.String("email"),
			Location:       q.String("location"),
			ClockedInAfter: q.Datetime("clock_in_time"),
		}
		if errs := q.Errors(); errs != nil {
			logger.Log.Warnw("invalid clock-in filter", "errors", errs)
			writeValidationErrors(w, errs)
			return
		}

		records, err := svc.Filter(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to filter clock-in records", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			return
		}

		writeMessage(w, http.StatusOK, MsgClockInFiltered, models.NewClockInResponses(records))
	}
}
