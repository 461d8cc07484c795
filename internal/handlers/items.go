package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/middlewares"
	"github.com/crud-app/records-api/internal/models"
	"github.com/crud-app/records-api/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=items.go -destination=items_mock.go -package=handlers

// Item response messages.
const (
	MsgItemCreated       = "Successfully created new item"
	MsgItemAlreadyExists = "Item already exists."
	MsgItemShared        = "Successfully shared data."
	MsgRecordNotFound    = "Record not found."
	MsgItemUpdated       = "Successfully updated item"
	MsgItemNoChanges     = "No Changes made."
	MsgItemNotFound      = "Item not found."
	MsgItemDeleted       = "Successfully deleted item"
	MsgItemsFiltered     = "Filtered items retrieved successfully"
)

// ItemCreator defines the interface that the service must implement.
type ItemCreator interface {
	Create(ctx context.Context, in models.ItemInput) (*models.ItemDB, error)
}

type ItemGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.ItemDB, error)
}

type ItemUpdater interface {
	Update(ctx context.Context, id primitive.ObjectID, in models.ItemInput) (*models.ItemDB, error)
}

type ItemDeleter interface {
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ItemFilterer returns matching items and the per-email counts of the whole collection.
type ItemFilterer interface {
	Filter(ctx context.Context, f models.ItemFilter) ([]models.ItemDB, []models.EmailCount, error)
}

// ItemRequest represents the JSON body for creating or replacing an item
// swagger:model ItemRequest
type ItemRequest struct {
	// Owner name
	// required: true
	// example: John Doe
	Name *string `json:"name" validate:"required"`

	// Owner email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Item name
	// required: true
	// example: Milk
	ItemName *string `json:"item_name" validate:"required"`

	// Quantity, zero or more
	// required: true
	// example: 3
	Quantity *int `json:"quantity" validate:"required,min=0"`

	// Expiry date, YYYY-MM-DD
	// required: true
	// example: 2026-12-31
	ExpiryDate string `json:"expiry_date" validate:"required,datetime=2006-01-02"`
}

// input converts a validated request.
func (req ItemRequest) input() models.ItemInput {
	expiry, _ := time.Parse(models.DateLayout, req.ExpiryDate)
	return models.ItemInput{
		Name:       *req.Name,
		Email:      req.Email,
		ItemName:   *req.ItemName,
		Quantity:   *req.Quantity,
		ExpiryDate: expiry,
	}
}

// NewCreateItemHandler returns an HTTP handler that creates an inventory item.
// @Summary Create item
// @Description Creates an item unless one with the same name, email and item name exists. insert_date is set by the server.
// @Tags items
// @Accept json
// @Produce json
// @Param request body handlers.ItemRequest true "Item"
// @Success 200 {object} handlers.Response{data=models.ItemResponse} "Successfully created new item"
// @Failure 400 {object} handlers.Response "Item already exists."
// @Failure 422 {object} handlers.Response "Validation failed."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /create_item/ [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if errs := decodeAndValidate(r, &req); errs != nil {
			logger.Log.Warnw("invalid item request", "errors", errs)
			writeValidationErrors(w, errs)
			return
		}

		item, err := svc.Create(r.Context(), req.input())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemAlreadyExists):
				writeMessage(w, http.StatusBadRequest, MsgItemAlreadyExists, noData)
			default:
				logger.Log.Errorw("failed to create item", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgItemCreated, models.NewItemResponse(*item))
	}
}

// NewGetItemHandler returns an HTTP handler that reads one item.
// @Summary Get item
// @Tags items
// @Produce json
// @Param id path string true "Item identifier"
// @Success 200 {object} handlers.Response{data=models.ItemResponse} "Successfully shared data."
// @Failure 400 {object} handlers.Response "Invalid identifier."
// @Failure 404 {object} handlers.Response "Record not found."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /get_item/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r)
		if !ok {
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				writeMessage(w, http.StatusNotFound, MsgRecordNotFound, noData)
			default:
				logger.Log.Errorw("failed to get item", "request_id", middlewares.RequestIDFromContext(r.Context()), "id", id.Hex(), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgItemShared, models.NewItemResponse(*item))
	}
}

// NewUpdateItemHandler returns an HTTP handler that replaces an item's fields.
// @Summary Update item
// @Description Replaces every field except the identifier and insert_date.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item identifier"
// @Param request body handlers.ItemRequest true "Item"
// @Success 200 {object} handlers.Response{data=models.ItemResponse} "Successfully updated item / No Changes made."
// @Failure 400 {object} handlers.Response "Invalid identifier. / Item already exists."
// @Failure 404 {object} handlers.Response "Item not found."
// @Failure 422 {object} handlers.Response "Validation failed."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /update_item/{id} [put]
func NewUpdateItemHandler(svc ItemUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r)
		if !ok {
			return
		}

		var req ItemRequest
		if errs := decodeAndValidate(r, &req); errs != nil {
			logger.Log.Warnw("invalid item request", "errors", errs)
			writeValidationErrors(w, errs)
			return
		}

		item, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoChanges):
				writeMessage(w, http.StatusOK, MsgItemNoChanges, noData)
			case errors.Is(err, services.ErrItemNotFound):
				writeMessage(w, http.StatusNotFound, MsgItemNotFound, nil)
			case errors.Is(err, services.ErrItemAlreadyExists):
				writeMessage(w, http.StatusBadRequest, MsgItemAlreadyExists, noData)
			default:
				logger.Log.Errorw("failed to update item", "request_id", middlewares.RequestIDFromContext(r.Context()), "id", id.Hex(), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgItemUpdated, models.NewItemResponse(*item))
	}
}

// NewDeleteItemHandler returns an HTTP handler that deletes an item.
// @Summary Delete item
// @Tags items
// @Produce json
// @Param id path string true "Item identifier"
// @Success 200 {object} handlers.Response "Successfully deleted item"
// @Failure 400 {object} handlers.Response "Invalid identifier."
// @Failure 404 {object} handlers.Response "Item not found."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /delete_item/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseObjectID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				writeMessage(w, http.StatusNotFound, MsgItemNotFound, nil)
			default:
				logger.Log.Errorw("failed to delete item", "request_id", middlewares.RequestIDFromContext(r.Context()), "id", id.Hex(), "error", err)
				writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, nil)
			}
			return
		}

		writeMessage(w, http.StatusOK, MsgItemDeleted, nil)
	}
}

// NewFilterItemsHandler returns an HTTP handler that lists items matching optional criteria.
// @Summary Filter items
// @Description Lists matching items. email_counts always covers the whole collection.
// @Tags items
// @Produce json
// @Param email query string false "Exact owner email"
// @Param expiry_date query string false "Expiry strictly after this date (YYYY-MM-DD)"
// @Param insert_date query string false "Inserted strictly after this datetime (ISO-8601)"
// @Param quantity query int false "Minimum quantity, inclusive"
// @Success 200 {object} handlers.Response{data=models.ItemsFilterResult} "Filtered items retrieved successfully"
// @Failure 422 {object} handlers.Response "Validation failed."
// @Failure 500 {object} handlers.Response "Database have some issues."
// @Router /items/filter/ [get]
func NewFilterItemsHandler(svc ItemFilterer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := newQueryParser(r.URL.Query())
		filter := models.ItemFilter{
			Email:         q.String("email"),
			ExpiryAfter:   q.Date("expiry_date"),
			InsertedAfter: q.Datetime("insert_date"),
			MinQuantity:   q.NonNegativeInt("quantity"),
		}
		if errs := q.Errors(); errs != nil {
			logger.Log.Warnw("invalid item filter", "errors", errs)
			writeValidationErrors(w, errs)
			return
		}

		items, counts, err := svc.Filter(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to filter items", "request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusInternalServerError, MsgStoreFailure, noData)
			return
		}
		if counts == nil {
			counts = []models.EmailCount{}
		}

		writeMessage(w, http.StatusOK, MsgItemsFiltered, models.ItemsFilterResult{
			FilteredItems: models.NewItemResponses(items),
			EmailCounts:   counts,
		})
	}
}
