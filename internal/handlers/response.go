package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common response messages.
const (
	MsgStoreFailure      = "Database have some issues."
	MsgInvalidIdentifier = "Invalid identifier."
	MsgValidationFailed  = "Validation failed."
)

// Response is the envelope of every endpoint
// swagger:model Response
type Response struct {
	// Outcome message
	// example: Successfully shared data.
	Message string `json:"Message"`

	// Payload. An empty array when there is nothing to return; omitted by delete endpoints.
	Data any `json:"data,omitempty"`

	// Validation failures, present on 422 only
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError describes one rejected input field
// swagger:model ValidationError
type ValidationError struct {
	// Field name as sent by the client
	// example: email
	Field string `json:"field"`

	// What is wrong with the value
	// example: must be a valid email address
	Description string `json:"description"`
}

// noData renders as "data": [].
var noData = []any{}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string, data any) {
	writeJSON(w, status, Response{Message: msg, Data: data})
}

func writeValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, Response{
		Message: MsgValidationFailed,
		Data:    noData,
		Errors:  errs,
	})
}

// decodeAndValidate reads a JSON body into dst and runs struct validation on it.
// It returns nil when dst is valid, otherwise the list of field errors.
func decodeAndValidate(r *http.Request, dst any) []ValidationError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return []ValidationError{{Field: typeErr.Field, Description: describeType(typeErr.Type)}}
		}
		return []ValidationError{{Field: "body", Description: "must be a valid JSON object"}}
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "body", Description: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Description: describe(fe)})
	}
	return out
}

func describeType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has an invalid type"
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}

// parseObjectID extracts the {id} path parameter. On failure it writes a 400 response and returns false.
func parseObjectID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		logger.Log.Warnw("invalid identifier", "id", raw, "error", err)
		writeMessage(w, http.StatusBadRequest, MsgInvalidIdentifier, noData)
		return primitive.NilObjectID, false
	}
	return id, true
}
