package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crud-app/records-api/internal/models"
	"github.com/crud-app/records-api/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type envelope struct {
	Message string            `json:"Message"`
	Data    json.RawMessage   `json:"data"`
	Errors  []ValidationError `json:"errors"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// withID attaches the {id} route parameter the way chi does.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	if s, ok := v.(string); ok {
		return bytes.NewReader([]byte(s))
	}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func validItemBody() map[string]any {
	return map[string]any{
		"name":        "John",
		"email":       "john@example.com",
		"item_name":   "Milk",
		"quantity":    3,
		"expiry_date": "2026-12-31",
	}
}

func storedItem(id primitive.ObjectID) *models.ItemDB {
	return &models.ItemDB{
		ID:         id,
		Name:       "John",
		Email:      "john@example.com",
		ItemName:   "Milk",
		Quantity:   3,
		ExpiryDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		InsertDate: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	}
}

func TestCreateItemHandler(t *testing.T) {
	id := primitive.NewObjectID()
	expectedInput := models.ItemInput{
		Name:       "John",
		Email:      "john@example.com",
		ItemName:   "Milk",
		Quantity:   3,
		ExpiryDate: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	withField := func(key string, value any) map[string]any {
		body := validItemBody()
		if value == nil {
			delete(body, key)
		} else {
			body[key] = value
		}
		return body
	}

	tests := []struct {
		name            string
		requestBody     any
		setupMocks      func(m *MockItemCreator)
		expectedStatus  int
		expectedMessage string
		expectedField   string
	}{
		{
			name:        "created",
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemCreator) {
				m.EXPECT().Create(gomock.Any(), expectedInput).Return(storedItem(id), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemCreated,
		},
		{
			name:        "quantity zero is valid",
			requestBody: withField("quantity", 0),
			setupMocks: func(m *MockItemCreator) {
				in := expectedInput
				in.Quantity = 0
				m.EXPECT().Create(gomock.Any(), in).Return(storedItem(id), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemCreated,
		},
		{
			name:        "duplicate",
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemCreator) {
				m.EXPECT().Create(gomock.Any(), expectedInput).Return(nil, services.ErrItemAlreadyExists)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: MsgItemAlreadyExists,
		},
		{
			name:        "store failure",
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemCreator) {
				m.EXPECT().Create(gomock.Any(), expectedInput).Return(nil, errors.New("connection refused"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MsgStoreFailure,
		},
		{
			name:            "invalid json",
			requestBody:     "invalid-json",
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "body",
		},
		{
			name:            "invalid email",
			requestBody:     withField("email", "not-an-email"),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "email",
		},
		{
			name:            "negative quantity",
			requestBody:     withField("quantity", -1),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "quantity",
		},
		{
			name:            "missing quantity",
			requestBody:     withField("quantity", nil),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "quantity",
		},
		{
			name:            "quantity of wrong type",
			requestBody:     withField("quantity", "three"),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "quantity",
		},
		{
			name:            "bad expiry date",
			requestBody:     withField("expiry_date", "31/12/2026"),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "expiry_date",
		},
		{
			name:            "missing name",
			requestBody:     withField("name", nil),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "name",
		},
		{
			name: "null item name",
			requestBody: func() map[string]any {
				body := validItemBody()
				body["item_name"] = nil
				return body
			}(),
			setupMocks:      func(m *MockItemCreator) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
			expectedField:   "item_name",
		},
		{
			name:        "empty name and item name are accepted",
			requestBody: func() map[string]any {
				body := withField("name", "")
				body["item_name"] = ""
				return body
			}(),
			setupMocks: func(m *MockItemCreator) {
				in := expectedInput
				in.Name = ""
				in.ItemName = ""
				m.EXPECT().Create(gomock.Any(), in).Return(storedItem(id), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockItemCreator(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/create_item/", jsonBody(t, tt.requestBody))
			rr := httptest.NewRecorder()

			NewCreateItemHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, env.Message)
			if tt.expectedField != "" {
				require.NotEmpty(t, env.Errors)
				assert.Equal(t, tt.expectedField, env.Errors[0].Field)
				assert.JSONEq(t, `[]`, string(env.Data))
			}
		})
	}
}

func TestCreateItemHandler_ResponseBody(t *testing.T) {
	id := primitive.NewObjectID()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockItemCreator(ctrl)
	mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(storedItem(id), nil)

	req := httptest.NewRequest(http.MethodPost, "/create_item/", jsonBody(t, validItemBody()))
	rr := httptest.NewRecorder()
	NewCreateItemHandler(mockSvc).ServeHTTP(rr, req)

	assert.JSONEq(t, `{
		"Message": "Successfully created new item",
		"data": {
			"id": "`+id.Hex()+`",
			"name": "John",
			"email": "john@example.com",
			"item_name": "Milk",
			"quantity": 3,
			"expiry_date": "2026-12-31",
			"insert_date": "2026-10-17T09:30:00.000Z"
		}
	}`, rr.Body.String())
}

func TestGetItemHandler(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name            string
		id              string
		setupMocks      func(m *MockItemGetter)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "found",
			id:   id.Hex(),
			setupMocks: func(m *MockItemGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(storedItem(id), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemShared,
		},
		{
			name: "not found",
			id:   id.Hex(),
			setupMocks: func(m *MockItemGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrItemNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MsgRecordNotFound,
		},
		{
			name: "store failure",
			id:   id.Hex(),
			setupMocks: func(m *MockItemGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("timeout"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MsgStoreFailure,
		},
		{
			name:            "malformed identifier",
			id:              "not-an-id",
			setupMocks:      func(m *MockItemGetter) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: MsgInvalidIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockItemGetter(ctrl)
			tt.setupMocks(mockSvc)

			req := withID(httptest.NewRequest(http.MethodGet, "/get_item/"+tt.id, nil), tt.id)
			rr := httptest.NewRecorder()
			NewGetItemHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedMessage, decodeEnvelope(t, rr).Message)
		})
	}
}

func TestUpdateItemHandler(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name            string
		id              string
		requestBody     any
		setupMocks      func(m *MockItemUpdater)
		expectedStatus  int
		expectedMessage string
		expectedData    string
	}{
		{
			name:        "updated",
			id:          id.Hex(),
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(storedItem(id), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemUpdated,
		},
		{
			name:        "no changes",
			id:          id.Hex(),
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrNoChanges)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemNoChanges,
			expectedData:    `[]`,
		},
		{
			name:        "not found",
			id:          id.Hex(),
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrItemNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MsgItemNotFound,
		},
		{
			name:        "collides with another item",
			id:          id.Hex(),
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrItemAlreadyExists)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: MsgItemAlreadyExists,
		},
		{
			name:        "store failure",
			id:          id.Hex(),
			requestBody: validItemBody(),
			setupMocks: func(m *MockItemUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MsgStoreFailure,
		},
		{
			name:            "invalid body",
			id:              id.Hex(),
			requestBody:     map[string]any{"name": "John"},
			setupMocks:      func(m *MockItemUpdater) {},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedMessage: MsgValidationFailed,
		},
		{
			name:            "malformed identifier",
			id:              "123",
			requestBody:     validItemBody(),
			setupMocks:      func(m *MockItemUpdater) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: MsgInvalidIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockItemUpdater(ctrl)
			tt.setupMocks(mockSvc)

			req := withID(httptest.NewRequest(http.MethodPut, "/update_item/"+tt.id, jsonBody(t, tt.requestBody)), tt.id)
			rr := httptest.NewRecorder()
			NewUpdateItemHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, env.Message)
			if tt.expectedData != "" {
				assert.JSONEq(t, tt.expectedData, string(env.Data))
			}
		})
	}
}

func TestDeleteItemHandler(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name            string
		id              string
		setupMocks      func(m *MockItemDeleter)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "deleted",
			id:   id.Hex(),
			setupMocks: func(m *MockItemDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: MsgItemDeleted,
		},
		{
			name: "not found",
			id:   id.Hex(),
			setupMocks: func(m *MockItemDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(services.ErrItemNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MsgItemNotFound,
		},
		{
			name: "store failure",
			id:   id.Hex(),
			setupMocks: func(m *MockItemDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(errors.New("boom"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MsgStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockItemDeleter(ctrl)
			tt.setupMocks(mockSvc)

			req := withID(httptest.NewRequest(http.MethodDelete, "/delete_item/"+tt.id, nil), tt.id)
			rr := httptest.NewRecorder()
			NewDeleteItemHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, env.Message)
			assert.Nil(t, env.Data, "delete responses carry no data")
		})
	}
}

func TestFilterItemsHandler(t *testing.T) {
	id := primitive.NewObjectID()
	zero := 0
	ten := 10
	expiry := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	inserted := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMocks     func(m *MockItemFilterer)
		expectedStatus int
		expectedBody   string
		expectedField  string
	}{
		{
			name:  "no filters",
			query: "",
			setupMocks: func(m *MockItemFilterer) {
				m.EXPECT().Filter(gomock.Any(), models.ItemFilter{}).Return([]models.ItemDB{}, []models.EmailCount{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"Message":"Filtered items retrieved successfully",
				"data":{"filtered_items":[],"email_counts":[]}}`,
		},
		{
			name:  "all filters",
			query: "?email=john@example.com&expiry_date=2026-01-12&insert_date=2025-06-01T10:00:00%2B02:00&quantity=10",
			setupMocks: func(m *MockItemFilterer) {
				m.EXPECT().Filter(gomock.Any(), models.ItemFilter{
					Email:         "john@example.com",
					ExpiryAfter:   &expiry,
					InsertedAfter: &inserted,
					MinQuantity:   &ten,
				}).Return([]models.ItemDB{*storedItem(id)}, []models.EmailCount{
					{Email: "ann@example.com", Count: 2},
					{Email: "john@example.com", Count: 1},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"Message":"Filtered items retrieved successfully","data":{
				"filtered_items":[{"id":"` + id.Hex() + `","name":"John","email":"john@example.com","item_name":"Milk",
					"quantity":3,"expiry_date":"2026-12-31","insert_date":"2026-10-17T09:30:00.000Z"}],
				"email_counts":[{"_id":"ann@example.com","count":2},{"_id":"john@example.com","count":1}]}}`,
		},
		{
			name:  "plus decoded to space is repaired",
			query: "?insert_date=2025-06-01T10:00:00+02:00",
			setupMocks: func(m *MockItemFilterer) {
				m.EXPECT().Filter(gomock.Any(), models.ItemFilter{InsertedAfter: &inserted}).Return(nil, nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"Message":"Filtered items retrieved successfully",
				"data":{"filtered_items":[],"email_counts":[]}}`,
		},
		{
			name:  "quantity zero and empty email",
			query: "?quantity=0&email=",
			setupMocks: func(m *MockItemFilterer) {
				m.EXPECT().Filter(gomock.Any(), models.ItemFilter{MinQuantity: &zero}).Return([]models.ItemDB{}, []models.EmailCount{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "negative quantity",
			query:          "?quantity=-1",
			setupMocks:     func(m *MockItemFilterer) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "quantity",
		},
		{
			name:           "bad expiry date",
			query:          "?expiry_date=tomorrow",
			setupMocks:     func(m *MockItemFilterer) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "expiry_date",
		},
		{
			name:           "bad insert date",
			query:          "?insert_date=yesterday",
			setupMocks:     func(m *MockItemFilterer) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "insert_date",
		},
		{
			name:  "store failure",
			query: "",
			setupMocks: func(m *MockItemFilterer) {
				m.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"Message":"Database have some issues.","data":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockItemFilterer(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/items/filter/"+tt.query, nil)
			rr := httptest.NewRecorder()
			NewFilterItemsHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
			if tt.expectedField != "" {
				env := decodeEnvelope(t, rr)
				require.Len(t, env.Errors, 1)
				assert.Equal(t, tt.expectedField, env.Errors[0].Field)
			}
		})
	}
}
