package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemsCollection is the name of the collection holding inventory items.
const ItemsCollection = "items"

// Output layouts.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ItemDB represents an item document in the database
type ItemDB struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"` // Store-generated identifier
	Name       string             `bson:"name"`          // Owner name
	Email      string             `bson:"email"`         // Owner email
	ItemName   string             `bson:"item_name"`     // Item name
	Quantity   int                `bson:"quantity"`      // Non-negative quantity
	ExpiryDate time.Time          `bson:"expiry_date"`   // Expiry date at UTC midnight
	InsertDate time.Time          `bson:"insert_date"`   // Server-assigned insertion time, UTC
}

// ItemInput is a validated item payload, used for both create and full replacement.
type ItemInput struct {
	Name       string
	Email      string
	ItemName   string
	Quantity   int
	ExpiryDate time.Time
}

// ItemResponse is the serialized form of an item
// swagger:model ItemResponse
type ItemResponse struct {
	// Identifier
	// example: 6710f0a1c2d3e4f5a6b7c8d9
	ID string `json:"id"`

	// Owner name
	// example: John Doe
	Name string `json:"name"`

	// Owner email
	// example: john@example.com
	Email string `json:"email"`

	// Item name
	// example: Milk
	ItemName string `json:"item_name"`

	// Quantity
	// example: 3
	Quantity int `json:"quantity"`

	// Expiry date
	// example: 2026-12-31
	ExpiryDate string `json:"expiry_date"`

	// Insertion timestamp
	// example: 2026-10-17T09:30:00.000Z
	InsertDate string `json:"insert_date"`
}

// NewItemResponse serializes a stored item.
func NewItemResponse(item ItemDB) ItemResponse {
	return ItemResponse{
		ID:         item.ID.Hex(),
		Name:       item.Name,
		Email:      item.Email,
		ItemName:   item.ItemName,
		Quantity:   item.Quantity,
		ExpiryDate: item.ExpiryDate.UTC().Format(DateLayout),
		InsertDate: FormatTimestamp(item.InsertDate),
	}
}

// NewItemResponses serializes a list of items. The result is never nil.
func NewItemResponses(items []ItemDB) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = NewItemResponse(item)
	}
	return resp
}

// ItemFilter holds the optional criteria of an item search. Nil fields are not applied.
type ItemFilter struct {
	Email         string
	ExpiryAfter   *time.Time // expiry_date strictly after this instant
	InsertedAfter *time.Time // insert_date strictly after this instant
	MinQuantity   *int       // quantity greater than or equal
}

// EmailCount is one row of the items-per-email aggregate.
// The "_id" key mirrors the aggregation output.
type EmailCount struct {
	Email string `json:"_id" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

// ItemsFilterResult is the payload of the item filter endpoint
// swagger:model ItemsFilterResult
type ItemsFilterResult struct {
	FilteredItems []ItemResponse `json:"filtered_items"`
	EmailCounts   []EmailCount   `json:"email_counts"`
}

// MidnightUTC returns the start of t's calendar day in UTC.
func MidnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatTimestamp renders t in UTC with millisecond precision, matching what MongoDB stores.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
