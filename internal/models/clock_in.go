package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClockInCollection is the name of the collection holding clock-in records.
const ClockInCollection = "clock_in_records"

// ClockInDB represents a clock-in document in the database
type ClockInDB struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"` // Store-generated identifier
	Email       string             `bson:"email"`         // Employee email
	Location    string             `bson:"location"`      // Free-text location
	ClockInTime time.Time          `bson:"clock_in_time"` // Server-assigned, immutable after creation
}

// ClockInInput is a validated clock-in payload.
type ClockInInput struct {
	Email    string
	Location string
}

// ClockInResponse is the serialized form of a clock-in record
// swagger:model ClockInResponse
type ClockInResponse struct {
	// Identifier
	// example: 6710f0a1c2d3e4f5a6b7c8d9
	ID string `json:"id"`

	// Employee email
	// example: jane@example.com
	Email string `json:"email"`

	// Location
	// example: Warehouse A
	Location string `json:"location"`

	// Clock-in timestamp
	// example: 2026-10-17T08:00:00.000Z
	ClockInTime string `json:"clock_in_time"`
}

// NewClockInResponse serializes a stored clock-in record.
func NewClockInResponse(record ClockInDB) ClockInResponse {
	return ClockInResponse{
		ID:          record.ID.Hex(),
		Email:       record.Email,
		Location:    record.Location,
		ClockInTime: FormatTimestamp(record.ClockInTime),
	}
}

// NewClockInResponses serializes a list of records. The result is never nil.
func NewClockInResponses(records []ClockInDB) []ClockInResponse {
	resp := make([]ClockInResponse, len(records))
	for i, record := range records {
		resp[i] = NewClockInResponse(record)
	}
	return resp
}

// ClockInFilter holds the optional criteria of a clock-in search.
type ClockInFilter struct {
	Email          string
	Location       string
	ClockedInAfter *time.Time
}
