package repositories

import (
	"context"
	"errors"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClockInReadRepository handles clock-in read operations
type ClockInReadRepository struct {
	coll *mongo.Collection
}

func NewClockInReadRepository(db *mongo.Database) *ClockInReadRepository {
	return &ClockInReadRepository{coll: db.Collection(models.ClockInCollection)}
}

// GetByID returns the record with the given identifier, or nil if there is none.
func (r *ClockInReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClockInDB, error) {
	filter := bson.M{"_id": id}

	var record models.ClockInDB
	err := r.coll.FindOne(ctx, filter).Decode(&record)

	logger.Log.Infow(
		"query", "clock_in_records.findOne",
		"args", filter,
		"result", record.ID.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Filter returns all records matching the filter in insertion order.
func (r *ClockInReadRepository) Filter(ctx context.Context, f models.ClockInFilter) ([]models.ClockInDB, error) {
	query := bson.M{}
	if f.Email != "" {
		query["email"] = f.Email
	}
	if f.Location != "" {
		query["location"] = f.Location
	}
	if f.ClockedInAfter != nil {
		query["clock_in_time"] = bson.M{"$gt": *f.ClockedInAfter}
	}

	records := []models.ClockInDB{}
	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err == nil {
		err = cursor.All(ctx, &records)
	}

	logger.Log.Infow(
		"query", "clock_in_records.find",
		"args", query,
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// ClockInWriteRepository handles clock-in write operations
type ClockInWriteRepository struct {
	coll *mongo.Collection
}

func NewClockInWriteRepository(db *mongo.Database) *ClockInWriteRepository {
	return &ClockInWriteRepository{coll: db.Collection(models.ClockInCollection)}
}

// Save inserts a new record and returns its generated identifier.
func (r *ClockInWriteRepository) Save(ctx context.Context, record models.ClockInDB) (primitive.ObjectID, error) {
	record.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, record)

	var id primitive.ObjectID
	if res != nil {
		id, _ = res.InsertedID.(primitive.ObjectID)
	}

	logger.Log.Infow(
		"query", "clock_in_records.insertOne",
		"args", record,
		"result", id.Hex(),
		"error", err,
	)

	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update sets email and location. The clock-in time is never modified.
func (r *ClockInWriteRepository) Update(ctx context.Context, id primitive.ObjectID, email, location string) (matched, modified int64, err error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"email": email, "location": location}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if res != nil {
		matched, modified = res.MatchedCount, res.ModifiedCount
	}

	logger.Log.Infow(
		"query", "clock_in_records.updateOne",
		"args", []any{filter, update},
		"result", []int64{matched, modified},
		"error", err,
	)

	return matched, modified, err
}

// Delete removes a record and returns the number of removed documents.
func (r *ClockInWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	filter := bson.M{"_id": id}

	var deleted int64
	res, err := r.coll.DeleteOne(ctx, filter)
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow(
		"query", "clock_in_records.deleteOne",
		"args", filter,
		"result", deleted,
		"error", err,
	)

	return deleted, err
}
