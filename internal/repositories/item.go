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

// ItemOwnerIndex is the unique index over the (name, email, item_name) triple.
const ItemOwnerIndex = "name_email_item_name_unique"

// ItemReadRepository handles item read operations
type ItemReadRepository struct {
	coll *mongo.Collection
}

func NewItemReadRepository(db *mongo.Database) *ItemReadRepository {
	return &ItemReadRepository{coll: db.Collection(models.ItemsCollection)}
}

// GetByID returns the item with the given identifier, or nil if there is none.
func (r *ItemReadRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ItemDB, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByOwner returns the item matching the (name, email, item_name) triple, or nil if there is none.
func (r *ItemReadRepository) GetByOwner(ctx context.Context, name, email, itemName string) (*models.ItemDB, error) {
	return r.findOne(ctx, bson.M{"name": name, "email": email, "item_name": itemName})
}

func (r *ItemReadRepository) findOne(ctx context.Context, filter bson.M) (*models.ItemDB, error) {
	var item models.ItemDB
	err := r.coll.FindOne(ctx, filter).Decode(&item)

	logger.Log.Infow(
		"query", "items.findOne",
		"args", filter,
		"result", item.ID.Hex(),
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Filter returns all items matching the filter in insertion order.
func (r *ItemReadRepository) Filter(ctx context.Context, f models.ItemFilter) ([]models.ItemDB, error) {
	query := itemFilterQuery(f)
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	items := []models.ItemDB{}
	cursor, err := r.coll.Find(ctx, query, opts)
	if err == nil {
		err = cursor.All(ctx, &items)
	}

	logger.Log.Infow(
		"query", "items.find",
		"args", query,
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByEmail counts items per owner email over the whole collection.
func (r *ItemReadRepository) CountByEmail(ctx context.Context) ([]models.EmailCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$email"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	counts := []models.EmailCount{}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err == nil {
		err = cursor.All(ctx, &counts)
	}

	logger.Log.Infow(
		"query", "items.aggregate",
		"args", pipeline,
		"result", counts,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return counts, nil
}

func itemFilterQuery(f models.ItemFilter) bson.M {
	query := bson.M{}
	if f.Email != "" {
		query["email"] = f.Email
	}
	if f.ExpiryAfter != nil {
		query["expiry_date"] = bson.M{"$gt": *f.ExpiryAfter}
	}
	if f.InsertedAfter != nil {
		query["insert_date"] = bson.M{"$gt": *f.InsertedAfter}
	}
	if f.MinQuantity != nil {
		query["quantity"] = bson.M{"$gte": *f.MinQuantity}
	}
	return query
}

// ItemWriteRepository handles item write operations
type ItemWriteRepository struct {
	coll *mongo.Collection
}

func NewItemWriteRepository(db *mongo.Database) *ItemWriteRepository {
	return &ItemWriteRepository{coll: db.Collection(models.ItemsCollection)}
}

// EnsureIndexes creates the unique owner index. It is idempotent.
func (r *ItemWriteRepository) EnsureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
			{Key: "email", Value: 1},
			{Key: "item_name", Value: 1},
		},
		Options: options.Index().SetName(ItemOwnerIndex).SetUnique(true),
	}

	name, err := r.coll.Indexes().CreateOne(ctx, model)

	logger.Log.Infow(
		"query", "items.createIndex",
		"args", model.Keys,
		"result", name,
		"error", err,
	)

	return err
}

// Save inserts a new item and returns its generated identifier.
func (r *ItemWriteRepository) Save(ctx context.Context, item models.ItemDB) (primitive.ObjectID, error) {
	item.ID = primitive.NilObjectID
	res, err := r.coll.InsertOne(ctx, item)

	var id primitive.ObjectID
	if res != nil {
		id, _ = res.InsertedID.(primitive.ObjectID)
	}

	logger.Log.Infow(
		"query", "items.insertOne",
		"args", item,
		"result", id.Hex(),
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicateKey
	}
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// Update replaces every mutable field of an item. Identifier and insert_date are left untouched.
func (r *ItemWriteRepository) Update(ctx context.Context, id primitive.ObjectID, item models.ItemDB) (matched, modified int64, err error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"name":        item.Name,
		"email":       item.Email,
		"item_name":   item.ItemName,
		"quantity":    item.Quantity,
		"expiry_date": item.ExpiryDate,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if res != nil {
		matched, modified = res.MatchedCount, res.ModifiedCount
	}

	logger.Log.Infow(
		"query", "items.updateOne",
		"args", []any{filter, update},
		"result", []int64{matched, modified},
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return 0, 0, ErrDuplicateKey
	}
	return matched, modified, err
}

// Delete removes an item and returns the number of removed documents.
func (r *ItemWriteRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	filter := bson.M{"_id": id}

	var deleted int64
	res, err := r.coll.DeleteOne(ctx, filter)
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow(
		"query", "items.deleteOne",
		"args", filter,
		"result", deleted,
		"error", err,
	)

	return deleted, err
}
