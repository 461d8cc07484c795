package services

import (
	"context"
	"errors"
	"time"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/models"
	"github.com/crud-app/records-api/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=item.go -destination=item_mock.go -package=services

// Error variables
var (
	ErrItemAlreadyExists = errors.New("item already exists")
	ErrItemNotFound      = errors.New("item not found")
	// ErrNoChanges is returned when an update matched a record but left it unchanged.
	ErrNoChanges = errors.New("no changes made")
)

// ItemReader defines read-only operations for items.
type ItemReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ItemDB, error)
	GetByOwner(ctx context.Context, name, email, itemName string) (*models.ItemDB, error)
	Filter(ctx context.Context, f models.ItemFilter) ([]models.ItemDB, error)
	CountByEmail(ctx context.Context) ([]models.EmailCount, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, item models.ItemDB) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, item models.ItemDB) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ItemService handles inventory items.
type ItemService struct {
	reader      ItemReader
	writer      ItemWriter
	kafkaWriter KafkaWriter
}

// NewItemService creates a new ItemService instance.
func NewItemService(reader ItemReader, writer ItemWriter, kafkaWriter KafkaWriter) *ItemService {
	return &ItemService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new item unless one with the same name, email and item name exists.
func (svc *ItemService) Create(ctx context.Context, in models.ItemInput) (*models.ItemDB, error) {
	existing, err := svc.reader.GetByOwner(ctx, in.Name, in.Email, in.ItemName)
	if err != nil {
		logger.Log.Errorw("failed to check item exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("item already exists", "name", in.Name, "email", in.Email, "item_name", in.ItemName)
		return nil, ErrItemAlreadyExists
	}

	item := models.ItemDB{
		Name:       in.Name,
		Email:      in.Email,
		ItemName:   in.ItemName,
		Quantity:   in.Quantity,
		ExpiryDate: models.MidnightUTC(in.ExpiryDate),
		InsertDate: time.Now().UTC().Truncate(time.Millisecond),
	}

	id, err := svc.writer.Save(ctx, item)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Log.Infow("item already exists", "name", in.Name, "email", in.Email, "item_name", in.ItemName)
		return nil, ErrItemAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save item", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.ItemsCollection, models.OperationCreate, id)

	saved, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read created item", "id", id.Hex(), "err", err)
		return nil, err
	}
	if saved == nil {
		item.ID = id
		return &item, nil
	}
	return saved, nil
}

// Get returns the item with the given identifier.
func (svc *ItemService) Get(ctx context.Context, id primitive.ObjectID) (*models.ItemDB, error) {
	item, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get item", "id", id.Hex(), "err", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Update replaces every field of an item except its identifier and insertion date.
// ErrNoChanges is returned when the stored item already holds the given values.
func (svc *ItemService) Update(ctx context.Context, id primitive.ObjectID, in models.ItemInput) (*models.ItemDB, error) {
	item := models.ItemDB{
		Name:       in.Name,
		Email:      in.Email,
		ItemName:   in.ItemName,
		Quantity:   in.Quantity,
		ExpiryDate: models.MidnightUTC(in.ExpiryDate),
	}

	matched, modified, err := svc.writer.Update(ctx, id, item)
	if errors.Is(err, repositories.ErrDuplicateKey) {
		logger.Log.Infow("item update collides with an existing item", "id", id.Hex())
		return nil, ErrItemAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to update item", "id", id.Hex(), "err", err)
		return nil, err
	}
	if matched == 0 {
		return nil, ErrItemNotFound
	}
	if modified == 0 {
		return nil, ErrNoChanges
	}

	publishEvent(ctx, svc.kafkaWriter, models.ItemsCollection, models.OperationUpdate, id)

	updated, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read updated item", "id", id.Hex(), "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}
	return updated, nil
}

// Delete removes the item with the given identifier.
func (svc *ItemService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete item", "id", id.Hex(), "err", err)
		return err
	}
	if deleted == 0 {
		return ErrItemNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.ItemsCollection, models.OperationDelete, id)
	return nil
}

// Filter returns the items matching f together with per-email counts over the whole collection.
func (svc *ItemService) Filter(ctx context.Context, f models.ItemFilter) ([]models.ItemDB, []models.EmailCount, error) {
	items, err := svc.reader.Filter(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to filter items", "err", err)
		return nil, nil, err
	}

	counts, err := svc.reader.CountByEmail(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count items by email", "err", err)
		return nil, nil, err
	}

	return items, counts, nil
}
