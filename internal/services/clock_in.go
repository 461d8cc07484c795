package services

import (
	"context"
	"errors"
	"time"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/crud-app/records-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=clock_in.go -destination=clock_in_mock.go -package=services

// ErrClockInNotFound is returned when no clock-in record has the requested identifier.
var ErrClockInNotFound = errors.New("clock-in record not found")

// ClockInReader defines read-only operations for clock-in records.
type ClockInReader interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClockInDB, error)
	Filter(ctx context.Context, f models.ClockInFilter) ([]models.ClockInDB, error)
}

// ClockInWriter defines write operations for clock-in records.
type ClockInWriter interface {
	Save(ctx context.Context, record models.ClockInDB) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, email, location string) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ClockInService handles employee clock-in records.
type ClockInService struct {
	reader      ClockInReader
	writer      ClockInWriter
	kafkaWriter KafkaWriter
}

// NewClockInService creates a new ClockInService instance.
func NewClockInService(reader ClockInReader, writer ClockInWriter, kafkaWriter KafkaWriter) *ClockInService {
	return &ClockInService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create records a clock-in at the current time.
func (svc *ClockInService) Create(ctx context.Context, in models.ClockInInput) (*models.ClockInDB, error) {
	record := models.ClockInDB{
		Email:       in.Email,
		Location:    in.Location,
		ClockInTime: time.Now().UTC().Truncate(time.Millisecond),
	}

	id, err := svc.writer.Save(ctx, record)
	if err != nil {
		logger.Log.Errorw("failed to save clock-in record", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, models.ClockInCollection, models.OperationCreate, id)

	saved, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read created clock-in record", "id", id.Hex(), "err", err)
		return nil, err
	}
	if saved == nil {
		record.ID = id
		return &record, nil
	}
	return saved, nil
}

func (svc *ClockInService) Get(ctx context.Context, id primitive.ObjectID) (*models.ClockInDB, error) {
	record, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get clock-in record", "id", id.Hex(), "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrClockInNotFound
	}
	return record, nil
}

// Update changes email and location of a record; the clock-in time is kept.
func (svc *ClockInService) Update(ctx context.Context, id primitive.ObjectID, in models.ClockInInput) (*models.ClockInDB, error) {
	matched, modified, err := svc.writer.Update(ctx, id, in.Email, in.Location)
	if err != nil {
		logger.Log.Errorw("failed to update clock-in record", "id", id.Hex(), "err", err)
		return nil, err
	}
	if matched == 0 {
		return nil, ErrClockInNotFound
	}
	if modified == 0 {
		return nil, ErrNoChanges
	}

	publishEvent(ctx, svc.kafkaWriter, models.ClockInCollection, models.OperationUpdate, id)

	updated, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read updated clock-in record", "id", id.Hex(), "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrClockInNotFound
	}
	return updated, nil
}

func (svc *ClockInService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete clock-in record", "id", id.Hex(), "err", err)
		return err
	}
	if deleted == 0 {
		return ErrClockInNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, models.ClockInCollection, models.OperationDelete, id)
	return nil
}

// Filter returns the clock-in records matching f.
func (svc *ClockInService) Filter(ctx context.Context, f models.ClockInFilter) ([]models.ClockInDB, error) {
	records, err := svc.reader.Filter(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to filter clock-in records", "err", err)
		return nil, err
	}
	return records, nil
}
