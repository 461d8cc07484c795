package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/crud-app/records-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClockInRepositories(t *testing.T) {
	db, cleanup := setupMongo(t)
	defer cleanup()
	ctx := context.Background()

	reader := NewClockInReadRepository(db)
	writer := NewClockInWriteRepository(db)

	clockedIn := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	t.Run("save then get", func(t *testing.T) {
		id, err := writer.Save(ctx, models.ClockInDB{Email: "jane@example.com", Location: "Warehouse A", ClockInTime: clockedIn})
		require.NoError(t, err)

		got, err := reader.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "jane@example.com", got.Email)
		assert.Equal(t, "Warehouse A", got.Location)
		assert.True(t, clockedIn.Equal(got.ClockInTime))
	})

	t.Run("multiple clock-ins per email are allowed", func(t *testing.T) {
		_, err := writer.Save(ctx, models.ClockInDB{Email: "jane@example.com", Location: "Warehouse A", ClockInTime: clockedIn.Add(time.Hour)})
		assert.NoError(t, err)
	})

	t.Run("update keeps clock-in time", func(t *testing.T) {
		id, err := writer.Save(ctx, models.ClockInDB{Email: "bob@example.com", Location: "Office", ClockInTime: clockedIn})
		require.NoError(t, err)

		matched, modified, err := writer.Update(ctx, id, "bob@example.com", "Remote")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
		assert.Equal(t, int64(1), modified)

		got, err := reader.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Remote", got.Location)
		assert.True(t, clockedIn.Equal(got.ClockInTime))

		_, modified, err = writer.Update(ctx, id, "bob@example.com", "Remote")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), modified)
	})

	t.Run("update missing id", func(t *testing.T) {
		matched, _, err := writer.Update(ctx, primitive.NewObjectID(), "x@example.com", "Nowhere")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})

	t.Run("filter", func(t *testing.T) {
		all, err := reader.Filter(ctx, models.ClockInFilter{})
		assert.NoError(t, err)
		assert.Len(t, all, 3)

		byEmail, err := reader.Filter(ctx, models.ClockInFilter{Email: "jane@example.com"})
		assert.NoError(t, err)
		assert.Len(t, byEmail, 2)

		byLocation, err := reader.Filter(ctx, models.ClockInFilter{Location: "Remote"})
		assert.NoError(t, err)
		assert.Len(t, byLocation, 1)

		after := clockedIn
		later, err := reader.Filter(ctx, models.ClockInFilter{ClockedInAfter: &after})
		assert.NoError(t, err)
		if assert.Len(t, later, 1) {
			assert.True(t, clockedIn.Add(time.Hour).Equal(later[0].ClockInTime))
		}

		none, err := reader.Filter(ctx, models.ClockInFilter{Email: "jane@example.com", Location: "Remote"})
		assert.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("delete then get returns nil", func(t *testing.T) {
		id, err := writer.Save(ctx, models.ClockInDB{Email: "tmp@example.com", Location: "Gate", ClockInTime: clockedIn})
		require.NoError(t, err)

		deleted, err := writer.Delete(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		got, err := reader.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
