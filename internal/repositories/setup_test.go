package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/crud-app/records-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// setupMongo starts a MongoDB container and returns a fresh database plus a cleanup func.
func setupMongo(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	assert.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s/", host, port.Port())

	var client *mongo.Client
	for i := 0; i < 10; i++ {
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			if err = client.Ping(ctx, readpref.Primary()); err == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db := client.Database("crud_app_test")

	return db, func() {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
	}
}
