package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logicraft/dispatch/internal/pkg/constants"
	"github.com/logicraft/dispatch/internal/pkg/database"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

func setupLocationRepoTest(t *testing.T) (*LocationRepository, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewLocationRepository(&database.RedisClient{Client: client})

	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return repo, mr, cleanup
}

func TestStoreAndGetLocation(t *testing.T) {
	repo, _, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	reported := time.Now().Truncate(time.Second)
	loc := models.Location{Latitude: 28.6139, Longitude: 77.2090, Timestamp: reported}

	err := repo.StoreLocation(context.Background(), "KA01AB1234", loc)
	require.NoError(t, err)

	got, err := repo.GetLocation(context.Background(), "KA01AB1234")

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, loc.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, loc.Longitude, got.Longitude, 1e-9)
	assert.True(t, got.Timestamp.Equal(reported))
}

func TestStoreLocation_OverwritesPreviousReport(t *testing.T) {
	repo, _, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	first := models.Location{Latitude: 28.6139, Longitude: 77.2090, Timestamp: time.Now()}
	second := models.Location{Latitude: 28.6200, Longitude: 77.2150, Timestamp: time.Now().Add(10 * time.Second)}

	require.NoError(t, repo.StoreLocation(context.Background(), "KA01AB1234", first))
	require.NoError(t, repo.StoreLocation(context.Background(), "KA01AB1234", second))

	got, err := repo.GetLocation(context.Background(), "KA01AB1234")

	assert.NoError(t, err)
	assert.InDelta(t, second.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, second.Longitude, got.Longitude, 1e-9)
}

func TestGetLocation_NeverReported(t *testing.T) {
	repo, _, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	got, err := repo.GetLocation(context.Background(), "KA01AB9999")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, pkgerrors.ErrNoCoordinateYet)
}

func TestStoreLocation_SetsTTL(t *testing.T) {
	repo, mr, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	loc := models.Location{Latitude: 28.6139, Longitude: 77.2090, Timestamp: time.Now()}
	require.NoError(t, repo.StoreLocation(context.Background(), "KA01AB1234", loc))

	key := fmt.Sprintf(constants.KeyVehicleLocation, "KA01AB1234")
	assert.Greater(t, mr.TTL(key), time.Duration(0))
}

func TestStoreLocation_ExpiredReportGone(t *testing.T) {
	repo, mr, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	loc := models.Location{Latitude: 28.6139, Longitude: 77.2090, Timestamp: time.Now()}
	require.NoError(t, repo.StoreLocation(context.Background(), "KA01AB1234", loc))

	mr.FastForward(locationTTL + time.Minute)

	_, err := repo.GetLocation(context.Background(), "KA01AB1234")
	assert.ErrorIs(t, err, pkgerrors.ErrNoCoordinateYet)
}

func TestNearbyVehicles_NearestFirst(t *testing.T) {
	repo, _, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	center := models.Location{Latitude: 28.6139, Longitude: 77.2090, Timestamp: time.Now()}
	near := models.Location{Latitude: 28.6150, Longitude: 77.2100, Timestamp: time.Now()}
	far := models.Location{Latitude: 28.7041, Longitude: 77.1025, Timestamp: time.Now()}

	require.NoError(t, repo.StoreLocation(context.Background(), "NEAR1", near))
	require.NoError(t, repo.StoreLocation(context.Background(), "FAR1", far))

	vehicles, err := repo.NearbyVehicles(context.Background(), center.Latitude, center.Longitude, 20)

	assert.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "NEAR1", vehicles[0])
	assert.Equal(t, "FAR1", vehicles[1])
}

func TestNearbyVehicles_RadiusExcludesFarVehicles(t *testing.T) {
	repo, _, cleanup := setupLocationRepoTest(t)
	defer cleanup()

	far := models.Location{Latitude: 28.7041, Longitude: 77.1025, Timestamp: time.Now()}
	require.NoError(t, repo.StoreLocation(context.Background(), "FAR1", far))

	vehicles, err := repo.NearbyVehicles(context.Background(), 28.6139, 77.2090, 5)

	assert.NoError(t, err)
	assert.Empty(t, vehicles)
}
