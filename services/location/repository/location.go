package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/logicraft/dispatch/internal/pkg/constants"
	"github.com/logicraft/dispatch/internal/pkg/database"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/internal/utils"
)

// locationTTL bounds how long a stale coordinate survives without a fresh
// report. The geo index entry is refreshed on every write.
const locationTTL = 30 * time.Minute

// LocationRepository implements the location repository interface on redis
type LocationRepository struct {
	redis *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redis *database.RedisClient) *LocationRepository {
	return &LocationRepository{redis: redis}
}

// StoreLocation overwrites the vehicle's coordinate hash and geo index entry
func (r *LocationRepository) StoreLocation(ctx context.Context, vehicleNo string, location models.Location) error {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleNo)

	err := r.redis.HSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(location.Timestamp.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(location),
	})
	if err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}

	if err := r.redis.Expire(ctx, key, locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	if err := r.redis.GeoAdd(ctx, constants.KeyVehicleGeo, location.Longitude, location.Latitude, vehicleNo); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}

	return nil
}

// GetLocation returns the vehicle's last reported coordinate
func (r *LocationRepository) GetLocation(ctx context.Context, vehicleNo string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyVehicleLocation, vehicleNo)

	fields, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleNo, pkgerrors.ErrNoCoordinateYet)
	}

	latitude, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude: %w", err)
	}
	unix, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	return &models.Location{
		Latitude:  latitude,
		Longitude: longitude,
		Timestamp: time.Unix(unix, 0),
	}, nil
}

// NearbyVehicles returns vehicle numbers within radiusKm, nearest first
func (r *LocationRepository) NearbyVehicles(ctx context.Context, latitude, longitude, radiusKm float64) ([]string, error) {
	results, err := r.redis.GeoRadius(ctx, constants.KeyVehicleGeo, longitude, latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	vehicleNos := make([]string, 0, len(results))
	for _, result := range results {
		vehicleNos = append(vehicleNos, result.Name)
	}
	return vehicleNos, nil
}
