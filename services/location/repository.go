package location

import (
	"context"

	"github.com/logicraft/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for live coordinate storage.
// Coordinates are volatile: only the latest report per vehicle is kept.
type LocationRepo interface {
	// StoreLocation overwrites the vehicle's last known coordinate and
	// refreshes the geo index entry used for proximity queries.
	StoreLocation(ctx context.Context, vehicleNo string, location models.Location) error

	// GetLocation returns the last reported coordinate. Returns
	// ErrNoCoordinateYet when the vehicle has never reported one.
	GetLocation(ctx context.Context, vehicleNo string) (*models.Location, error)

	// NearbyVehicles returns vehicle numbers within radiusKm of the point,
	// nearest first.
	NearbyVehicles(ctx context.Context, latitude, longitude, radiusKm float64) ([]string, error)
}
