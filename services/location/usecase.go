package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// LocationUC defines the interface for live tracking business logic
type LocationUC interface {
	// ReportLocation records a coordinate sent by a driver against the
	// vehicle their assignment holds. Returns the resolved update so
	// callers can fan it out. Fails with ErrNoActiveAssignment when the
	// driver has no vehicle attached, ErrInvalidCoordinate when the
	// coordinate is out of range.
	ReportLocation(ctx context.Context, driverID uuid.UUID, location models.Location) (*models.LocationUpdate, error)

	// CurrentCoordinate returns a vehicle's last reported coordinate
	CurrentCoordinate(ctx context.Context, vehicleNo string) (*models.Location, error)

	// NearbyVehicles returns vehicle numbers within radiusKm, nearest first
	NearbyVehicles(ctx context.Context, latitude, longitude, radiusKm float64) ([]string, error)
}
