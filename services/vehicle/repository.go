package vehicle

import (
	"context"

	"github.com/logicraft/dispatch/internal/pkg/models"
)

// VehicleRepo defines the interface for vehicle data access operations.
// Vehicle numbers are expected to be normalized by the caller.
type VehicleRepo interface {
	Add(ctx context.Context, vehicle *models.Vehicle) error
	Get(ctx context.Context, vehicleNo string) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)

	// ListFree lists vehicles with busy=false and the given class in
	// registration order: first registered, first offered.
	ListFree(ctx context.Context, class models.VehicleClass) ([]*models.Vehicle, error)

	SetBusy(ctx context.Context, vehicleNo string, busy bool) error

	// UpdateCoordinate mirrors the vehicle's last reported coordinate;
	// returns ErrUnknownVehicle when the vehicle is not registered.
	UpdateCoordinate(ctx context.Context, vehicleNo string, location *models.Location) error

	Stats(ctx context.Context) ([]*models.VehicleClassStats, error)
}
