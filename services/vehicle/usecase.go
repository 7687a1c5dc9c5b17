package vehicle

import (
	"context"

	"github.com/logicraft/dispatch/internal/pkg/models"
)

// VehicleUC defines the interface for vehicle registry business logic
type VehicleUC interface {
	AddVehicle(ctx context.Context, vehicleNo string, class models.VehicleClass) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, vehicleNo string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	ListFree(ctx context.Context, class models.VehicleClass) ([]*models.Vehicle, error)
	Stats(ctx context.Context) ([]*models.VehicleClassStats, error)
}
