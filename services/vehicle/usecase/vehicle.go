package usecase

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/services/vehicle"
)

// VehicleService implements the vehicle.VehicleUC interface
type VehicleService struct {
	repo vehicle.VehicleRepo
}

// NewVehicleService creates a new vehicle registry use case
func NewVehicleService(repo vehicle.VehicleRepo) *VehicleService {
	return &VehicleService{repo: repo}
}

// AddVehicle registers a vehicle with busy=false and no coordinate. The
// vehicle number is normalized to upper case before it becomes the key.
func (s *VehicleService) AddVehicle(ctx context.Context, vehicleNo string, class models.VehicleClass) (*models.Vehicle, error) {
	normalized := models.NormalizeVehicleNo(vehicleNo)
	if normalized == "" {
		return nil, fmt.Errorf("empty vehicle number: %w", pkgerrors.ErrUnknownVehicle)
	}
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: %q", pkgerrors.ErrUnknownVehicleClass, class)
	}

	v := &models.Vehicle{
		VehicleNo:    normalized,
		Class:        class,
		Busy:         false,
		RegisteredAt: time.Now(),
	}

	if err := s.repo.Add(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Registered vehicle",
		logger.String("vehicle_no", normalized),
		logger.String("vehicle_class", string(class)))

	return v, nil
}

// GetVehicle retrieves a vehicle by number
func (s *VehicleService) GetVehicle(ctx context.Context, vehicleNo string) (*models.Vehicle, error) {
	return s.repo.Get(ctx, models.NormalizeVehicleNo(vehicleNo))
}

// ListVehicles lists all vehicles
func (s *VehicleService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.repo.List(ctx)
}

// ListFree lists free vehicles of a class in registration order
func (s *VehicleService) ListFree(ctx context.Context, class models.VehicleClass) ([]*models.Vehicle, error) {
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: %q", pkgerrors.ErrUnknownVehicleClass, class)
	}
	return s.repo.ListFree(ctx, class)
}

// Stats returns fleet analytics per class
func (s *VehicleService) Stats(ctx context.Context) ([]*models.VehicleClassStats, error) {
	return s.repo.Stats(ctx)
}
