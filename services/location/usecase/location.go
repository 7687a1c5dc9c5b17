package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/internal/utils"
	"github.com/logicraft/dispatch/services/assignment"
	"github.com/logicraft/dispatch/services/location"
	"github.com/logicraft/dispatch/services/vehicle"
)

// LocationService implements the location usecase interface. Redis holds the
// live coordinate and geo index; postgres keeps a slower-moving mirror so a
// vehicle read shows its last position without a second store lookup.
type LocationService struct {
	locationRepo   location.LocationRepo
	assignmentRepo assignment.AssignmentRepo
	vehicleRepo    vehicle.VehicleRepo
}

// NewLocationService creates a new location service
func NewLocationService(
	locationRepo location.LocationRepo,
	assignmentRepo assignment.AssignmentRepo,
	vehicleRepo vehicle.VehicleRepo,
) *LocationService {
	return &LocationService{
		locationRepo:   locationRepo,
		assignmentRepo: assignmentRepo,
		vehicleRepo:    vehicleRepo,
	}
}

// ReportLocation records a driver's coordinate against their attached vehicle
func (s *LocationService) ReportLocation(ctx context.Context, driverID uuid.UUID, loc models.Location) (*models.LocationUpdate, error) {
	if err := utils.ValidateCoordinate(loc.Latitude, loc.Longitude); err != nil {
		return nil, err
	}

	assigned, err := s.assignmentRepo.GetByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if assigned.VehicleNo == nil {
		return nil, fmt.Errorf("driver %s: %w", driverID, pkgerrors.ErrNoActiveAssignment)
	}
	vehicleNo := *assigned.VehicleNo

	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}

	if err := s.locationRepo.StoreLocation(ctx, vehicleNo, loc); err != nil {
		return nil, err
	}

	// Best effort: the live coordinate in redis is authoritative, the
	// postgres mirror only feeds vehicle reads and can lag one report.
	if err := s.vehicleRepo.UpdateCoordinate(ctx, vehicleNo, &loc); err != nil {
		logger.Warn("Failed to mirror coordinate",
			logger.String("vehicle_no", vehicleNo),
			logger.Err(err))
	}

	logger.Debug("Recorded location report",
		logger.String("vehicle_no", vehicleNo),
		logger.Float64("latitude", loc.Latitude),
		logger.Float64("longitude", loc.Longitude))

	return &models.LocationUpdate{
		VehicleNo: vehicleNo,
		DriverID:  driverID.String(),
		Location:  loc,
		Geohash:   utils.EncodeLocation(loc),
		CreatedAt: time.Now(),
	}, nil
}

// CurrentCoordinate returns a vehicle's last reported coordinate
func (s *LocationService) CurrentCoordinate(ctx context.Context, vehicleNo string) (*models.Location, error) {
	normalized := models.NormalizeVehicleNo(vehicleNo)

	// The vehicle must exist even when it has never reported: an unknown
	// vehicle and a silent one are different answers.
	if _, err := s.vehicleRepo.Get(ctx, normalized); err != nil {
		return nil, err
	}

	return s.locationRepo.GetLocation(ctx, normalized)
}

// NearbyVehicles returns vehicle numbers within radiusKm, nearest first
func (s *LocationService) NearbyVehicles(ctx context.Context, latitude, longitude, radiusKm float64) ([]string, error) {
	if err := utils.ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}
	return s.locationRepo.NearbyVehicles(ctx, latitude, longitude, radiusKm)
}
