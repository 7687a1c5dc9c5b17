package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/services/assignment"
)

// AssignmentService implements the assignment usecase interface
type AssignmentService struct {
	repo assignment.AssignmentRepo
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo assignment.AssignmentRepo) *AssignmentService {
	return &AssignmentService{repo: repo}
}

// RegisterDriver creates a driver record together with an empty assignment
func (s *AssignmentService) RegisterDriver(ctx context.Context, name string, verified bool) (*models.Driver, error) {
	driver := &models.Driver{
		ID:        uuid.New(),
		Name:      name,
		Verified:  verified,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateDriver(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to register driver: %w", err)
	}

	logger.Info("Registered driver",
		logger.String("driver_id", driver.ID.String()),
		logger.Bool("verified", driver.Verified))

	return driver, nil
}

// RemoveDriver deletes a driver and its assignment
func (s *AssignmentService) RemoveDriver(ctx context.Context, driverID uuid.UUID) error {
	return s.repo.DeleteDriver(ctx, driverID)
}

// AttachVehicle binds a vehicle to a verified driver
func (s *AssignmentService) AttachVehicle(ctx context.Context, driverID uuid.UUID, vehicleNo string) error {
	normalized := models.NormalizeVehicleNo(vehicleNo)
	if normalized == "" {
		return fmt.Errorf("empty vehicle number: %w", pkgerrors.ErrUnknownVehicle)
	}

	if err := s.repo.AttachVehicle(ctx, driverID, normalized); err != nil {
		return err
	}

	logger.Info("Attached vehicle to driver",
		logger.String("driver_id", driverID.String()),
		logger.String("vehicle_no", normalized))

	return nil
}

// MatchBooking attempts to bind a pending booking to an idle assignment
func (s *AssignmentService) MatchBooking(ctx context.Context, bookingID uuid.UUID) (*assignment.MatchResult, error) {
	return s.repo.MatchBooking(ctx, bookingID)
}

// CompleteBooking closes an in-transit booking and frees its assignment
func (s *AssignmentService) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*assignment.MatchResult, error) {
	return s.repo.CompleteBooking(ctx, bookingID)
}

// GetAssignmentByDriver retrieves a driver's assignment
func (s *AssignmentService) GetAssignmentByDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error) {
	return s.repo.GetByDriver(ctx, driverID)
}

// GetAssignmentByVehicle retrieves the assignment holding a vehicle
func (s *AssignmentService) GetAssignmentByVehicle(ctx context.Context, vehicleNo string) (*models.Assignment, error) {
	return s.repo.GetByVehicle(ctx, models.NormalizeVehicleNo(vehicleNo))
}

// ListAssignments lists all assignments
func (s *AssignmentService) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return s.repo.List(ctx)
}

// DriverStats aggregates completed jobs per driver
func (s *AssignmentService) DriverStats(ctx context.Context) ([]*models.DriverStats, error) {
	return s.repo.DriverStats(ctx)
}
