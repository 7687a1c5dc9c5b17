package assignment

import (
	"context"

	"github.com/google/uuid"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// AssignmentUC defines the interface for assignment matching business logic
type AssignmentUC interface {
	RegisterDriver(ctx context.Context, name string, verified bool) (*models.Driver, error)
	RemoveDriver(ctx context.Context, driverID uuid.UUID) error
	AttachVehicle(ctx context.Context, driverID uuid.UUID, vehicleNo string) error

	MatchBooking(ctx context.Context, bookingID uuid.UUID) (*MatchResult, error)
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*MatchResult, error)

	GetAssignmentByDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error)
	GetAssignmentByVehicle(ctx context.Context, vehicleNo string) (*models.Assignment, error)
	ListAssignments(ctx context.Context) ([]*models.Assignment, error)
	DriverStats(ctx context.Context) ([]*models.DriverStats, error)
}
