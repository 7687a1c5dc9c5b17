package assignment

import (
	"context"

	"github.com/google/uuid"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// MatchResult reports the outcome of a successful match or completion:
// the booking together with the assignment that now carries (or carried) it.
type MatchResult struct {
	Booking    *models.Booking
	Assignment *models.Assignment
}

// AssignmentRepo defines the interface for assignment and driver data access.
// MatchBooking and CompleteBooking span the bookings, vehicles and
// assignments tables inside a single transaction; they are the only writers
// that touch more than one aggregate at once.
type AssignmentRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	DeleteDriver(ctx context.Context, driverID uuid.UUID) error

	GetByDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error)
	GetByVehicle(ctx context.Context, vehicleNo string) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)

	// AttachVehicle binds a vehicle to a verified driver's assignment.
	// Fails with ErrDriverNotVerified, ErrUnknownVehicle or
	// ErrVehicleAlreadyAssigned.
	AttachVehicle(ctx context.Context, driverID uuid.UUID, vehicleNo string) error

	// MatchBooking binds the pending booking to the earliest-attached idle
	// assignment of the matching class. The booking-id column acts as the
	// compare-and-set slot: a concurrent match that has already claimed the
	// assignment makes the guarded update affect zero rows, and the next
	// candidate is tried. Returns ErrNoVehicleAvailable when no idle
	// assignment can take the booking.
	MatchBooking(ctx context.Context, bookingID uuid.UUID) (*MatchResult, error)

	// CompleteBooking closes an in-transit booking: booking completed,
	// vehicle freed, assignment's booking slot cleared.
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*MatchResult, error)

	DriverStats(ctx context.Context) ([]*models.DriverStats, error)
}
