package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
type BookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) error
	Get(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Booking, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error)
	ListAll(ctx context.Context) ([]*models.Booking, error)

	// MarkInTransit applies pending → in-transit, binding the vehicle and
	// driver. Returns ErrInvalidTransition when the booking is not pending.
	MarkInTransit(ctx context.Context, id uuid.UUID, vehicleNo string, driverID uuid.UUID) error

	// MarkCompleted applies in-transit → completed. Returns
	// ErrInvalidTransition otherwise, including double completion.
	MarkCompleted(ctx context.Context, id uuid.UUID) error

	// OldestPendingByClass returns the earliest-created pending booking for a
	// vehicle class, or ErrNotFound when the backlog is empty.
	OldestPendingByClass(ctx context.Context, class models.VehicleClass) (*models.Booking, error)

	Stats(ctx context.Context) (*models.BookingStats, error)
}
