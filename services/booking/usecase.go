package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic
type BookingUC interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Booking, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error)
	ListAll(ctx context.Context) ([]*models.Booking, error)
	OldestPendingByClass(ctx context.Context, class models.VehicleClass) (*models.Booking, error)
	Stats(ctx context.Context) (*models.BookingStats, error)
}
