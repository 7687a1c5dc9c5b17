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
	"github.com/logicraft/dispatch/services/booking"
)

// BookingService implements the booking.BookingUC interface
type BookingService struct {
	cfg  *models.Config
	repo booking.BookingRepo
}

// NewBookingService creates a new booking use case
func NewBookingService(cfg *models.Config, repo booking.BookingRepo) *BookingService {
	return &BookingService{
		cfg:  cfg,
		repo: repo,
	}
}

// CreateBooking validates the request, computes distance and cost, and stores
// the booking with status pending.
func (s *BookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		return nil, fmt.Errorf("invalid requester id %q: %w", req.RequesterID, pkgerrors.ErrNotFound)
	}

	class := models.VehicleClass(req.VehicleClass)
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: %q", pkgerrors.ErrUnknownVehicleClass, req.VehicleClass)
	}

	now := time.Now()
	pickup := models.Location{Latitude: req.Pickup.Latitude, Longitude: req.Pickup.Longitude, Timestamp: now}
	dropoff := models.Location{Latitude: req.Dropoff.Latitude, Longitude: req.Dropoff.Longitude, Timestamp: now}

	distanceKm, err := utils.DistanceKm(pickup, dropoff)
	if err != nil {
		return nil, err
	}

	cost, err := utils.Cost(distanceKm, class, s.cfg.Pricing)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:           uuid.New(),
		RequesterID:  requesterID,
		Pickup:       pickup,
		Dropoff:      dropoff,
		VehicleClass: class,
		DistanceKm:   distanceKm,
		Cost:         cost,
		Status:       models.BookingStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Created booking",
		logger.String("booking_id", b.ID.String()),
		logger.String("vehicle_class", string(class)),
		logger.Float64("distance_km", distanceKm),
		logger.Float64("cost", cost))

	return b, nil
}

// GetBooking retrieves a booking by id
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.repo.Get(ctx, id)
}

// ListByRequester lists bookings created by a requester
func (s *BookingService) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Booking, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}

// ListByDriver lists bookings carried by a driver
func (s *BookingService) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error) {
	return s.repo.ListByDriver(ctx, driverID)
}

// ListAll lists every booking
func (s *BookingService) ListAll(ctx context.Context) ([]*models.Booking, error) {
	return s.repo.ListAll(ctx)
}

// OldestPendingByClass returns the head of the pending backlog for a class
func (s *BookingService) OldestPendingByClass(ctx context.Context, class models.VehicleClass) (*models.Booking, error) {
	return s.repo.OldestPendingByClass(ctx, class)
}

// Stats returns booking analytics
func (s *BookingService) Stats(ctx context.Context) (*models.BookingStats, error) {
	return s.repo.Stats(ctx)
}
