package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/services/assignment"
	"github.com/logicraft/dispatch/services/booking"
	"github.com/logicraft/dispatch/services/dispatch"
	"github.com/logicraft/dispatch/services/location"
	"github.com/logicraft/dispatch/services/vehicle"
)

// DispatchService orchestrates the booking, vehicle, assignment and location
// services behind a single usecase surface. It owns the dispatch policy:
// match on request, re-match the freed vehicle on completion, and there is
// no background matching loop in between.
type DispatchService struct {
	bookingUC    booking.BookingUC
	vehicleUC    vehicle.VehicleUC
	assignmentUC assignment.AssignmentUC
	locationUC   location.LocationUC
	gateway      dispatch.DispatchGW
}

// NewDispatchService creates a new dispatch service
func NewDispatchService(
	bookingUC booking.BookingUC,
	vehicleUC vehicle.VehicleUC,
	assignmentUC assignment.AssignmentUC,
	locationUC location.LocationUC,
	gateway dispatch.DispatchGW,
) *DispatchService {
	return &DispatchService{
		bookingUC:    bookingUC,
		vehicleUC:    vehicleUC,
		assignmentUC: assignmentUC,
		locationUC:   locationUC,
		gateway:      gateway,
	}
}

// RequestBooking creates a booking and immediately attempts to match it
func (s *DispatchService) RequestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	created, err := s.bookingUC.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}
	s.publishBookingEvent(s.gateway.PublishBookingCreated, created)

	result, err := s.assignmentUC.MatchBooking(ctx, created.ID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNoVehicleAvailable) {
			logger.Info("Booking queued, no vehicle available",
				logger.String("booking_id", created.ID.String()),
				logger.String("vehicle_class", string(created.VehicleClass)))
			return &models.BookingResponse{Booking: created, Matched: false}, nil
		}
		return nil, err
	}

	s.publishBookingEvent(s.gateway.PublishBookingMatched, result.Booking)
	return &models.BookingResponse{Booking: result.Booking, Matched: true}, nil
}

// CompleteJob closes a booking and re-dispatches the freed vehicle
func (s *DispatchService) CompleteJob(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	result, err := s.assignmentUC.CompleteBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	s.publishBookingEvent(s.gateway.PublishBookingCompleted, result.Booking)

	s.rematchFreedClass(ctx, result.Booking.VehicleClass)

	return result.Booking, nil
}

// rematchFreedClass hands the vehicle freed by a completion to the oldest
// pending booking of the same class. Failures only log: the pending booking
// is picked up again by the next completion or request of its class.
func (s *DispatchService) rematchFreedClass(ctx context.Context, class models.VehicleClass) {
	pending, err := s.bookingUC.OldestPendingByClass(ctx, class)
	if err != nil {
		if !errors.Is(err, pkgerrors.ErrNotFound) {
			logger.Warn("Failed to look up pending bookings",
				logger.String("vehicle_class", string(class)),
				logger.Err(err))
		}
		return
	}

	result, err := s.assignmentUC.MatchBooking(ctx, pending.ID)
	if err != nil {
		if !errors.Is(err, pkgerrors.ErrNoVehicleAvailable) &&
			!errors.Is(err, pkgerrors.ErrInvalidTransition) {
			logger.Warn("Failed to re-match pending booking",
				logger.String("booking_id", pending.ID.String()),
				logger.Err(err))
		}
		return
	}

	s.publishBookingEvent(s.gateway.PublishBookingMatched, result.Booking)
}

// GetBooking retrieves a booking by id
func (s *DispatchService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.bookingUC.GetBooking(ctx, id)
}

// ListBookingsByRequester lists a requester's bookings, oldest first
func (s *DispatchService) ListBookingsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Booking, error) {
	return s.bookingUC.ListByRequester(ctx, requesterID)
}

// ListBookingsByDriver lists a driver's bookings, oldest first
func (s *DispatchService) ListBookingsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error) {
	return s.bookingUC.ListByDriver(ctx, driverID)
}

// ListBookings lists all bookings, oldest first
func (s *DispatchService) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.bookingUC.ListAll(ctx)
}

// RegisterDriver creates a driver with an empty assignment
func (s *DispatchService) RegisterDriver(ctx context.Context, req models.RegisterDriverRequest) (*models.Driver, error) {
	return s.assignmentUC.RegisterDriver(ctx, req.Name, req.Verified)
}

// RemoveDriver deletes a driver and their assignment. Refused while the
// assignment still carries a booking.
func (s *DispatchService) RemoveDriver(ctx context.Context, driverID uuid.UUID) error {
	return s.assignmentUC.RemoveDriver(ctx, driverID)
}

// AssignVehicleToDriver attaches a vehicle to a driver and, when pending
// bookings of the vehicle's class are waiting, dispatches it immediately.
func (s *DispatchService) AssignVehicleToDriver(ctx context.Context, driverID uuid.UUID, vehicleNo string) (*models.Assignment, error) {
	if err := s.assignmentUC.AttachVehicle(ctx, driverID, vehicleNo); err != nil {
		return nil, err
	}

	assigned, err := s.assignmentUC.GetAssignmentByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	if assigned.VehicleNo != nil {
		vehicleModel, err := s.vehicleUC.GetVehicle(ctx, *assigned.VehicleNo)
		if err == nil {
			s.rematchFreedClass(ctx, vehicleModel.Class)
		}
	}

	return assigned, nil
}

// GetAssignmentByDriver retrieves a driver's assignment
func (s *DispatchService) GetAssignmentByDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error) {
	return s.assignmentUC.GetAssignmentByDriver(ctx, driverID)
}

// GetAssignmentByVehicle looks up the assignment holding a vehicle
func (s *DispatchService) GetAssignmentByVehicle(ctx context.Context, vehicleNo string) (*models.Assignment, error) {
	return s.assignmentUC.GetAssignmentByVehicle(ctx, vehicleNo)
}

// ListAssignments lists all assignments
func (s *DispatchService) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return s.assignmentUC.ListAssignments(ctx)
}

// AddVehicle registers a vehicle in the fleet
func (s *DispatchService) AddVehicle(ctx context.Context, req models.AddVehicleRequest) (*models.Vehicle, error) {
	return s.vehicleUC.AddVehicle(ctx, req.VehicleNo, models.VehicleClass(req.VehicleClass))
}

// GetVehicle retrieves a vehicle by number
func (s *DispatchService) GetVehicle(ctx context.Context, vehicleNo string) (*models.Vehicle, error) {
	return s.vehicleUC.GetVehicle(ctx, vehicleNo)
}

// ListVehicles lists the registered fleet
func (s *DispatchService) ListVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicleUC.ListVehicles(ctx)
}

// ListFreeVehicles lists idle vehicles of a class in registration order
func (s *DispatchService) ListFreeVehicles(ctx context.Context, class models.VehicleClass) ([]*models.Vehicle, error) {
	return s.vehicleUC.ListFree(ctx, class)
}

// ReportLocation records a driver's coordinate and fans it out to trackers
func (s *DispatchService) ReportLocation(ctx context.Context, req models.ReportLocationRequest) (*models.LocationUpdate, error) {
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver id %q: %w", req.DriverID, pkgerrors.ErrNotFound)
	}

	update, err := s.locationUC.ReportLocation(ctx, driverID, models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return nil, err
	}

	if err := s.gateway.PublishLocationUpdate(*update); err != nil {
		logger.Warn("Failed to publish location update",
			logger.String("vehicle_no", update.VehicleNo),
			logger.Err(err))
	}

	return update, nil
}

// VehicleCoordinate returns a vehicle's last reported coordinate
func (s *DispatchService) VehicleCoordinate(ctx context.Context, vehicleNo string) (*models.Location, error) {
	return s.locationUC.CurrentCoordinate(ctx, vehicleNo)
}

// NearbyVehicles lists vehicle numbers within radiusKm of a point,
// nearest first.
func (s *DispatchService) NearbyVehicles(ctx context.Context, latitude, longitude, radiusKm float64) ([]string, error) {
	return s.locationUC.NearbyVehicles(ctx, latitude, longitude, radiusKm)
}

// BookingStats aggregates booking counts and completed revenue
func (s *DispatchService) BookingStats(ctx context.Context) (*models.BookingStats, error) {
	return s.bookingUC.Stats(ctx)
}

// VehicleStats aggregates fleet counts per class
func (s *DispatchService) VehicleStats(ctx context.Context) ([]*models.VehicleClassStats, error) {
	return s.vehicleUC.Stats(ctx)
}

// DriverStats aggregates completed jobs per driver
func (s *DispatchService) DriverStats(ctx context.Context) ([]*models.DriverStats, error) {
	return s.assignmentUC.DriverStats(ctx)
}

func (s *DispatchService) publishBookingEvent(publish func(models.BookingEvent) error, b *models.Booking) {
	event := models.BookingEvent{
		BookingID:   b.ID.String(),
		RequesterID: b.RequesterID.String(),
		Status:      b.Status,
		DistanceKm:  b.DistanceKm,
		Cost:        b.Cost,
	}
	if b.VehicleNo != nil {
		event.VehicleNo = *b.VehicleNo
	}
	if b.DriverID != nil {
		event.DriverID = b.DriverID.String()
	}
	if err := publish(event); err != nil {
		logger.Warn("Failed to publish booking event",
			logger.String("booking_id", event.BookingID),
			logger.String("status", string(event.Status)),
			logger.Err(err))
	}
}
