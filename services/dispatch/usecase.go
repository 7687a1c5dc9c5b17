package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// DispatchUC is the façade over booking, vehicle, assignment and location
// logic. Handlers talk to this interface only.
type DispatchUC interface {
	// RequestBooking creates a booking and immediately attempts a match.
	// When no vehicle is idle the booking stays pending and the response
	// reports Matched=false.
	RequestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error)

	// CompleteJob closes an in-transit booking and hands the freed vehicle
	// to the oldest pending booking of the same class, if any.
	CompleteJob(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)

	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookingsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Booking, error)
	ListBookingsByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)

	RegisterDriver(ctx context.Context, req models.RegisterDriverRequest) (*models.Driver, error)
	RemoveDriver(ctx context.Context, driverID uuid.UUID) error
	AssignVehicleToDriver(ctx context.Context, driverID uuid.UUID, vehicleNo string) (*models.Assignment, error)
	GetAssignmentByDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error)
	GetAssignmentByVehicle(ctx context.Context, vehicleNo string) (*models.Assignment, error)
	ListAssignments(ctx context.Context) ([]*models.Assignment, error)

	AddVehicle(ctx context.Context, req models.AddVehicleRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, vehicleNo string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*models.Vehicle, error)
	ListFreeVehicles(ctx context.Context, class models.VehicleClass) ([]*models.Vehicle, error)

	ReportLocation(ctx context.Context, req models.ReportLocationRequest) (*models.LocationUpdate, error)
	VehicleCoordinate(ctx context.Context, vehicleNo string) (*models.Location, error)
	NearbyVehicles(ctx context.Context, latitude, longitude, radiusKm float64) ([]string, error)

	BookingStats(ctx context.Context) (*models.BookingStats, error)
	VehicleStats(ctx context.Context) ([]*models.VehicleClassStats, error)
	DriverStats(ctx context.Context) ([]*models.DriverStats, error)
}
