package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

const bookingColumns = `
	id, requester_id,
	pickup_latitude, pickup_longitude,
	dropoff_latitude, dropoff_longitude,
	vehicle_class, distance_km, cost, status,
	vehicle_no, driver_id,
	created_at, updated_at`

// BookingRepository implements the booking repository interface on postgres
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, requester_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			vehicle_class, distance_km, cost, status,
			vehicle_no, driver_id,
			created_at, updated_at
		) VALUES (
			:id, :requester_id,
			:pickup_latitude, :pickup_longitude,
			:dropoff_latitude, :dropoff_longitude,
			:vehicle_class, :distance_km, :cost, :status,
			:vehicle_no, :driver_id,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, booking.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// Get retrieves a booking by id
func (r *BookingRepository) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE id = $1`

	var dto models.BookingDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return dto.ToBooking(), nil
}

// ListByRequester lists bookings for a requester, oldest first
func (r *BookingRepository) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE requester_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, requesterID)
}

// ListByDriver lists bookings carried by a driver, oldest first
func (r *BookingRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings WHERE driver_id = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, driverID)
}

// ListAll lists every booking, oldest first
func (r *BookingRepository) ListAll(ctx context.Context) ([]*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM bookings ORDER BY created_at ASC`
	return r.list(ctx, query)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Booking, error) {
	var dtos []models.BookingDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*models.Booking, 0, len(dtos))
	for i := range dtos {
		bookings = append(bookings, dtos[i].ToBooking())
	}
	return bookings, nil
}

// MarkInTransit applies the pending → in-transit transition. The status guard
// in the WHERE clause keeps the update atomic with respect to concurrent
// writers; zero rows affected means the booking was not pending (or missing).
func (r *BookingRepository) MarkInTransit(ctx context.Context, id uuid.UUID, vehicleNo string, driverID uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = $1, vehicle_no = $2, driver_id = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		models.BookingStatusInTransit, vehicleNo, driverID, id, models.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark booking in-transit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking %s is not pending: %w", id, pkgerrors.ErrInvalidTransition)
	}
	return nil
}

// MarkCompleted applies the in-transit → completed transition with the same
// guarded-update pattern, which also rejects double completion.
func (r *BookingRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query,
		models.BookingStatusCompleted, id, models.BookingStatusInTransit)
	if err != nil {
		return fmt.Errorf("failed to mark booking completed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("booking %s is not in-transit: %w", id, pkgerrors.ErrInvalidTransition)
	}
	return nil
}

// OldestPendingByClass returns the head of the pending backlog for a class
func (r *BookingRepository) OldestPendingByClass(ctx context.Context, class models.VehicleClass) (*models.Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM bookings
		WHERE status = $1 AND vehicle_class = $2
		ORDER BY created_at ASC
		LIMIT 1`

	var dto models.BookingDTO
	if err := r.db.GetContext(ctx, &dto, query, models.BookingStatusPending, class); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no pending %s booking: %w", class, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pending booking: %w", err)
	}

	return dto.ToBooking(), nil
}

// Stats aggregates booking counts and completed revenue
func (r *BookingRepository) Stats(ctx context.Context) (*models.BookingStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'in-transit') AS in_transit,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COALESCE(SUM(cost) FILTER (WHERE status = 'completed'), 0) AS revenue
		FROM bookings
	`

	var stats models.BookingStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	return &stats, nil
}
