package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/logger"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/logicraft/dispatch/services/assignment"
)

const assignmentColumns = `driver_id, vehicle_no, booking_id, attached_at`

// postgres error code for unique_violation
const uniqueViolationCode = "23505"

const bookingColumns = `
	id, requester_id,
	pickup_latitude, pickup_longitude,
	dropoff_latitude, dropoff_longitude,
	vehicle_class, distance_km, cost, status,
	vehicle_no, driver_id,
	created_at, updated_at`

// AssignmentRepository implements the assignment repository interface on
// postgres. Its matching and completion operations own the cross-aggregate
// transaction spanning bookings, vehicles and assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateDriver inserts a driver together with an empty assignment slot
func (r *AssignmentRepository) CreateDriver(ctx context.Context, driver *models.Driver) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO drivers (driver_id, name, verified, created_at) VALUES ($1, $2, $3, $4)`,
		driver.ID, driver.Name, driver.Verified, driver.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert driver: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO assignments (driver_id) VALUES ($1)`, driver.ID)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	return tx.Commit()
}

// GetDriver retrieves a driver by id
func (r *AssignmentRepository) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.GetContext(ctx, &driver,
		`SELECT driver_id, name, verified, created_at FROM drivers WHERE driver_id = $1`, driverID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("driver %s: %w", driverID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// DeleteDriver removes a driver and its assignment. A driver whose
// assignment still carries a booking cannot be removed.
func (r *AssignmentRepository) DeleteDriver(ctx context.Context, driverID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dto models.AssignmentDTO
	err = tx.GetContext(ctx, &dto,
		`SELECT `+assignmentColumns+` FROM assignments WHERE driver_id = $1 FOR UPDATE`, driverID)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to get assignment: %w", err)
	}
	if err == nil && dto.BookingID.Valid {
		return fmt.Errorf("driver %s still carries booking %s: %w",
			driverID, dto.BookingID.UUID, pkgerrors.ErrInvalidTransition)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM assignments WHERE driver_id = $1`, driverID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM drivers WHERE driver_id = $1`, driverID)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("driver %s: %w", driverID, pkgerrors.ErrNotFound)
	}

	return tx.Commit()
}

// GetByDriver retrieves the assignment of a driver
func (r *AssignmentRepository) GetByDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error) {
	var dto models.AssignmentDTO
	err := r.db.GetContext(ctx, &dto,
		`SELECT `+assignmentColumns+` FROM assignments WHERE driver_id = $1`, driverID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assignment for driver %s: %w", driverID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return dto.ToAssignment(), nil
}

// GetByVehicle retrieves the assignment holding a vehicle
func (r *AssignmentRepository) GetByVehicle(ctx context.Context, vehicleNo string) (*models.Assignment, error) {
	var dto models.AssignmentDTO
	err := r.db.GetContext(ctx, &dto,
		`SELECT `+assignmentColumns+` FROM assignments WHERE vehicle_no = $1`, vehicleNo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assignment for vehicle %s: %w", vehicleNo, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return dto.ToAssignment(), nil
}

// List lists all assignments, earliest attached first
func (r *AssignmentRepository) List(ctx context.Context) ([]*models.Assignment, error) {
	var dtos []models.AssignmentDTO
	err := r.db.SelectContext(ctx, &dtos,
		`SELECT `+assignmentColumns+` FROM assignments ORDER BY attached_at ASC NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := make([]*models.Assignment, 0, len(dtos))
	for i := range dtos {
		assignments = append(assignments, dtos[i].ToAssignment())
	}
	return assignments, nil
}

// AttachVehicle binds a vehicle to a verified driver's empty assignment
func (r *AssignmentRepository) AttachVehicle(ctx context.Context, driverID uuid.UUID, vehicleNo string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var verified bool
	err = tx.GetContext(ctx, &verified,
		`SELECT verified FROM drivers WHERE driver_id = $1`, driverID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("driver %s: %w", driverID, pkgerrors.ErrNotFound)
		}
		return fmt.Errorf("failed to get driver: %w", err)
	}
	if !verified {
		return fmt.Errorf("driver %s: %w", driverID, pkgerrors.ErrDriverNotVerified)
	}

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_no = $1)`, vehicleNo)
	if err != nil {
		return fmt.Errorf("failed to check vehicle: %w", err)
	}
	if !exists {
		return fmt.Errorf("vehicle %s: %w", vehicleNo, pkgerrors.ErrUnknownVehicle)
	}

	var holder uuid.UUID
	err = tx.GetContext(ctx, &holder,
		`SELECT driver_id FROM assignments WHERE vehicle_no = $1`, vehicleNo)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to check vehicle assignment: %w", err)
	}
	if err == nil && holder != driverID {
		return fmt.Errorf("vehicle %s held by driver %s: %w",
			vehicleNo, holder, pkgerrors.ErrVehicleAlreadyAssigned)
	}

	// The booking_id guard keeps a busy assignment's vehicle fixed for the
	// duration of its trip. A rival attach that slipped past the holder
	// check is stopped by the unique constraint on vehicle_no.
	result, err := tx.ExecContext(ctx,
		`UPDATE assignments SET vehicle_no = $1, attached_at = NOW()
		 WHERE driver_id = $2 AND booking_id IS NULL`,
		vehicleNo, driverID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("vehicle %s: %w", vehicleNo, pkgerrors.ErrVehicleAlreadyAssigned)
		}
		return fmt.Errorf("failed to attach vehicle: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("assignment for driver %s carries a booking: %w",
			driverID, pkgerrors.ErrInvalidTransition)
	}

	return tx.Commit()
}

// matchCandidate is an idle assignment eligible for a booking
type matchCandidate struct {
	DriverID  uuid.UUID `db:"driver_id"`
	VehicleNo string    `db:"vehicle_no"`
}

// MatchBooking binds a pending booking to the earliest-attached idle
// assignment whose vehicle class matches. The guarded update on the
// assignment's booking slot is the sole serialization point: at most one
// concurrent match can claim a given idle assignment.
func (r *AssignmentRepository) MatchBooking(ctx context.Context, bookingID uuid.UUID) (*assignment.MatchResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var bookingDTO models.BookingDTO
	err = tx.GetContext(ctx, &bookingDTO,
		`SELECT`+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking %s: %w", bookingID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if bookingDTO.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking %s is %s: %w",
			bookingID, bookingDTO.Status, pkgerrors.ErrInvalidTransition)
	}

	var candidates []matchCandidate
	err = tx.SelectContext(ctx, &candidates, `
		SELECT a.driver_id, a.vehicle_no
		FROM assignments a
		JOIN vehicles v ON v.vehicle_no = a.vehicle_no
		JOIN drivers d ON d.driver_id = a.driver_id
		WHERE a.booking_id IS NULL
		  AND v.busy = FALSE
		  AND v.vehicle_class = $1
		  AND d.verified = TRUE
		ORDER BY a.attached_at ASC
		FOR UPDATE OF a SKIP LOCKED
	`, bookingDTO.VehicleClass)
	if err != nil {
		return nil, fmt.Errorf("failed to find idle assignments: %w", err)
	}

	for _, candidate := range candidates {
		// Compare-and-set on the booking slot: a rival transaction that
		// claimed this assignment makes the guarded update a no-op.
		result, err := tx.ExecContext(ctx,
			`UPDATE assignments SET booking_id = $1 WHERE driver_id = $2 AND booking_id IS NULL`,
			bookingID, candidate.DriverID)
		if err != nil {
			return nil, fmt.Errorf("failed to claim assignment: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to read rows affected: %w", err)
		}
		if rows == 0 {
			continue
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE vehicles SET busy = TRUE WHERE vehicle_no = $1`, candidate.VehicleNo); err != nil {
			return nil, fmt.Errorf("failed to mark vehicle busy: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE bookings
			SET status = $1, vehicle_no = $2, driver_id = $3, updated_at = NOW()
			WHERE id = $4 AND status = $5
		`, models.BookingStatusInTransit, candidate.VehicleNo, candidate.DriverID,
			bookingID, models.BookingStatusPending); err != nil {
			return nil, fmt.Errorf("failed to mark booking in-transit: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit match: %w", err)
		}

		logger.Info("Matched booking",
			logger.String("booking_id", bookingID.String()),
			logger.String("vehicle_no", candidate.VehicleNo),
			logger.String("driver_id", candidate.DriverID.String()))

		booking := bookingDTO.ToBooking()
		booking.Status = models.BookingStatusInTransit
		vehicleNo := candidate.VehicleNo
		driverID := candidate.DriverID
		booking.VehicleNo = &vehicleNo
		booking.DriverID = &driverID

		return &assignment.MatchResult{
			Booking: booking,
			Assignment: &models.Assignment{
				DriverID:  driverID,
				VehicleNo: &vehicleNo,
				BookingID: &bookingID,
			},
		}, nil
	}

	return nil, fmt.Errorf("no idle %s assignment: %w",
		bookingDTO.VehicleClass, pkgerrors.ErrNoVehicleAvailable)
}

// CompleteBooking closes an in-transit booking, frees its vehicle and clears
// the assignment's booking slot in one transaction.
func (r *AssignmentRepository) CompleteBooking(ctx context.Context, bookingID uuid.UUID) (*assignment.MatchResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var bookingDTO models.BookingDTO
	err = tx.GetContext(ctx, &bookingDTO,
		`SELECT`+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking %s: %w", bookingID, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if bookingDTO.Status != models.BookingStatusInTransit {
		return nil, fmt.Errorf("booking %s is %s: %w",
			bookingID, bookingDTO.Status, pkgerrors.ErrInvalidTransition)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, models.BookingStatusCompleted, bookingID, models.BookingStatusInTransit); err != nil {
		return nil, fmt.Errorf("failed to mark booking completed: %w", err)
	}

	if bookingDTO.VehicleNo.Valid {
		if _, err := tx.ExecContext(ctx,
			`UPDATE vehicles SET busy = FALSE WHERE vehicle_no = $1`, bookingDTO.VehicleNo.String); err != nil {
			return nil, fmt.Errorf("failed to free vehicle: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE assignments SET booking_id = NULL WHERE booking_id = $1`, bookingID); err != nil {
		return nil, fmt.Errorf("failed to clear assignment booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}

	logger.Info("Completed booking",
		logger.String("booking_id", bookingID.String()),
		logger.String("vehicle_no", bookingDTO.VehicleNo.String))

	booking := bookingDTO.ToBooking()
	booking.Status = models.BookingStatusCompleted

	result := &assignment.MatchResult{Booking: booking}
	if bookingDTO.DriverID.Valid {
		assignmentModel := &models.Assignment{DriverID: bookingDTO.DriverID.UUID}
		if bookingDTO.VehicleNo.Valid {
			vehicleNo := bookingDTO.VehicleNo.String
			assignmentModel.VehicleNo = &vehicleNo
		}
		result.Assignment = assignmentModel
	}
	return result, nil
}

// DriverStats aggregates completed jobs per driver
func (r *AssignmentRepository) DriverStats(ctx context.Context) ([]*models.DriverStats, error) {
	query := `
		SELECT d.driver_id, d.name,
			COUNT(b.id) FILTER (WHERE b.status = 'completed') AS completed_jobs
		FROM drivers d
		LEFT JOIN bookings b ON b.driver_id = d.driver_id
		GROUP BY d.driver_id, d.name
		ORDER BY completed_jobs DESC
	`

	var stats []*models.DriverStats
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate driver stats: %w", err)
	}
	return stats, nil
}
