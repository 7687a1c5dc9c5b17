package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
)

// vehicleDTO flattens a Vehicle row including the nullable coordinate mirror
type vehicleDTO struct {
	VehicleNo     string              `db:"vehicle_no"`
	Class         models.VehicleClass `db:"vehicle_class"`
	Busy          bool                `db:"busy"`
	LastLatitude  sql.NullFloat64     `db:"last_latitude"`
	LastLongitude sql.NullFloat64     `db:"last_longitude"`
	LastSeenAt    sql.NullTime        `db:"last_seen_at"`
	RegisteredAt  sql.NullTime        `db:"registered_at"`
}

func (dto *vehicleDTO) toVehicle() *models.Vehicle {
	v := &models.Vehicle{
		VehicleNo: dto.VehicleNo,
		Class:     dto.Class,
		Busy:      dto.Busy,
	}
	if dto.RegisteredAt.Valid {
		v.RegisteredAt = dto.RegisteredAt.Time
	}
	if dto.LastLatitude.Valid && dto.LastLongitude.Valid {
		v.Coordinate = &models.Location{
			Latitude:  dto.LastLatitude.Float64,
			Longitude: dto.LastLongitude.Float64,
		}
		if dto.LastSeenAt.Valid {
			v.Coordinate.Timestamp = dto.LastSeenAt.Time
		}
	}
	return v
}

const vehicleColumns = `
	vehicle_no, vehicle_class, busy,
	last_latitude, last_longitude, last_seen_at,
	registered_at`

// VehicleRepository implements the vehicle repository interface on postgres
type VehicleRepository struct {
	db *sqlx.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Add registers a vehicle. The primary key on vehicle_no enforces uniqueness;
// a conflicting insert affects zero rows and maps to ErrDuplicateVehicle.
func (r *VehicleRepository) Add(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_no, vehicle_class, busy, registered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (vehicle_no) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, query,
		vehicle.VehicleNo, vehicle.Class, vehicle.Busy, vehicle.RegisteredAt)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vehicle %s: %w", vehicle.VehicleNo, pkgerrors.ErrDuplicateVehicle)
	}
	return nil
}

// Get retrieves a vehicle by its normalized number
func (r *VehicleRepository) Get(ctx context.Context, vehicleNo string) (*models.Vehicle, error) {
	query := `SELECT` + vehicleColumns + ` FROM vehicles WHERE vehicle_no = $1`

	var dto vehicleDTO
	if err := r.db.GetContext(ctx, &dto, query, vehicleNo); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("vehicle %s: %w", vehicleNo, pkgerrors.ErrUnknownVehicle)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return dto.toVehicle(), nil
}

// List lists all vehicles in registration order
func (r *VehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	query := `SELECT` + vehicleColumns + ` FROM vehicles ORDER BY registered_at ASC`
	return r.list(ctx, query)
}

// ListFree lists free vehicles of a class, first registered first
func (r *VehicleRepository) ListFree(ctx context.Context, class models.VehicleClass) ([]*models.Vehicle, error) {
	query := `SELECT` + vehicleColumns + `
		FROM vehicles
		WHERE busy = FALSE AND vehicle_class = $1
		ORDER BY registered_at ASC`
	return r.list(ctx, query, class)
}

func (r *VehicleRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Vehicle, error) {
	var dtos []vehicleDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*models.Vehicle, 0, len(dtos))
	for i := range dtos {
		vehicles = append(vehicles, dtos[i].toVehicle())
	}
	return vehicles, nil
}

// SetBusy flips the busy flag of a vehicle
func (r *VehicleRepository) SetBusy(ctx context.Context, vehicleNo string, busy bool) error {
	query := `UPDATE vehicles SET busy = $1 WHERE vehicle_no = $2`

	result, err := r.db.ExecContext(ctx, query, busy, vehicleNo)
	if err != nil {
		return fmt.Errorf("failed to update vehicle busy flag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vehicle %s: %w", vehicleNo, pkgerrors.ErrUnknownVehicle)
	}
	return nil
}

// UpdateCoordinate mirrors the last reported coordinate onto the vehicle row
func (r *VehicleRepository) UpdateCoordinate(ctx context.Context, vehicleNo string, location *models.Location) error {
	query := `
		UPDATE vehicles
		SET last_latitude = $1, last_longitude = $2, last_seen_at = $3
		WHERE vehicle_no = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		location.Latitude, location.Longitude, location.Timestamp, vehicleNo)
	if err != nil {
		return fmt.Errorf("failed to update vehicle coordinate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vehicle %s: %w", vehicleNo, pkgerrors.ErrUnknownVehicle)
	}
	return nil
}

// Stats aggregates fleet counts per vehicle class
func (r *VehicleRepository) Stats(ctx context.Context) ([]*models.VehicleClassStats, error) {
	query := `
		SELECT
			vehicle_class,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE busy) AS busy,
			COUNT(*) FILTER (WHERE NOT busy) AS free
		FROM vehicles
		GROUP BY vehicle_class
		ORDER BY vehicle_class
	`

	var stats []*models.VehicleClassStats
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate vehicle stats: %w", err)
	}
	return stats, nil
}
