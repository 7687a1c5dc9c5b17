package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// AssignmentState represents the availability state of a driver's assignment
type AssignmentState string

const (
	// AssignmentStateUnverified means the driver has no vehicle attached yet
	AssignmentStateUnverified AssignmentState = "unverified"
	// AssignmentStateIdle means a vehicle is attached and free for matching
	AssignmentStateIdle AssignmentState = "idle"
	// AssignmentStateBusy means the attached vehicle is carrying a booking
	AssignmentStateBusy AssignmentState = "busy"
)

// Assignment binds a driver to a vehicle and, transiently, to an active
// booking. At most one assignment exists per driver.
type Assignment struct {
	DriverID   uuid.UUID  `json:"driver_id"`
	VehicleNo  *string    `json:"vehicle_no,omitempty"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty"`
	AttachedAt *time.Time `json:"attached_at,omitempty"`
}

// State derives the assignment state from its bindings
func (a *Assignment) State() AssignmentState {
	if a.VehicleNo == nil {
		return AssignmentStateUnverified
	}
	if a.BookingID != nil {
		return AssignmentStateBusy
	}
	return AssignmentStateIdle
}

// AssignmentDTO flattens an Assignment for database operations
type AssignmentDTO struct {
	DriverID   uuid.UUID      `db:"driver_id"`
	VehicleNo  sql.NullString `db:"vehicle_no"`
	BookingID  uuid.NullUUID  `db:"booking_id"`
	AttachedAt sql.NullTime   `db:"attached_at"`
}

// ToAssignment converts an AssignmentDTO back to the domain model
func (dto *AssignmentDTO) ToAssignment() *Assignment {
	a := &Assignment{DriverID: dto.DriverID}
	if dto.VehicleNo.Valid {
		vehicleNo := dto.VehicleNo.String
		a.VehicleNo = &vehicleNo
	}
	if dto.BookingID.Valid {
		bookingID := dto.BookingID.UUID
		a.BookingID = &bookingID
	}
	if dto.AttachedAt.Valid {
		attachedAt := dto.AttachedAt.Time
		a.AttachedAt = &attachedAt
	}
	return a
}

// Driver is the identity record the dispatch core needs: an id and whether
// the driver is eligible to carry an assignment.
type Driver struct {
	ID        uuid.UUID `json:"driver_id" db:"driver_id"`
	Name      string    `json:"name" db:"name"`
	Verified  bool      `json:"verified" db:"verified"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DriverStats holds per-driver completed job counts for analytics
type DriverStats struct {
	DriverID      uuid.UUID `json:"driver_id" db:"driver_id"`
	Name          string    `json:"name" db:"name"`
	CompletedJobs int       `json:"completed_jobs" db:"completed_jobs"`
}
