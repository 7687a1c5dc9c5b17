package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusInTransit BookingStatus = "in-transit"
	BookingStatusCompleted BookingStatus = "completed"
)

// CanTransitionTo returns true if the lifecycle permits moving from this
// status to the target. The only legal path is pending → in-transit → completed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return target == BookingStatusInTransit
	case BookingStatusInTransit:
		return target == BookingStatusCompleted
	}
	return false
}

// Booking represents a transport job from creation to completion
type Booking struct {
	ID           uuid.UUID     `json:"booking_id"`
	RequesterID  uuid.UUID     `json:"requester_id"`
	Pickup       Location      `json:"pickup"`
	Dropoff      Location      `json:"dropoff"`
	VehicleClass VehicleClass  `json:"vehicle_class"`
	DistanceKm   float64       `json:"distance_km"`
	Cost         float64       `json:"cost"`
	Status       BookingStatus `json:"status"`
	VehicleNo    *string       `json:"vehicle_no,omitempty"`
	DriverID     *uuid.UUID    `json:"driver_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// BookingDTO flattens a Booking for database operations
type BookingDTO struct {
	ID               uuid.UUID      `db:"id"`
	RequesterID      uuid.UUID      `db:"requester_id"`
	PickupLatitude   float64        `db:"pickup_latitude"`
	PickupLongitude  float64        `db:"pickup_longitude"`
	DropoffLatitude  float64        `db:"dropoff_latitude"`
	DropoffLongitude float64        `db:"dropoff_longitude"`
	VehicleClass     VehicleClass   `db:"vehicle_class"`
	DistanceKm       float64        `db:"distance_km"`
	Cost             float64        `db:"cost"`
	Status           BookingStatus  `db:"status"`
	VehicleNo        sql.NullString `db:"vehicle_no"`
	DriverID         uuid.NullUUID  `db:"driver_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// ToDTO converts a Booking to its database representation
func (b *Booking) ToDTO() *BookingDTO {
	dto := &BookingDTO{
		ID:               b.ID,
		RequesterID:      b.RequesterID,
		PickupLatitude:   b.Pickup.Latitude,
		PickupLongitude:  b.Pickup.Longitude,
		DropoffLatitude:  b.Dropoff.Latitude,
		DropoffLongitude: b.Dropoff.Longitude,
		VehicleClass:     b.VehicleClass,
		DistanceKm:       b.DistanceKm,
		Cost:             b.Cost,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if b.VehicleNo != nil {
		dto.VehicleNo = sql.NullString{String: *b.VehicleNo, Valid: true}
	}
	if b.DriverID != nil {
		dto.DriverID = uuid.NullUUID{UUID: *b.DriverID, Valid: true}
	}
	return dto
}

// ToBooking converts a BookingDTO back to the domain model
func (dto *BookingDTO) ToBooking() *Booking {
	b := &Booking{
		ID:          dto.ID,
		RequesterID: dto.RequesterID,
		Pickup: Location{
			Latitude:  dto.PickupLatitude,
			Longitude: dto.PickupLongitude,
			Timestamp: dto.CreatedAt,
		},
		Dropoff: Location{
			Latitude:  dto.DropoffLatitude,
			Longitude: dto.DropoffLongitude,
			Timestamp: dto.CreatedAt,
		},
		VehicleClass: dto.VehicleClass,
		DistanceKm:   dto.DistanceKm,
		Cost:         dto.Cost,
		Status:       dto.Status,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
	if dto.VehicleNo.Valid {
		vehicleNo := dto.VehicleNo.String
		b.VehicleNo = &vehicleNo
	}
	if dto.DriverID.Valid {
		driverID := dto.DriverID.UUID
		b.DriverID = &driverID
	}
	return b
}

// BookingStats holds aggregate booking counts and revenue for analytics
type BookingStats struct {
	Total     int     `json:"total" db:"total"`
	Pending   int     `json:"pending" db:"pending"`
	InTransit int     `json:"in_transit" db:"in_transit"`
	Completed int     `json:"completed" db:"completed"`
	Revenue   float64 `json:"revenue" db:"revenue"`
}
