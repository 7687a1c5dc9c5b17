package models

import "time"

// Location represents a geographical coordinate with the time it was observed
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// LocationUpdate represents a location report event published for trackers
type LocationUpdate struct {
	VehicleNo string    `json:"vehicle_no"`
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Geohash   string    `json:"geohash"`
	CreatedAt time.Time `json:"created_at"`
}
