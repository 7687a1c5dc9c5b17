package models

// CoordinateRequest is the lat/lng pair accepted on the request boundary
type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// BookingRequest is the payload for creating a booking
type BookingRequest struct {
	RequesterID  string            `json:"requester_id" validate:"required,uuid4_rfc4122|uuid"`
	Pickup       CoordinateRequest `json:"pickup" validate:"required"`
	Dropoff      CoordinateRequest `json:"dropoff" validate:"required"`
	VehicleClass string            `json:"vehicle_class" validate:"required,oneof=small medium large"`
}

// BookingResponse is returned after a booking is created. Matched reports
// whether the synchronous best-effort match bound a vehicle; when false the
// booking stays pending until a vehicle of its class becomes idle.
type BookingResponse struct {
	Booking *Booking `json:"booking"`
	Matched bool     `json:"matched"`
}

// AssignVehicleRequest is the payload for attaching a vehicle to a driver
type AssignVehicleRequest struct {
	VehicleNo string `json:"vehicle_no" validate:"required"`
}

// AddVehicleRequest is the payload for registering a vehicle
type AddVehicleRequest struct {
	VehicleNo    string `json:"vehicle_no" validate:"required"`
	VehicleClass string `json:"vehicle_class" validate:"required,oneof=small medium large"`
}

// RegisterDriverRequest is the payload for registering a driver
type RegisterDriverRequest struct {
	Name     string `json:"name" validate:"required"`
	Verified bool   `json:"verified"`
}

// ReportLocationRequest is the payload for a periodic driver location report
type ReportLocationRequest struct {
	DriverID  string  `json:"driver_id" validate:"required,uuid4_rfc4122|uuid"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// BookingEvent is published on booking lifecycle changes
type BookingEvent struct {
	BookingID   string        `json:"booking_id"`
	RequesterID string        `json:"requester_id"`
	Status      BookingStatus `json:"status"`
	VehicleNo   string        `json:"vehicle_no,omitempty"`
	DriverID    string        `json:"driver_id,omitempty"`
	DistanceKm  float64       `json:"distance_km"`
	Cost        float64       `json:"cost"`
}
