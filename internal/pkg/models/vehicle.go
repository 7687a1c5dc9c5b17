package models

import (
	"strings"
	"time"
)

// VehicleClass represents the capacity tier of a vehicle
type VehicleClass string

const (
	VehicleClassSmall  VehicleClass = "small"
	VehicleClassMedium VehicleClass = "medium"
	VehicleClassLarge  VehicleClass = "large"
)

// IsValid returns true if the class is one of the known capacity tiers
func (c VehicleClass) IsValid() bool {
	switch c {
	case VehicleClassSmall, VehicleClassMedium, VehicleClassLarge:
		return true
	}
	return false
}

// Vehicle represents a registered vehicle. Coordinate is nil until the
// vehicle's driver sends its first location report.
type Vehicle struct {
	VehicleNo    string       `json:"vehicle_no" db:"vehicle_no"`
	Class        VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	Busy         bool         `json:"busy" db:"busy"`
	Coordinate   *Location    `json:"coordinate,omitempty"`
	RegisteredAt time.Time    `json:"registered_at" db:"registered_at"`
}

// NormalizeVehicleNo upper-cases and trims a vehicle number so that the same
// plate always maps to the same registry key.
func NormalizeVehicleNo(vehicleNo string) string {
	return strings.ToUpper(strings.TrimSpace(vehicleNo))
}

// VehicleClassStats holds per-class fleet counts for the analytics queries
type VehicleClassStats struct {
	Class VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	Total int          `json:"total" db:"total"`
	Busy  int          `json:"busy" db:"busy"`
	Free  int          `json:"free" db:"free"`
}
