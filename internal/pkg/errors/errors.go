// Package errors defines the dispatch domain error taxonomy. Callers match
// with errors.Is; the HTTP layer maps each sentinel to a status code.
package errors

import "errors"

var (
	// ErrInvalidCoordinate is returned for latitudes outside [-90,90] or
	// longitudes outside [-180,180]
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrUnknownVehicleClass is returned when a class is not in the rate table
	ErrUnknownVehicleClass = errors.New("unknown vehicle class")

	// ErrDuplicateVehicle is returned when a vehicle number is already registered
	ErrDuplicateVehicle = errors.New("vehicle already exists")

	// ErrUnknownVehicle is returned when a vehicle number is not registered
	ErrUnknownVehicle = errors.New("vehicle not found")

	// ErrVehicleAlreadyAssigned is returned when a vehicle is attached to
	// another driver's assignment
	ErrVehicleAlreadyAssigned = errors.New("vehicle already assigned to another driver")

	// ErrDriverNotVerified is returned when attaching a vehicle to an
	// unverified driver
	ErrDriverNotVerified = errors.New("driver is not verified")

	// ErrNoVehicleAvailable signals a legitimate backlog state: no idle
	// assignment of the requested class exists right now. Not a defect; the
	// booking stays pending and matching is re-attempted later.
	ErrNoVehicleAvailable = errors.New("no vehicle available")

	// ErrInvalidTransition is returned when a booking or assignment state
	// change violates the state machine
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrNoActiveAssignment is returned when a driver has no idle or busy
	// assignment to report locations against
	ErrNoActiveAssignment = errors.New("no active assignment for driver")

	// ErrNoCoordinateYet is returned when a vehicle has never reported a location
	ErrNoCoordinateYet = errors.New("vehicle has not reported a location yet")

	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
)
