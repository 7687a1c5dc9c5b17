package utils

import (
	"fmt"
	"math"

	pkgerrors "github.com/logicraft/dispatch/internal/pkg/errors"
	"github.com/logicraft/dispatch/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// Earth's radius in kilometers
const earthRadiusKm = 6371.0

// TrackingGeohashPrecision gives roughly street-level cells, enough for the
// coarse tracking index alongside the exact coordinate.
const TrackingGeohashPrecision uint = 9

// ValidateCoordinate checks that a latitude/longitude pair is on the globe
func ValidateCoordinate(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: latitude %f out of range [-90,90]", pkgerrors.ErrInvalidCoordinate, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: longitude %f out of range [-180,180]", pkgerrors.ErrInvalidCoordinate, longitude)
	}
	return nil
}

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula.
func DistanceKm(a, b models.Location) (float64, error) {
	if err := ValidateCoordinate(a.Latitude, a.Longitude); err != nil {
		return 0, err
	}
	if err := ValidateCoordinate(b.Latitude, b.Longitude); err != nil {
		return 0, err
	}

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

// Cost returns the trip cost for a distance and vehicle class from the
// configured rate table.
func Cost(distanceKm float64, class models.VehicleClass, pricing models.PricingConfig) (float64, error) {
	rate, ok := pricing.RatePerKm(class)
	if !ok {
		return 0, fmt.Errorf("%w: %q", pkgerrors.ErrUnknownVehicleClass, class)
	}
	return distanceKm * rate, nil
}

// EncodeLocation converts a location to a geohash string at tracking precision
func EncodeLocation(location models.Location) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, TrackingGeohashPrecision)
}
