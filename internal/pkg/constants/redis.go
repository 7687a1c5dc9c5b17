package constants

// Redis key formats
const (
	KeyVehicleLocation = "vehicle:location:%s" // Format: vehicle:location:{vehicle_no}
	KeyVehicleGeo      = "vehicles:geo"        // GEO set of all vehicle locations
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldGeohash   = "geohash"
)
