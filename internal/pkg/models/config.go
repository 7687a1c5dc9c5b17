package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Pricing  PricingConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// PricingConfig holds the per-km rate table keyed by vehicle class
type PricingConfig struct {
	SmallRatePerKm  float64 `json:"small_rate_per_km"`
	MediumRatePerKm float64 `json:"medium_rate_per_km"`
	LargeRatePerKm  float64 `json:"large_rate_per_km"`
	Currency        string  `json:"currency"`
}

// RatePerKm returns the configured rate for a vehicle class and whether the
// class is present in the rate table.
func (p PricingConfig) RatePerKm(class VehicleClass) (float64, bool) {
	switch class {
	case VehicleClassSmall:
		return p.SmallRatePerKm, true
	case VehicleClassMedium:
		return p.MediumRatePerKm, true
	case VehicleClassLarge:
		return p.LargeRatePerKm, true
	}
	return 0, false
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
