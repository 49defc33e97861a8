package kernel

import (
	"fmt"

	"driverops/internal/pkg/errs"

	"driverops/internal/pkg/guard"
)

const (
	// GeolocationMinLatitude is the minimum valid latitude in degrees.
	GeolocationMinLatitude = -90.0
	// GeolocationMaxLatitude is the maximum valid latitude in degrees.
	GeolocationMaxLatitude = 90.0
	// GeolocationMinLongitude is the minimum valid longitude in degrees.
	GeolocationMinLongitude = -180.0
	// GeolocationMaxLongitude is the maximum valid longitude in degrees.
	GeolocationMaxLongitude = 180.0
	// GeolocationMaxAccuracyMeters bounds the reported GPS accuracy.
	// Fixes with a worse accuracy are not acceptable as delivery proof.
	GeolocationMaxAccuracyMeters = 100.0
)

// ErrGeolocationIsNotConstructed is returned when validating a zero-value
// Geolocation that bypassed the NewGeolocation constructor.
var ErrGeolocationIsNotConstructed = errs.NewValueIsRequiredError(
	"geolocation must be created via NewGeolocation constructor")

// Geolocation is an immutable value object representing a GPS fix captured on
// the driver's device. It carries the coordinates together with the reported
// accuracy of the fix.
//
// A Geolocation is only valid when created through NewGeolocation, which
// enforces coordinate ranges and the bounded-accuracy invariant required for
// delivery proof.
//
// Example:
//
//	loc, err := kernel.NewGeolocation(3.1390, 101.6869, 12.5)
//	if err != nil {
//	    // handle validation error
//	}
type Geolocation struct {
	latitude       float64
	longitude      float64
	accuracyMeters float64
	guard          guard.ConstructorGuard
}

// NewGeolocation creates a validated Geolocation.
//
// Validation rules:
//   - latitude must be within [-90, 90] degrees
//   - longitude must be within [-180, 180] degrees
//   - accuracyMeters must be greater than 0 and at most GeolocationMaxAccuracyMeters
//
// Returns the constructed value or a validation error describing the
// out-of-range parameter.
func NewGeolocation(latitude, longitude, accuracyMeters float64) (Geolocation, error) {
	if latitude < GeolocationMinLatitude || latitude > GeolocationMaxLatitude {
		return Geolocation{}, errs.NewValueIsOutOfRangeError(
			"latitude", latitude, GeolocationMinLatitude, GeolocationMaxLatitude)
	}

	if longitude < GeolocationMinLongitude || longitude > GeolocationMaxLongitude {
		return Geolocation{}, errs.NewValueIsOutOfRangeError(
			"longitude", longitude, GeolocationMinLongitude, GeolocationMaxLongitude)
	}

	if accuracyMeters <= 0 || accuracyMeters > GeolocationMaxAccuracyMeters {
		return Geolocation{}, errs.NewValueIsOutOfRangeError(
			"accuracyMeters", accuracyMeters, 0, GeolocationMaxAccuracyMeters)
	}

	return Geolocation{
		latitude:       latitude,
		longitude:      longitude,
		accuracyMeters: accuracyMeters,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (g Geolocation) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees.
func (g Geolocation) Longitude() float64 {
	return g.longitude
}

// AccuracyMeters returns the reported accuracy of the fix in meters.
func (g Geolocation) AccuracyMeters() float64 {
	return g.accuracyMeters
}

// IsEqual compares two geolocations by coordinates and accuracy.
func (g Geolocation) IsEqual(other Geolocation) bool {
	return g.latitude == other.latitude &&
		g.longitude == other.longitude &&
		g.accuracyMeters == other.accuracyMeters
}

// Validate checks that the Geolocation was created through its constructor.
func (g Geolocation) Validate() error {
	return g.guard.Validate(ErrGeolocationIsNotConstructed)
}

// String implements fmt.Stringer.
func (g Geolocation) String() string {
	return fmt.Sprintf("Geolocation(%.6f,%.6f ±%.1fm)", g.latitude, g.longitude, g.accuracyMeters)
}
