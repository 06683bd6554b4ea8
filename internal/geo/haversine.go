// Package geo provides great-circle distance calculation between
// latitude/longitude points on a spherical Earth.
package geo

import (
	"math"

	"github.com/shelfscout/backend/internal/domain"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometers between two points
// given in decimal degrees. It is symmetric and zero for identical points.
func DistanceKm(lat1, lng1, lat2, lng2 float64) (float64, error) {
	if !validCoordinate(lat1, lng1) || !validCoordinate(lat2, lng2) {
		return 0, domain.ErrInvalidCoordinates
	}

	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lng2 - lng1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// validCoordinate rejects non-finite values and out-of-range degrees.
func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
