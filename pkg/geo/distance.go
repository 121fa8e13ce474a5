package geo

import (
	"math"
)

const earthRadiusKm = 6371.0

type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Haversine returns the great-circle distance between two points in
// kilometers. Same formula the database-side geo_distance_km routine used,
// kept in application code so ranking is testable without a database.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Distance is the nil-propagating form: unknown when either endpoint has no
// coordinate. Rankers treat a nil distance as worse than any real one.
func Distance(from, to *Coordinate) *float64 {
	if from == nil || to == nil {
		return nil
	}
	km := Haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	return &km
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
