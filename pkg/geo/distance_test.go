package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKnownDistance(t *testing.T) {
	// Jakarta to Surabaya, roughly 663 km.
	km := Haversine(-6.2088, 106.8456, -7.2575, 112.7521)
	assert.InDelta(t, 663, km, 15)
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Haversine(-6.2088, 106.8456, -6.2088, 106.8456))
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(35.6762, 139.6503, 51.5074, -0.1278)
	b := Haversine(51.5074, -0.1278, 35.6762, 139.6503)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceNilPropagation(t *testing.T) {
	depot := &Coordinate{Latitude: -6.2, Longitude: 106.8}

	assert.Nil(t, Distance(nil, depot))
	assert.Nil(t, Distance(depot, nil))
	assert.Nil(t, Distance(nil, nil))

	km := Distance(depot, &Coordinate{Latitude: -6.9, Longitude: 107.6})
	require.NotNil(t, km)
	assert.InDelta(t, 118, *km, 10)
}
