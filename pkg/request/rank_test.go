package request

import (
	"Relief-Ops-Console/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func km(v float64) *float64 { return &v }

func TestClassifyFulfillment(t *testing.T) {
	assert.Equal(t, domain.FulfillmentReady, ClassifyFulfillment(50, 50))
	assert.Equal(t, domain.FulfillmentReady, ClassifyFulfillment(60, 50))
	assert.Equal(t, domain.FulfillmentPartial, ClassifyFulfillment(20, 50))
	assert.Equal(t, domain.FulfillmentUnavailable, ClassifyFulfillment(0, 50))
}

func TestRankCandidatesTierDominatesDistance(t *testing.T) {
	// Request needs 50 Water. A is farther but Ready; B is closer but
	// Partial; C is closest but empty. Tier must dominate distance.
	ranked := RankCandidates(50, []Candidate{
		{ResourceID: "B", ResourceType: "Water", QuantityAvailable: 20, DistanceKm: km(2)},
		{ResourceID: "C", ResourceType: "Water", QuantityAvailable: 0, DistanceKm: km(1)},
		{ResourceID: "A", ResourceType: "Water", QuantityAvailable: 60, DistanceKm: km(5)},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "A", ranked[0].ResourceID)
	assert.Equal(t, domain.FulfillmentReady, ranked[0].FulfillmentStatus)
	assert.Equal(t, "B", ranked[1].ResourceID)
	assert.Equal(t, domain.FulfillmentPartial, ranked[1].FulfillmentStatus)
	assert.Equal(t, "C", ranked[2].ResourceID)
	assert.Equal(t, domain.FulfillmentUnavailable, ranked[2].FulfillmentStatus)
}

func TestRankCandidatesUnknownDistanceSortsLast(t *testing.T) {
	ranked := RankCandidates(10, []Candidate{
		{ResourceID: "no-geo", QuantityAvailable: 100},
		{ResourceID: "far", QuantityAvailable: 100, DistanceKm: km(900)},
	})

	require.Len(t, ranked, 2)
	assert.Equal(t, "far", ranked[0].ResourceID)
	assert.Equal(t, "no-geo", ranked[1].ResourceID)
}

func TestRankCandidatesDistanceThenQuantity(t *testing.T) {
	ranked := RankCandidates(10, []Candidate{
		{ResourceID: "small-near", QuantityAvailable: 15, DistanceKm: km(3)},
		{ResourceID: "big-near", QuantityAvailable: 40, DistanceKm: km(3)},
		{ResourceID: "big-far", QuantityAvailable: 40, DistanceKm: km(8)},
	})

	require.Len(t, ranked, 3)
	assert.Equal(t, "big-near", ranked[0].ResourceID)
	assert.Equal(t, "small-near", ranked[1].ResourceID)
	assert.Equal(t, "big-far", ranked[2].ResourceID)
}

func TestRankCandidatesEmptySet(t *testing.T) {
	ranked := RankCandidates(50, nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
