package request

import (
	"Relief-Ops-Console/domain"
	"sort"
)

// Candidate is one resource considered for fulfilling a demand request.
// DistanceKm is nil when the disaster or the resource's storage location has
// no geocoordinate.
type Candidate struct {
	ResourceID        string
	ResourceType      string
	QuantityAvailable int
	StorageCity       string
	StorageState      string
	DistanceKm        *float64
}

// ClassifyFulfillment maps a candidate's availability against the requested
// quantity onto a tier. First match wins: Ready covers the full quantity,
// Partial covers some of it, Unavailable covers none.
func ClassifyFulfillment(quantityAvailable, quantityRequested int) string {
	switch {
	case quantityAvailable >= quantityRequested:
		return domain.FulfillmentReady
	case quantityAvailable > 0:
		return domain.FulfillmentPartial
	default:
		return domain.FulfillmentUnavailable
	}
}

var tierRank = map[string]int{
	domain.FulfillmentReady:       0,
	domain.FulfillmentPartial:     1,
	domain.FulfillmentUnavailable: 2,
}

// RankCandidates orders candidates by fulfillment tier, then distance
// ascending with unknown distances last, then quantity available descending.
// It never errors: an empty candidate set ranks to an empty list.
func RankCandidates(quantityRequested int, candidates []Candidate) []*domain.Recommendation {
	ranked := make([]*domain.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, &domain.Recommendation{
			ResourceID:        c.ResourceID,
			ResourceType:      c.ResourceType,
			QuantityAvailable: c.QuantityAvailable,
			StorageCity:       c.StorageCity,
			StorageState:      c.StorageState,
			DistanceKm:        c.DistanceKm,
			FulfillmentStatus: ClassifyFulfillment(c.QuantityAvailable, quantityRequested),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if tierRank[a.FulfillmentStatus] != tierRank[b.FulfillmentStatus] {
			return tierRank[a.FulfillmentStatus] < tierRank[b.FulfillmentStatus]
		}
		if (a.DistanceKm == nil) != (b.DistanceKm == nil) {
			return a.DistanceKm != nil
		}
		if a.DistanceKm != nil && b.DistanceKm != nil && *a.DistanceKm != *b.DistanceKm {
			return *a.DistanceKm < *b.DistanceKm
		}
		return a.QuantityAvailable > b.QuantityAvailable
	})

	return ranked
}
