package allocation

import (
	"Relief-Ops-Console/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAllocation(t *testing.T) {
	tests := []struct {
		name             string
		quantity         int
		available        int
		requested        int
		alreadyAllocated int
		wantErr          error
	}{
		{"fits exactly", 50, 50, 50, 0, nil},
		{"fits with surplus", 10, 60, 50, 0, nil},
		{"tops up to requested", 30, 40, 50, 20, nil},
		{"zero quantity", 0, 60, 50, 0, domain.ErrInvalidQuantity},
		{"negative quantity", -5, 60, 50, 0, domain.ErrInvalidQuantity},
		{"exceeds availability", 70, 60, 100, 0, domain.ErrInsufficientInventory},
		{"exceeds remaining request", 40, 60, 50, 20, domain.ErrOverRequested},
		{"availability checked before request", 70, 60, 50, 0, domain.ErrInsufficientInventory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAllocation(tt.quantity, tt.available, tt.requested, tt.alreadyAllocated)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNextRequestStatus(t *testing.T) {
	assert.Equal(t, "Fulfilled", NextRequestStatus(20, 30, 50))
	assert.Equal(t, "Fulfilled", NextRequestStatus(0, 50, 50))
	assert.Equal(t, "In Progress", NextRequestStatus(0, 20, 50))
	assert.Equal(t, "In Progress", NextRequestStatus(10, 20, 50))
}
