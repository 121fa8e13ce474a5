package allocation

import (
	"Relief-Ops-Console/domain"
)

// CheckAllocation is the commit-time guard, re-evaluated under the row lock
// so a recommendation snapshot can never over-commit the resource or the
// request. Conservation rule: available_before = available_after + quantity.
func CheckAllocation(quantity, available, requested, alreadyAllocated int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if quantity > available {
		return domain.ErrInsufficientInventory
	}
	if alreadyAllocated+quantity > requested {
		return domain.ErrOverRequested
	}
	return nil
}

// NextRequestStatus decides the request transition after a successful
// commit: Fulfilled once cumulative allocations reach the requested
// quantity, In Progress otherwise.
func NextRequestStatus(alreadyAllocated, quantity, requested int) string {
	if alreadyAllocated+quantity >= requested {
		return "Fulfilled"
	}
	return "In Progress"
}
