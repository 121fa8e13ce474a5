package allocation

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAllocationRepository mirrors the real repository's transactional
// semantics with a mutex standing in for the row locks.
type fakeAllocationRepository struct {
	mu          sync.Mutex
	resources   map[uuid.UUID]*entities.Resource
	requests    map[uuid.UUID]*entities.DemandRequest
	allocations []*entities.Allocation
	logs        []*entities.AllocationLog
}

func newFakeAllocationRepository() *fakeAllocationRepository {
	return &fakeAllocationRepository{
		resources: make(map[uuid.UUID]*entities.Resource),
		requests:  make(map[uuid.UUID]*entities.DemandRequest),
	}
}

func (f *fakeAllocationRepository) Allocate(_ context.Context, requestID, resourceID uuid.UUID, quantity int) (*entities.Allocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	resource, ok := f.resources[resourceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	request, ok := f.requests[requestID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if request.Status == "Cancelled" {
		return nil, domain.ErrRequestClosed
	}
	if resource.Status == "Unavailable" && resource.QuantityAvailable == 0 {
		return nil, domain.ErrResourceClosed
	}

	allocated := 0
	for _, a := range f.allocations {
		if a.RequestID == requestID && a.Status != "Cancelled" {
			allocated += a.AllocatedQuantity
		}
	}

	if err := CheckAllocation(quantity, resource.QuantityAvailable, request.QuantityRequested, allocated); err != nil {
		return nil, err
	}

	resource.QuantityAvailable -= quantity
	if resource.QuantityAvailable == 0 {
		resource.Status = "Unavailable"
	}

	allocation := &entities.Allocation{
		ID:                uuid.New(),
		RequestID:         requestID,
		ResourceID:        resourceID,
		AllocatedQuantity: quantity,
		Status:            "Dispatched",
	}
	f.allocations = append(f.allocations, allocation)
	f.logs = append(f.logs, &entities.AllocationLog{
		ID:           uuid.New(),
		AllocationID: allocation.ID,
		Action:       fmt.Sprintf("Allocated %d to request %s", quantity, requestID),
		ActionDate:   time.Now(),
	})
	request.Status = NextRequestStatus(allocated, quantity, request.QuantityRequested)

	return allocation, nil
}

func (f *fakeAllocationRepository) GetAllocations(_ context.Context) ([]*entities.Allocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entities.Allocation(nil), f.allocations...), nil
}

func (f *fakeAllocationRepository) UpdateAllocationStatus(_ context.Context, id string, status string) (*entities.Allocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.allocations {
		if a.ID.String() == id {
			a.Status = status
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAllocationRepository) GetAllocationLogs(_ context.Context, limit int) ([]*entities.AllocationLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.logs) > limit {
		return f.logs[:limit], nil
	}
	return append([]*entities.AllocationLog(nil), f.logs...), nil
}

func seedAllocation(t *testing.T, available, requested int) (*fakeAllocationRepository, *entities.DemandRequest, *entities.Resource) {
	t.Helper()
	repo := newFakeAllocationRepository()
	resource := &entities.Resource{
		ID:                uuid.New(),
		ResourceType:      "Water",
		QuantityAvailable: available,
		Status:            "Available",
	}
	request := &entities.DemandRequest{
		ID:                uuid.New(),
		DisasterID:        uuid.New(),
		ResourceType:      "Water",
		QuantityRequested: requested,
		Status:            "Pending",
	}
	repo.resources[resource.ID] = resource
	repo.requests[request.ID] = request
	return repo, request, resource
}

func TestAllocateConservesQuantity(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 50)
	service := NewAllocationService(repo)

	resp, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   30,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.AllocatedQuantity)
	assert.Equal(t, "Dispatched", resp.Status)
	assert.Equal(t, 70, resource.QuantityAvailable)
	assert.Len(t, repo.allocations, 1)
	assert.Len(t, repo.logs, 1)
	assert.Equal(t, "In Progress", request.Status)
}

func TestAllocateFulfillsRequestAtRequestedQuantity(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 50)
	service := NewAllocationService(repo)

	_, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fulfilled", request.Status)
}

func TestAllocateInsufficientInventoryLeavesStateUntouched(t *testing.T) {
	repo, request, resource := seedAllocation(t, 20, 50)
	service := NewAllocationService(repo)

	_, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   30,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	assert.Equal(t, 20, resource.QuantityAvailable)
	assert.Empty(t, repo.allocations)
	assert.Empty(t, repo.logs)
	assert.Equal(t, "Pending", request.Status)
}

func TestAllocateOverRequestedGuard(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 50)
	service := NewAllocationService(repo)

	_, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   40,
	})
	require.NoError(t, err)

	_, err = service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   20,
	})
	assert.ErrorIs(t, err, domain.ErrOverRequested)
	assert.Equal(t, 60, resource.QuantityAvailable)
	assert.Len(t, repo.allocations, 1)
}

func TestAllocateCancelledRequestRejected(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 50)
	request.Status = "Cancelled"
	service := NewAllocationService(repo)

	_, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   10,
	})
	assert.ErrorIs(t, err, domain.ErrRequestClosed)
}

func TestAllocateUnknownReferences(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 50)
	service := NewAllocationService(repo)

	_, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  uuid.NewString(),
		ResourceID: resource.ID.String(),
		Quantity:   10,
	})
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	_, err = service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: "not-a-uuid",
		Quantity:   10,
	})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

// Two racing commits that individually fit but jointly exceed availability
// must resolve to exactly one success.
func TestAllocateConcurrentCommitsNeverOverCommit(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 200)
	service := NewAllocationService(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, q := range []int{70, 60} {
		wg.Add(1)
		go func(slot, quantity int) {
			defer wg.Done()
			_, errs[slot] = service.Allocate(context.Background(), domain.CreateAllocationRequest{
				RequestID:  request.ID.String(),
				ResourceID: resource.ID.String(),
				Quantity:   quantity,
			})
		}(i, q)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, repo.allocations, 1)
	assert.GreaterOrEqual(t, resource.QuantityAvailable, 0)
}

func TestUpdateAllocationStatusFreeTransition(t *testing.T) {
	repo, request, resource := seedAllocation(t, 100, 50)
	service := NewAllocationService(repo)

	resp, err := service.Allocate(context.Background(), domain.CreateAllocationRequest{
		RequestID:  request.ID.String(),
		ResourceID: resource.ID.String(),
		Quantity:   10,
	})
	require.NoError(t, err)

	updated, err := service.UpdateAllocationStatus(context.Background(), resp.ID, domain.UpdateAllocationStatusRequest{Status: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, "Delivered", updated.Status)

	_, err = service.UpdateAllocationStatus(context.Background(), uuid.NewString(), domain.UpdateAllocationStatusRequest{Status: "Pending"})
	assert.ErrorIs(t, err, domain.ErrAllocationNotFound)
}
