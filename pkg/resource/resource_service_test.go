package resource

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeResourceRepository struct {
	resources map[string]*entities.Resource
	alerts    map[string]time.Time
}

func newFakeResourceRepository() *fakeResourceRepository {
	return &fakeResourceRepository{
		resources: make(map[string]*entities.Resource),
		alerts:    make(map[string]time.Time),
	}
}

func (f *fakeResourceRepository) CreateResource(_ context.Context, resource *entities.Resource) error {
	f.resources[resource.ID.String()] = resource
	return nil
}

func (f *fakeResourceRepository) GetResources(_ context.Context) ([]*entities.Resource, error) {
	var all []*entities.Resource
	for _, r := range f.resources {
		all = append(all, r)
	}
	return all, nil
}

func (f *fakeResourceRepository) GetResourceByID(_ context.Context, id string) (*entities.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resource, nil
}

func (f *fakeResourceRepository) UpdateResource(_ context.Context, id string, updates map[string]interface{}) (*entities.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if qty, ok := updates["quantity_available"].(int); ok {
		resource.QuantityAvailable = qty
	}
	if status, ok := updates["status"].(string); ok {
		resource.Status = status
	}
	return resource, nil
}

func (f *fakeResourceRepository) Replenish(_ context.Context, id string, quantity int) (*entities.Resource, error) {
	resource, ok := f.resources[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	resource.QuantityAvailable += quantity
	resource.Status = "Available"
	return resource, nil
}

func (f *fakeResourceRepository) GetLowStock(_ context.Context, threshold int) ([]*entities.Resource, error) {
	var low []*entities.Resource
	for _, r := range f.resources {
		if r.QuantityAvailable < threshold {
			low = append(low, r)
		}
	}
	return low, nil
}

func (f *fakeResourceRepository) GetLatestAlerts(_ context.Context) (map[string]time.Time, error) {
	return f.alerts, nil
}

func stocked(resourceType string, qty int, updatedAt time.Time) *entities.Resource {
	r := &entities.Resource{
		ID:                uuid.New(),
		ResourceType:      resourceType,
		QuantityAvailable: qty,
		Status:            "Available",
	}
	r.UpdatedAt = updatedAt
	return r
}

func TestGetLowStockExcludesAtThreshold(t *testing.T) {
	repo := newFakeResourceRepository()
	now := time.Now()
	under := stocked("Water", 9, now)
	at := stocked("Blankets", 10, now)
	over := stocked("Tents", 11, now)
	for _, r := range []*entities.Resource{under, at, over} {
		repo.resources[r.ID.String()] = r
	}

	service := NewResourceService(repo, 10)
	low, err := service.GetLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, under.ID.String(), low[0].ResourceID)
}

func TestGetLowStockAlertTimestampFallback(t *testing.T) {
	repo := newFakeResourceRepository()
	updated := time.Now().Add(-48 * time.Hour)
	alerted := time.Now().Add(-2 * time.Hour)

	flagged := stocked("Water", 3, updated)
	silent := stocked("Rice", 5, updated)
	repo.resources[flagged.ID.String()] = flagged
	repo.resources[silent.ID.String()] = silent
	repo.alerts[flagged.ID.String()] = alerted

	service := NewResourceService(repo, 10)
	low, err := service.GetLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)

	byID := make(map[string]time.Time, 2)
	for _, entry := range low {
		byID[entry.ResourceID] = entry.LastAlertedAt
	}
	assert.Equal(t, alerted, byID[flagged.ID.String()])
	assert.Equal(t, updated, byID[silent.ID.String()])
}

func TestReplenishRestoresAvailability(t *testing.T) {
	repo := newFakeResourceRepository()
	depleted := stocked("Water", 0, time.Now())
	depleted.Status = "Unavailable"
	repo.resources[depleted.ID.String()] = depleted

	service := NewResourceService(repo, 10)
	resp, err := service.Replenish(context.Background(), depleted.ID.String(), domain.ReplenishResourceRequest{Quantity: 40})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.QuantityAvailable)
	assert.Equal(t, "Available", resp.Status)
}

func TestReplenishUnknownResource(t *testing.T) {
	service := NewResourceService(newFakeResourceRepository(), 10)

	_, err := service.Replenish(context.Background(), uuid.NewString(), domain.ReplenishResourceRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}
