package analytics

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AnalyticsRepository interface {
		GetTotals(ctx context.Context) (*domain.SummaryTotals, error)
		GetReadiness(ctx context.Context) ([]*domain.DisasterReadiness, error)
		GetPendingByDisaster(ctx context.Context) ([]*domain.PendingByDisaster, error)
		GetResourceUtilization(ctx context.Context) ([]*domain.ResourceUtilization, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTotals(ctx context.Context) (*domain.SummaryTotals, error) {
	totals := &domain.SummaryTotals{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&entities.Disaster{}, &totals.Disasters},
		{&entities.DemandRequest{}, &totals.Requests},
		{&entities.Allocation{}, &totals.Allocations},
		{&entities.Volunteer{}, &totals.Volunteers},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return totals, nil
}

func (r *analyticsRepository) GetReadiness(ctx context.Context) ([]*domain.DisasterReadiness, error) {
	var rows []*domain.DisasterReadiness
	if err := r.db.WithContext(ctx).
		Model(&entities.DemandRequest{}).
		Select(`demand_requests.disaster_id as disaster_id,
			disasters.type as disaster_type,
			SUM(demand_requests.quantity_requested) as total_requested,
			COALESCE(SUM(allocations.allocated_quantity), 0) as total_allocated`).
		Joins("JOIN disasters ON disasters.id = demand_requests.disaster_id").
		Joins("LEFT JOIN allocations ON allocations.request_id = demand_requests.id").
		Group("demand_requests.disaster_id, disasters.type").
		Order("demand_requests.disaster_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) GetPendingByDisaster(ctx context.Context) ([]*domain.PendingByDisaster, error) {
	var rows []*domain.PendingByDisaster
	if err := r.db.WithContext(ctx).
		Model(&entities.Disaster{}).
		Select(`disasters.id as disaster_id,
			disasters.type as disaster_type,
			COUNT(demand_requests.id) FILTER (WHERE demand_requests.status = 'Pending') as pending_requests,
			COUNT(demand_requests.id) FILTER (WHERE demand_requests.priority_level = 'High') as high_priority,
			COUNT(allocations.id) FILTER (WHERE allocations.status <> 'Delivered') as open_allocations`).
		Joins("LEFT JOIN demand_requests ON demand_requests.disaster_id = disasters.id").
		Joins("LEFT JOIN allocations ON allocations.request_id = demand_requests.id").
		Group("disasters.id, disasters.type").
		Order("pending_requests DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analyticsRepository) GetResourceUtilization(ctx context.Context) ([]*domain.ResourceUtilization, error) {
	var rows []*domain.ResourceUtilization
	if err := r.db.WithContext(ctx).
		Model(&entities.Resource{}).
		Select(`resources.resource_type as resource_type,
			storage_locations.city as storage_city,
			SUM(resources.quantity_available) as quantity_available,
			COALESCE(SUM(allocations.allocated_quantity), 0) as quantity_allocated,
			ROUND(COALESCE(SUM(allocations.allocated_quantity), 0)::numeric /
				NULLIF(SUM(resources.quantity_available) + COALESCE(SUM(allocations.allocated_quantity), 0), 0) * 100, 2) as utilization_rate`).
		Joins("LEFT JOIN allocations ON allocations.resource_id = resources.id").
		Joins("LEFT JOIN storage_locations ON storage_locations.id = resources.storage_location_id").
		Group("resources.resource_type, storage_locations.city").
		Order("utilization_rate DESC NULLS LAST").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
