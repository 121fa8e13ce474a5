package logistics

import (
	"Relief-Ops-Console/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LogisticsRepository interface {
		CreateTransport(ctx context.Context, transport *entities.Transport) error
		GetTransports(ctx context.Context) ([]*entities.Transport, error)
		UpdateTransportStatus(ctx context.Context, id string, status string) (*entities.Transport, error)

		CreateDispatch(ctx context.Context, dispatch *entities.Dispatch) error
		GetDispatches(ctx context.Context) ([]*entities.Dispatch, error)
		UpdateDispatchStatus(ctx context.Context, id string, status string) (*entities.Dispatch, error)
	}

	logisticsRepository struct {
		db *gorm.DB
	}
)

func NewLogisticsRepository(db *gorm.DB) LogisticsRepository {
	return &logisticsRepository{db: db}
}

func (r *logisticsRepository) CreateTransport(ctx context.Context, transport *entities.Transport) error {
	return r.db.WithContext(ctx).Create(transport).Error
}

func (r *logisticsRepository) GetTransports(ctx context.Context) ([]*entities.Transport, error) {
	var transports []*entities.Transport
	if err := r.db.WithContext(ctx).
		Order("vehicle_type").
		Find(&transports).Error; err != nil {
		return nil, err
	}
	return transports, nil
}

func (r *logisticsRepository) UpdateTransportStatus(ctx context.Context, id string, status string) (*entities.Transport, error) {
	var transport entities.Transport
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&transport).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&transport).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	transport.Status = status
	return &transport, nil
}

func (r *logisticsRepository) CreateDispatch(ctx context.Context, dispatch *entities.Dispatch) error {
	return r.db.WithContext(ctx).Create(dispatch).Error
}

func (r *logisticsRepository) GetDispatches(ctx context.Context) ([]*entities.Dispatch, error) {
	var dispatches []*entities.Dispatch
	if err := r.db.WithContext(ctx).
		Preload("Allocation").
		Preload("Transport").
		Order("created_at DESC").
		Find(&dispatches).Error; err != nil {
		return nil, err
	}
	return dispatches, nil
}

func (r *logisticsRepository) UpdateDispatchStatus(ctx context.Context, id string, status string) (*entities.Dispatch, error) {
	var dispatch entities.Dispatch
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dispatch).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Model(&dispatch).
		Update("status", status).Error; err != nil {
		return nil, err
	}
	dispatch.Status = status
	return &dispatch, nil
}
