package analytics

import (
	"Relief-Ops-Console/domain"
	"context"
)

type (
	AnalyticsService interface {
		GetSummary(ctx context.Context) (*domain.SummaryResponse, error)
		GetPendingByDisaster(ctx context.Context) ([]*domain.PendingByDisaster, error)
		GetResourceUtilization(ctx context.Context) ([]*domain.ResourceUtilization, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

func (s *analyticsService) GetSummary(ctx context.Context) (*domain.SummaryResponse, error) {
	totals, err := s.analyticsRepository.GetTotals(ctx)
	if err != nil {
		return nil, err
	}
	readiness, err := s.analyticsRepository.GetReadiness(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.SummaryResponse{Totals: *totals, Readiness: readiness}, nil
}

func (s *analyticsService) GetPendingByDisaster(ctx context.Context) ([]*domain.PendingByDisaster, error) {
	return s.analyticsRepository.GetPendingByDisaster(ctx)
}

func (s *analyticsService) GetResourceUtilization(ctx context.Context) ([]*domain.ResourceUtilization, error) {
	return s.analyticsRepository.GetResourceUtilization(ctx)
}
