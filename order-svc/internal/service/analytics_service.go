package service

import (
	"context"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

const topItemsLimit = 5

// AnalyticsService serves the owner dashboard from the counters agg-svc
// maintains, falling back to a database aggregate while those are empty.
type AnalyticsService struct {
	cache AnalyticsReader
	repo  AnalyticsRepository
}

func NewAnalyticsService(cache AnalyticsReader, repo AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{cache: cache, repo: repo}
}

func (s *AnalyticsService) Summary(ctx context.Context, restaurantID string) (*domain.AnalyticsSummary, error) {
	if s.cache != nil {
		summary, err := s.cache.Summary(ctx, restaurantID, topItemsLimit)
		if err != nil {
			log.Warn().Err(err).Str("restaurant_id", restaurantID).Msg("analytics cache read failed")
		} else if summary != nil {
			return summary, nil
		}
	}

	summary, err := s.repo.AnalyticsSummary(ctx, restaurantID, topItemsLimit)
	if err != nil {
		return nil, err
	}
	if summary.TotalOrders > 0 {
		summary.AverageOrder = domain.RoundMoney(summary.Revenue / float64(summary.TotalOrders))
	}
	return summary, nil
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
