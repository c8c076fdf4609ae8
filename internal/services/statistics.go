package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/store"
)

type StatisticsService struct {
	gateway *store.Gateway
}

func NewStatisticsService(g *store.Gateway) *StatisticsService {
	return &StatisticsService{gateway: g}
}

// Dashboard returns the aggregate view of the collection. The dashboard
// must always render, so a failing store degrades to the empty shape
// instead of propagating the error. The failure itself is logged.
func (s *StatisticsService) Dashboard(ctx context.Context) *models.Statistics {
	stats, err := s.gateway.Statistics(ctx)
	if err != nil {
		zap.S().Named("statistics").Errorw("failed to compute dashboard statistics", "error", err)
		return models.EmptyStatistics()
	}
	return stats
}
