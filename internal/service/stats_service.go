package service

import (
	"context"
	"time"

	"bmb-admin/internal/models"
	"bmb-admin/internal/redisclient"
	"bmb-admin/internal/stats"
	"bmb-admin/internal/store"
	"bmb-admin/internal/util"

	"go.uber.org/zap"
)

// StatsService computes order statistics with a short-lived Redis cache in
// front of the aggregation queries.
type StatsService struct {
	store  *store.Store
	cache  *redisclient.Client
	logger *zap.Logger
}

// NewStatsService creates a new statistics service
func NewStatsService(store *store.Store, cache *redisclient.Client) *StatsService {
	return &StatsService{
		store:  store,
		cache:  cache,
		logger: util.GetLogger(),
	}
}

// GetStatistics returns the aggregate statistics and chart-ready series for
// a period keyword. Unrecognized keywords aggregate over all time.
func (s *StatsService) GetStatistics(ctx context.Context, period string) (*models.OrderStatistics, stats.ChartData, error) {
	ctx, span := util.StartSpan(ctx, "StatsService.GetStatistics")
	defer span.End()

	if !stats.ValidPeriod(period) {
		period = stats.PeriodAll
	}

	if s.cache != nil {
		cached, err := s.cache.GetStats(ctx, period)
		if err != nil {
			s.logger.Warn("Stats cache read failed", zap.String("period", period), zap.Error(err))
		}
		if cached != nil {
			util.StatsCacheHitsTotal.Inc()
			return cached, s.shape(cached), nil
		}
	}
	util.StatsCacheMissesTotal.Inc()

	start := time.Now()
	window := stats.TimePeriodDates(period, util.ISTNow())
	result, err := s.store.GetOrderStatistics(ctx, window)
	if err != nil {
		return nil, stats.PrepareChartData(nil, nil, nil), err
	}
	util.StatsQueryLatency.WithLabelValues(period).Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.SetStats(ctx, period, result); err != nil {
			s.logger.Warn("Stats cache write failed", zap.String("period", period), zap.Error(err))
		}
	}

	return result, s.shape(result), nil
}

// InvalidateCache drops every cached period window.
func (s *StatsService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	periods := []string{
		stats.PeriodToday, stats.PeriodYesterday, stats.PeriodWeek,
		stats.PeriodMonth, stats.PeriodLastMonth, stats.PeriodAll,
	}
	if err := s.cache.InvalidateStats(ctx, periods...); err != nil {
		s.logger.Warn("Stats cache invalidation failed", zap.Error(err))
	}
}

func (s *StatsService) shape(result *models.OrderStatistics) stats.ChartData {
	return stats.PrepareChartData(result.Timeline, result.TopItems, result.StatusDistribution)
}
