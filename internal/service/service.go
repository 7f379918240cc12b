package service

import (
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/uav-academic-soa/pkg/errors"
)

// Options carries the collaborators shared by the domain services.
type Options struct {
	Cache   *CacheService
	Metrics *MetricsService
	Logger  *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// dataAccessFailure logs a store failure and converts it into a DATA_ACCESS_FAILURE error.
func dataAccessFailure(logger *zap.Logger, operation string, err error) error {
	logger.Error("data access failed", zap.String("operation", operation), zap.Error(err))
	return appErrors.DataAccess(err)
}

func observe(metrics *MetricsService, label string, start time.Time) {
	metrics.ObserveDBQuery(label, time.Since(start))
}
