package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/uav-academic-soa/internal/repository"
	"github.com/noah-isme/uav-academic-soa/internal/service"
	"github.com/noah-isme/uav-academic-soa/pkg/cache"
	"github.com/noah-isme/uav-academic-soa/pkg/config"
	"github.com/noah-isme/uav-academic-soa/pkg/database"
	"github.com/noah-isme/uav-academic-soa/pkg/logger"
)

// Bootstrap loads configuration and opens every shared collaborator for a gateway.
// databaseURL, when non-empty, overrides DATABASE_URL. The returned cleanup closes
// what was opened.
func Bootstrap(ctx context.Context, serviceName, databaseURL string) (Dependencies, func(), error) {
	cfg, err := config.Load(databaseURL)
	if err != nil {
		return Dependencies{}, nil, err
	}

	logr, err := logger.New(cfg, serviceName)
	if err != nil {
		return Dependencies{}, nil, err
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		_ = logr.Sync()
		return Dependencies{}, nil, err
	}

	deps := Dependencies{Config: cfg, DB: db, Logger: logr}
	if cfg.Metrics.Enabled {
		deps.Metrics = service.NewMetricsService()
	}

	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, list cache disabled", zap.Error(err))
		} else {
			deps.Redis = client
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()
	if err := repository.NewSchemaRepository(db).Ping(pingCtx); err != nil {
		logr.Warn("database not reachable at startup", zap.String("database", cfg.Database.Connection.String()), zap.Error(err))
	} else {
		logr.Info("database reachable", zap.String("database", cfg.Database.Connection.String()))
	}

	cleanup := func() {
		if deps.Redis != nil {
			_ = deps.Redis.Close()
		}
		_ = db.Close()
		_ = logr.Sync()
	}
	return deps, cleanup, nil
}
