package app

import (
	"database/sql"

	"go-leave-approval/internal/config"
	"go-leave-approval/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	redis  *redis.Client
}

func (i *infrastructure) Close() {
	if i.redis != nil {
		_ = i.redis.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connectDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresOptions{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, cfg.Database.MaxRetries)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

func connectInfrastructure(cfg *config.Config) (*infrastructure, error) {
	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	zap.L().Info("database connection established")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	zap.L().Info("redis connection established")

	return &infrastructure{gormDB: gormDB, sqlDB: sqlDB, redis: rdb}, nil
}

// BuildApp connects infrastructure and mounts every module on router. The
// returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	infra, err := connectInfrastructure(cfg)
	if err != nil {
		return nil, err
	}

	if err := registerModules(router, cfg, infra.sqlDB, infra.gormDB, infra.redis); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}
