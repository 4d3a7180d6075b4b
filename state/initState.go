package state

import (
	"context"
	"crypto/rsa"

	"github.com/kjoon418/MyChat/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type JwtSecret struct {
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}

type AppState struct {
	Ctx       context.Context
	Cancel    context.CancelFunc
	DB        *gorm.DB
	Redis     *redis.Client
	JwtSecret *JwtSecret
}

func InitAppState(ctx context.Context, cancel context.CancelFunc) (*AppState, error) {
	dbUrl := config.Conf.DATABASE.Postgres.DSN
	rAddr := config.Conf.DATABASE.Redis.Addr
	rPass := config.Conf.DATABASE.Redis.Password

	db, _, err := InitPostgres(dbUrl)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	// The member-directory cache tolerates a missing client, so an
	// unreachable Redis degrades the service instead of stopping it.
	rdb, err := InitRedis(rAddr, rPass, 0)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, member directory cache disabled")
		rdb = nil
	}

	jwtSecret, err := InitSecret()
	if err != nil {
		return nil, err
	}

	return &AppState{
		Ctx:       ctx,
		Cancel:    cancel,
		DB:        db,
		Redis:     rdb,
		JwtSecret: jwtSecret,
	}, nil
}

func (a *AppState) Close() {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			log.Info().Msg("Closing PostgreSQL database connection...")
			sqlDB.Close()
		}
	}

	if a.Redis != nil {
		log.Info().Msg("Closing Redis client...")
		if err := a.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}
}
