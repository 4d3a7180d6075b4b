package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kjoon418/MyChat/internal/entity"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgres(dsn string) (*gorm.DB, *sql.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Error().Msg(fmt.Errorf("failed to connect to database: %w", err).Error())
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Msg(fmt.Errorf("failed to get underlying sql.DB: %w", err).Error())
		return nil, nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxIdleTime(300 * time.Second)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	log.Info().Msg("Postgres database connection established successfully")
	return db, sqlDB, nil
}

// Migrate keeps the schema in sync with the entity set. The membership
// unique index is what backs the one-membership-per-(member, room) rule.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Member{},
		&entity.Blacklist{},
		&entity.ChatRoom{},
		&entity.Membership{},
		&entity.Chat{},
	)
}
