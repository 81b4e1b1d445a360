package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bot-gateway/configs"
)

// New opens a gorm connection to the managed Postgres endpoint. The platform
// owns the schema, so no migrations run here.
func New(cfg *configs.Config) (*gorm.DB, error) {
	var last error
	for i := 0; i < 5; i++ {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			return conn, nil
		}
		last = err
		log.Printf("postgres not ready (attempt %d/5): %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("could not connect to postgres: %w", last)
}
