package config

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(getIntEnv("DB_MAX_OPEN_CONNS", 25))
	db.SetMaxIdleConns(getIntEnv("DB_MAX_IDLE_CONNS", 5))

	return db, nil
}
