package db

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the pool and ensures the schema exists.
// Fails fast: a service that cannot record generations should not start.
func ConnectPostgres(dsn string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	generationsSQL := `
		CREATE TABLE IF NOT EXISTS generations (
			id UUID PRIMARY KEY,
			restaurant VARCHAR(255) NOT NULL,
			variants TEXT[] NOT NULL,
			status VARCHAR(50) NOT NULL,
			articles INT NOT NULL DEFAULT 0,
			dropped INT NOT NULL DEFAULT 0,
			unknown_categories TEXT[],
			documents TEXT[] NOT NULL DEFAULT '{}',
			error TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, generationsSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_generations_restaurant
		ON generations (restaurant, created_at DESC)
	`
	_, err := pool.Exec(ctx, indexSQL)
	return err
}
