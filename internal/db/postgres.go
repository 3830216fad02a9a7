package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'STAFF',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// SETTINGS (business policy overrides, key/value)
	// -------------------------------
	settingsSQL := `
		CREATE TABLE IF NOT EXISTS settings (
			key VARCHAR(100) PRIMARY KEY,
			value TEXT NOT NULL,
			description TEXT,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, settingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// EVENTS
	// -------------------------------
	eventsSQL := `
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			event_date DATE NOT NULL,
			guest_count INT NOT NULL DEFAULT 0,
			start_time VARCHAR(5),
			end_time VARCHAR(5),
			event_type_code VARCHAR(50),
			event_type_label VARCHAR(100),
			travel_distance DOUBLE PRECISION,
			travel_duration DOUBLE PRECISION,
			price NUMERIC(12,2),
			status VARCHAR(50) NOT NULL DEFAULT 'PLANNED',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, eventsSQL); err != nil {
		return err
	}

	// -------------------------------
	// EVENT ACTUALS (closed-event outcomes feeding statistics)
	// -------------------------------
	actualsSQL := `
		CREATE TABLE IF NOT EXISTS event_actuals (
			id SERIAL PRIMARY KEY,
			event_id INT NOT NULL REFERENCES events(id),
			event_type_code VARCHAR(50),
			guest_count_snapshot INT NOT NULL DEFAULT 0,
			price_snapshot NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_wages NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_alcohol_expenses NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_general_expenses NUMERIC(12,2) NOT NULL DEFAULT 0,
			total_ice_expenses NUMERIC(12,2) NOT NULL DEFAULT 0,
			closed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, actualsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICE LIST (per-type guest bracket pricing)
	// -------------------------------
	priceListSQL := `
		CREATE TABLE IF NOT EXISTS price_list (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			event_type_code VARCHAR(50) NOT NULL,
			min_guests INT NOT NULL,
			max_guests INT NOT NULL,
			price NUMERIC(12,2) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, priceListSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
