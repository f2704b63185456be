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
	// PROVIDERS
	// -------------------------------
	providersSQL := `
		CREATE TABLE IF NOT EXISTS providers (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL,
			whatsapp VARCHAR(50),
			address TEXT,
			description TEXT,
			food_type VARCHAR(20) NOT NULL,
			experience_years INT,
			specialties TEXT[],
			timing_lunch VARCHAR(100),
			timing_dinner VARCHAR(100),
			allow_single_tiffin BOOLEAN NOT NULL DEFAULT FALSE,
			rating NUMERIC(2,1) NOT NULL DEFAULT 0,
			review_count INT NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, providersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PROVIDER CHILD TABLES
	// -------------------------------
	childTablesSQL := `
		CREATE TABLE IF NOT EXISTS provider_areas (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			area VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS provider_cuisines (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			cuisine VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS provider_delivery_types (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			delivery_type VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS tiffin_items (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			description TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS tiffin_item_contents (
			id SERIAL PRIMARY KEY,
			tiffin_item_id INT NOT NULL REFERENCES tiffin_items(id),
			content_item VARCHAR(255) NOT NULL,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pricing_plans (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			plan_type VARCHAR(20) NOT NULL,
			meals_per_day INT NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			original_price NUMERIC(10,2),
			discount_percentage INT,
			description TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS provider_testimonials (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			customer_name VARCHAR(255) NOT NULL,
			rating INT NOT NULL,
			comment TEXT NOT NULL,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS provider_gallery (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			image_url VARCHAR(500) NOT NULL,
			alt_text VARCHAR(255),
			is_primary BOOLEAN NOT NULL DEFAULT FALSE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS delivery_slots (
			id SERIAL PRIMARY KEY,
			provider_id UUID NOT NULL REFERENCES providers(id),
			slot_time VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.Exec(ctx, childTablesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
