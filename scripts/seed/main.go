// Package main implements a standalone seed script that creates the
// storefront catalog schema and populates it with a realistic set of
// watches. It talks SQL directly so it works against a fresh database
// before the API server has ever started.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	brand          TEXT NOT NULL DEFAULT '',
	model          TEXT NOT NULL DEFAULT '',
	category       TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	price          DOUBLE PRECISION NOT NULL DEFAULT 0,
	original_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_aed      DOUBLE PRECISION NOT NULL DEFAULT 0,
	image          TEXT NOT NULL DEFAULT '',
	images         TEXT[] NOT NULL DEFAULT '{}',
	stock          INTEGER NOT NULL DEFAULT 0,
	rating         DOUBLE PRECISION NOT NULL DEFAULT 0,
	reviews        INTEGER NOT NULL DEFAULT 0,
	featured       BOOLEAN NOT NULL DEFAULT FALSE,
	date_added     TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);
CREATE INDEX IF NOT EXISTS idx_products_brand ON products (lower(brand));
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products (created_at DESC);
`

type seedProduct struct {
	id            string
	name          string
	brand         string
	model         string
	category      string
	description   string
	price         float64
	originalPrice float64
	image         string
	stock         int
	rating        float64
	reviews       int
	featured      bool
	daysAgo       int
}

var seedProducts = []seedProduct{
	{"seed-0001", "Submariner Date", "Rolex", "126610LN", "Men",
		"Iconic dive watch with a unidirectional rotatable bezel and 300m water resistance.",
		10999.00, 11999.00, "/assets/images/watches/submariner.jpg", 5, 4.9, 412, true, 2},
	{"seed-0002", "Speedmaster Moonwatch", "Omega", "310.30.42.50.01.001", "Men",
		"Manual-winding chronograph flight-qualified by NASA for all crewed space missions.",
		6899.00, 0, "/assets/images/watches/speedmaster.jpg", 8, 4.8, 356, true, 5},
	{"seed-0003", "Tank Must", "Cartier", "WSTA0041", "Women",
		"Rectangular dress watch with Roman numerals and a quartz movement.",
		3250.00, 3550.00, "/assets/images/watches/tank.jpg", 12, 4.7, 198, true, 8},
	{"seed-0004", "Carrera Chronograph", "TAG Heuer", "CBN2A1B", "Men",
		"Motorsport-inspired automatic chronograph with a 44mm steel case.",
		5450.00, 0, "/assets/images/watches/carrera.jpg", 7, 4.5, 167, false, 11},
	{"seed-0005", "Ballon Bleu 33", "Cartier", "W2BB0023", "Women",
		"Rounded case with a deep blue cabochon crown and silvered guilloche dial.",
		4800.00, 0, "/assets/images/watches/ballonbleu.jpg", 4, 4.8, 231, false, 14},
	{"seed-0006", "Prospex Diver", "Seiko", "SPB143", "Men",
		"Modern reinterpretation of the 1965 62MAS diver with 200m water resistance.",
		1199.00, 1350.00, "/assets/images/watches/prospex.jpg", 20, 4.6, 289, false, 17},
	{"seed-0007", "PRX Powermatic 80", "Tissot", "T137.407.11.041.00", "Men",
		"Integrated-bracelet sports watch with an 80-hour power reserve.",
		675.00, 0, "/assets/images/watches/prx.jpg", 25, 4.4, 324, false, 20},
	{"seed-0008", "G-Shock Full Metal", "Casio", "GMW-B5000D", "Men",
		"Stainless steel take on the original square G-Shock with Bluetooth and solar charging.",
		550.00, 0, "/assets/images/watches/gshock.jpg", 30, 4.7, 501, false, 23},
	{"seed-0009", "Datejust 31", "Rolex", "278240", "Women",
		"Classic fluted-bezel dress watch on a Jubilee bracelet.",
		8150.00, 0, "/assets/images/watches/datejust.jpg", 3, 4.9, 276, true, 26},
	{"seed-0010", "Constellation 29", "Omega", "131.10.29.20.52.001", "Women",
		"Distinctive claws and a diamond-set dial on an integrated bracelet.",
		5600.00, 6100.00, "/assets/images/watches/constellation.jpg", 6, 4.6, 143, false, 29},
}

func main() {
	dsn := getEnv("DATABASE_URL", fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("POSTGRES_USER", "storefront"),
		getEnv("POSTGRES_PASSWORD", "storefront_secret"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB_NAME", "storefront_db"),
		getEnv("POSTGRES_SSL_MODE", "disable"),
	))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping postgres: %v", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	log.Println("schema ready")

	now := time.Now().UTC()
	inserted := 0
	for _, p := range seedProducts {
		added := now.AddDate(0, 0, -p.daysAgo)
		tag, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, brand, model, category, description,
				price, original_price, image, stock, rating, reviews, featured,
				date_added, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14, $14)
			ON CONFLICT (id) DO NOTHING`,
			p.id, p.name, p.brand, p.model, p.category, p.description,
			p.price, p.originalPrice, p.image, p.stock, p.rating, p.reviews,
			p.featured, added,
		)
		if err != nil {
			log.Fatalf("insert %s: %v", p.id, err)
		}
		inserted += int(tag.RowsAffected())
	}

	log.Printf("seed complete: %d of %d products inserted", inserted, len(seedProducts))
}
