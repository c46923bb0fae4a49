package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"visit-route-service/internal/adapters/repositories"
	"visit-route-service/internal/platform/db"
)

// dbtool initializes the database schema and optionally clears the resolver
// caches. Meant for local setup and operations, not for the request path.
func main() {
	resetCaches := flag.Bool("reset-caches", false, "clear the leg and geocode caches")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *resetCaches {
		log.Println("Clearing resolver caches...")
		ctx := context.Background()
		for _, table := range []string{"leg_cache", "geocode_cache"} {
			if _, err := pool.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				log.Fatalf("clear %s failed: %v", table, err)
			}
		}
		log.Println("Caches cleared.")
	}
}
