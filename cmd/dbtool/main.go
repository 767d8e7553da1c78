package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/GoSim-25-26J-441/jobly-backend/config"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: dbtool migrate|seed")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "migrate":
		err = postgres.Migrate(ctx, db)
	case "seed":
		if err = postgres.Migrate(ctx, db); err == nil {
			err = postgres.Seed(ctx, db)
		}
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
	log.Printf("%s: done", os.Args[1])
}
