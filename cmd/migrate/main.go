package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"designlab/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const usage = "Usage: go run ./cmd/migrate [up|drop|reset|status]"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ All tables created successfully")

	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped successfully")

	case "reset":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ Tables recreated successfully")

	case "status":
		if err := showStatus(ctx, conn); err != nil {
			log.Fatalf("Failed to read table status: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println(usage)
		os.Exit(1)
	}
}

// tables lists every table created by database.Schema
var tables = []string{"documents", "cart_snapshots"}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Exec(ctx, database.Schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	for _, table := range tables {
		fmt.Printf("  Created: %s\n", table)
	}
	return nil
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	for _, table := range tables {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", table)
	}
	return nil
}

func showStatus(ctx context.Context, conn *pgx.Conn) error {
	for _, table := range tables {
		var exists bool
		err := conn.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", "public."+table).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", table, err)
		}
		if !exists {
			fmt.Printf("  %-16s missing\n", table)
			continue
		}

		var count int64
		if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		fmt.Printf("  %-16s %d rows\n", table, count)
	}
	return nil
}
