package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed sql/schema.sql
var schema string

func main() {
	// CLI flags
	inputFile := flag.String("file", "", "Path to the 835 remittance file to ingest")
	pgConn := flag.String("pg", os.Getenv("DATABASE_URL"), "PostgreSQL connection string (overrides host/port/user flags)")
	dbHost := flag.String("host", "localhost", "PostgreSQL host")
	dbPort := flag.Int("port", 5432, "PostgreSQL port")
	dbUser := flag.String("user", "postgres", "PostgreSQL user")
	dbPassword := flag.String("password", "", "PostgreSQL password")
	dbName := flag.String("dbname", "remittance", "PostgreSQL database name")
	initSchema := flag.Bool("init", false, "Initialize database schema")
	segmentSep := flag.String("terminator", "~", "Segment terminator character")
	elementSep := flag.String("separator", "|", "Element separator character")
	componentSep := flag.String("component", "^", "Composite component separator character")

	flag.Parse()

	if *inputFile == "" && !*initSchema {
		fmt.Println("Usage: parser -file <835_file> [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	seps, err := separatorsFromFlags(*segmentSep, *elementSep, *componentSep)
	if err != nil {
		log.Fatalf("Invalid separator configuration: %v", err)
	}

	ctx := context.Background()

	connStr := *pgConn
	if connStr == "" {
		connStr = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			*dbUser, *dbPassword, *dbHost, *dbPort, *dbName)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database successfully")

	if *initSchema {
		if err := initializeSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		log.Println("Schema initialized successfully")
		if *inputFile == "" {
			return
		}
	}

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	sourceName := filepath.Base(*inputFile)
	log.Printf("Ingesting %s (%d bytes)", sourceName, len(data))

	summary, err := Ingest(ctx, pool, sourceName, data, seps)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	if summary.AlreadyIngested {
		log.Printf("Already ingested (sha256 %s), nothing to do", summary.Fingerprint[:12])
		return
	}
	log.Printf("Ingestion complete: %d raw segments, %d claims, %d services, %d anomalies",
		summary.RawSegments, summary.Claims, summary.Services, summary.Anomalies)
}

func initializeSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}

// separatorsFromFlags validates that each separator flag is a single
// character and that the three are distinct.
func separatorsFromFlags(segment, element, component string) (Separators, error) {
	seps := DefaultSeparators()

	pick := func(name, value string, dst *rune) error {
		runes := []rune(value)
		if len(runes) != 1 {
			return fmt.Errorf("%s must be a single character, got %q", name, value)
		}
		*dst = runes[0]
		return nil
	}

	if err := pick("terminator", segment, &seps.Segment); err != nil {
		return seps, err
	}
	if err := pick("separator", element, &seps.Element); err != nil {
		return seps, err
	}
	if err := pick("component", component, &seps.Component); err != nil {
		return seps, err
	}

	if seps.Segment == seps.Element || seps.Element == seps.Component || seps.Segment == seps.Component {
		return seps, fmt.Errorf("separator characters must be distinct: %q %q %q", seps.Segment, seps.Element, seps.Component)
	}
	return seps, nil
}
