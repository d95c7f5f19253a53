package db

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

var DB *sql.DB

// InitDB initializes the database connection and sets up Goose for migrations.
func InitDB(ctx context.Context, dataSourceName string) error {
	var err error
	DB, err = sql.Open("postgres", dataSourceName)
	if err != nil {
		return errors.Wrap(err, "failed to open database connection")
	}

	// Check database connection
	if err = DB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	// Set up Goose to use the database connection
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set Goose dialect")
	}

	// Configure database connection pool settings
	DB.SetMaxOpenConns(20)
	DB.SetMaxIdleConns(10)

	log.Println("Database connection initialized successfully.")
	return nil
}
