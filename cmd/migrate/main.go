package main

import (
	"os"

	"travel-backoffice-be/internal/config"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.Open(database.Options{Driver: cfg.Database.Driver, DSN: cfg.Database.Connection})
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM migration (%s)...", cfg.Database.Driver)

	if cfg.Database.Driver != database.DriverSQLite {
		color.Cyan("Step 1: Setting up extensions...")
		for _, sql := range []string{
			`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
			`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		} {
			if err := db.Exec(sql).Error; err != nil {
				color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
			}
		}
	}

	models := model.All()
	color.Cyan("Step 2: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Cyan("Step 3: Creating secondary indexes...")
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_payments_status_paid_by ON payments (status, paid_by);`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_created_by_status ON bookings (created_by, status);`,
		`CREATE INDEX IF NOT EXISTS idx_visa_applications_applied_by_status ON visa_applications (applied_by, status);`,
		`CREATE INDEX IF NOT EXISTS idx_otp_verifications_expires_at ON otp_verifications (expires_at);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("Success: database migration completed.")
}
