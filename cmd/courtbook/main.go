// cmd/courtbook/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arenalabs/courtbook/internal/auth"
	"github.com/arenalabs/courtbook/internal/config"
	"github.com/arenalabs/courtbook/internal/model"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

var rootCmd = &cobra.Command{
	Use:   "courtbook",
	Short: "Courtbook is a CLI tool for managing the reservation database",
	Long:  `Courtbook manages schema migrations and seed data for the court reservation backend.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update all tables and indexes. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := openGorm(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		err = db.AutoMigrate(
			&model.Organization{},
			&model.User{},
			&model.Court{},
			&model.AvailabilityRule{},
			&model.Booking{},
			&model.Class{},
			&model.ClassStudent{},
			&model.Invoice{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		if err := applyRawDDL(cfg); err != nil {
			log.Fatalf("Failed to apply indexes: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

// rawDDL holds the statements gorm tags cannot express. The partial unique
// index is the hard conflict guarantee behind booking creation: only
// non-cancelled rows contend for a slot.
var rawDDL = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		ON bookings (organization_id, court_id, date, start_time)
		WHERE status <> 'CANCELLED'`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_court_date
		ON bookings (court_id, date)`,
}

func applyRawDDL(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	for _, stmt := range rawDDL {
		if verbose {
			fmt.Println(stmt)
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}
	return nil
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo organization with an admin user and courts",
	Long:  `Seed a starter tenant for local development: one organization, one admin login and two courts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		db, err := openGorm(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		org := model.Organization{Name: "Demo Arena", Subdomain: "demo"}
		if err := db.Where(model.Organization{Subdomain: "demo"}).
			FirstOrCreate(&org).Error; err != nil {
			log.Fatalf("Failed to seed organization: %v", err)
		}

		hasher := auth.NewPasswordHasher()
		hash, err := hasher.Hash("admin123")
		if err != nil {
			log.Fatalf("Failed to hash seed password: %v", err)
		}

		admin := model.User{
			OrganizationID: org.ID,
			Name:           "Admin",
			Email:          "admin@demo.local",
			PasswordHash:   hash,
			Role:           model.RoleAdmin,
		}
		if err := db.Where(model.User{OrganizationID: org.ID, Email: admin.Email}).
			FirstOrCreate(&admin).Error; err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}

		defaultPrice := 80.0
		premiumPrice := 120.0
		for _, name := range []string{"Court 1", "Court 2"} {
			court := model.Court{
				OrganizationID: org.ID,
				Name:           name,
				SportType:      "tennis",
				IsActive:       true,
				DefaultPrice:   &defaultPrice,
				PremiumPrice:   &premiumPrice,
			}
			if err := db.Where(model.Court{OrganizationID: org.ID, Name: name}).
				FirstOrCreate(&court).Error; err != nil {
				log.Fatalf("Failed to seed court %s: %v", name, err)
			}
		}

		fmt.Println("Seed data created: organization=demo admin=admin@demo.local")
	},
}

func openGorm(cfg *config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
