// Package testutil provides shared database helpers for integration tests.
// Tests that need PostgreSQL skip themselves when no server is reachable, so
// the pure-computation suites still run everywhere.
package testutil

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookwell/booking-api/internal/domain"
)

// SetupTestDB connects to the test PostgreSQL database, migrating the schema
// on first use. It uses environment variables or falls back to
// docker-compose defaults, and skips the calling test when no server is
// reachable.
func SetupTestDB(t *testing.T) *gorm.DB {
	host := getEnvOrDefault("DATABASE_HOST", "localhost")
	port := getEnvOrDefault("DATABASE_PORT", "5432")
	user := getEnvOrDefault("DATABASE_USER", "booking_user")
	password := getEnvOrDefault("DATABASE_PASSWORD", "booking_password")
	dbname := getEnvOrDefault("DATABASE_NAME", "booking")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		host, port, user, password, dbname)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("PostgreSQL not available, skipping: %v", err)
	}
	if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
		t.Skip("PostgreSQL not reachable, skipping")
	}

	err = db.AutoMigrate(
		&domain.Service{},
		&domain.StaffMember{},
		&domain.Client{},
		&domain.Quote{},
		&domain.QuoteLineItem{},
		&domain.QuoteAssignment{},
		&domain.QuoteAttachment{},
		&domain.NumberSequence{},
	)
	require.NoError(t, err)

	return db
}

// SetupCleanTestDB connects and wipes all test data up front
func SetupCleanTestDB(t *testing.T) *gorm.DB {
	db := SetupTestDB(t)
	CleanupTestData(t, db)
	return db
}

// CleanupTestData removes test rows from all tables, child tables first
func CleanupTestData(t *testing.T, db *gorm.DB) {
	tables := []string{
		"quote_attachments",
		"quote_assignments",
		"quote_line_items",
		"quotes",
		"number_sequences",
		"clients",
		"staff_members",
		"services",
	}

	for _, table := range tables {
		err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error
		if err != nil {
			t.Logf("Note: Could not clean table %s: %v", table, err)
		}
	}
}

// CreateTestService inserts a fixed-price catalog entry
func CreateTestService(t *testing.T, db *gorm.DB, name string, unitPrice int64) *domain.Service {
	svc := &domain.Service{
		Name:            name,
		Category:        "Test",
		UnitPrice:       unitPrice,
		DurationMinutes: 45,
		PricingMode:     domain.PricingModeFixed,
		IsActive:        true,
	}
	require.NoError(t, db.Create(svc).Error)
	return svc
}

// CreateTestStaff inserts an active roster member with a unique email
func CreateTestStaff(t *testing.T, db *gorm.DB, firstName, lastName string) *domain.StaffMember {
	staff := &domain.StaffMember{
		FirstName: firstName,
		LastName:  lastName,
		Email:     fmt.Sprintf("%s@test.local", uuid.NewString()),
		Role:      "Tester",
		Skills:    pq.StringArray{"testing"},
		IsActive:  true,
	}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

// CreateTestClient inserts a client record
func CreateTestClient(t *testing.T, db *gorm.DB, firstName, lastName string) *domain.Client {
	client := &domain.Client{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     "99887766",
		Email:     fmt.Sprintf("%s@client.local", uuid.NewString()),
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
