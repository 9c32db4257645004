package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Donation indexes for the claim predicate and listings
		{"donations", "idx_donations_donor_id", "donor_id"},
		{"donations", "idx_donations_ngo_id", "ngo_id"},
		{"donations", "idx_donations_status", "status"},
		{"donations", "idx_donations_expiry_date", "expiry_date"},
		{"donations", "idx_donations_food_type", "food_type"},

		// Request indexes
		{"requests", "idx_requests_ngo_id", "ngo_id"},
		{"requests", "idx_requests_status", "status"},
		{"requests", "idx_requests_request_date", "request_date"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// Reset destructively drops every table so the schema can be recreated from
// scratch. Used by the maintenance utility only.
func Reset(db *gorm.DB) error {
	// Children first so foreign keys do not block the drop.
	tables := []string{"requests", "donations", "ngos", "donors", "users"}
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			continue
		}
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
