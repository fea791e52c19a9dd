// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure the MySQL connection used for inventory and
// member uniform records, with a sqlite driver available for tests.
//
// # Connect
//
// Connect builds the DSN, applies pool settings and verifies the
// connection with a bounded ping.
//
// # Schema Inspection
//
// GetTableColumns retrieves column definitions for a table, used by the
// stock check command to verify that the uniform tables match the models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "inventory_records")
package database
