// Package database handles record store connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections for
// deployments and SQLite connections for local use and tests, selected by
// the Driver configuration field.
//
// # Schema Inspection
//
// The package includes tools to inspect the store schema, used by the
// "check" command to verify that the inventory and transaction tables exist
// and carry the expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "transactions")
package database
