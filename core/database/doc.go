// Package database opens the record database and inspects its schema.
//
// It wraps GORM (Go Object Relational Mapping) and selects the dialect from the
// application's configuration.
//
// # Drivers
//
//   - mysql: a shared record database, e.g. one fed by a plugin exporter.
//   - sqlite: a local file, or ":memory:" for tests. Connections are limited to
//     one so every query sees the same database.
//
// # Schema Inspection
//
// TableColumns and MissingColumns read a table's columns so a store can refuse to
// run against a database created by an incompatible version.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "soul_gems", []string{"linked_to"})
package database
