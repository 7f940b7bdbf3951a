package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column is one column of a table as reported by the database.
type Column struct {
	Name string
	Type string
}

// TableColumns lists the columns of table, lowercased. A missing table yields no
// columns.
func TableColumns(db *gorm.DB, table string) ([]Column, error) {
	var columns []Column

	if db.Dialector.Name() == DriverSQLite {
		type sqliteColumn struct {
			Name string
			Type string
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		for _, r := range rows {
			columns = append(columns, Column{Name: strings.ToLower(r.Name), Type: strings.ToLower(r.Type)})
		}
		return columns, nil
	}

	type mysqlColumn struct {
		Field string
		Type  string
	}
	var rows []mysqlColumn
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	for _, r := range rows {
		columns = append(columns, Column{Name: strings.ToLower(r.Field), Type: strings.ToLower(r.Type)})
	}
	return columns, nil
}

// MissingColumns returns the names in want that table lacks, in order.
func MissingColumns(db *gorm.DB, table string, want []string) ([]string, error) {
	columns, err := TableColumns(db, table)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Name] = true
	}

	var missing []string
	for _, name := range want {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
