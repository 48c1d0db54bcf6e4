// Package schemas provides the embedded table definitions for each supported SQL dialect.
package schemas

import (
	"embed"
	"fmt"
)

// Tables contains one CREATE TABLE IF NOT EXISTS script per driver name.
//
//go:embed tables/*.sql
var Tables embed.FS

// ForDriver returns the table definitions for the given database/sql driver name.
func ForDriver(driver string) (string, error) {
	contents, err := Tables.ReadFile("tables/" + driver + ".sql")
	if err != nil {
		return "", fmt.Errorf("no schema for driver %q: %w", driver, err)
	}
	return string(contents), nil
}
