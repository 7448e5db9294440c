package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE inventory (id INTEGER PRIMARY KEY, device_name TEXT, total_stock INTEGER)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "inventory")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	fields := make([]string, 0, len(columns))
	for _, col := range columns {
		fields = append(fields, col.Field)
	}
	assert.Contains(t, fields, "device_name")
	assert.Contains(t, fields, "total_stock")
}
