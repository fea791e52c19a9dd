package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_Sqlite(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("SELECT 1").Error
	assert.NoError(t, err)
}

func TestConnect_MySQLUnreachable(t *testing.T) {
	// A closed port fails fast thanks to the DSN timeout.
	_, err := Connect(Config{
		Driver:         "mysql",
		Host:           "127.0.0.1",
		Port:           1,
		User:           "root",
		Name:           "uniform",
		TimeoutSeconds: 1,
	})
	assert.Error(t, err)
}
