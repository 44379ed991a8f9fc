package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:     "localhost",
			Port:     9999, // Unused port
			User:     "root",
			Password: "wrongpassword",
			Name:     "srd",
		}

		// Connect should fail (timeout or refused).
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestMissingTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	// skills exists, monsters does not. The migrator resolves the current
	// schema before each lookup.
	mock.ExpectQuery("SELECT DATABASE").
		WillReturnRows(sqlmock.NewRows([]string{"db"}).AddRow("srd"))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT DATABASE").
		WillReturnRows(sqlmock.NewRows([]string{"db"}).AddRow("srd"))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	missing := MissingTables(gormDB, []string{"skills", "monsters"})
	assert.Equal(t, []string{"monsters"}, missing)
}
