package database

import (
	"path/filepath"
	"testing"

	"github.com/Polceze/taskman/config"
	"github.com/Polceze/taskman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestClose(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	database := &Database{DB: db}

	assert.NotPanics(t, func() {
		database.Close()
	})
}

func TestCloseNil(t *testing.T) {
	database := &Database{}
	assert.NotPanics(t, func() {
		database.Close()
	})
}

func TestDialector(t *testing.T) {
	dialector, err := Dialector(config.Config{DBDriver: "postgres", DatabaseURL: "postgres://localhost/taskman"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialector.Name())

	dialector, err = Dialector(config.Config{DBDriver: "sqlite", DBPath: "tasks.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", dialector.Name())

	_, err = Dialector(config.Config{DBDriver: "mysql"})
	assert.Error(t, err)
}

func TestSetupSQLite(t *testing.T) {
	cfg := config.Config{
		DBDriver:       "sqlite",
		DBPath:         filepath.Join(t.TempDir(), "taskman.db"),
		DBMaxIdleConns: 1,
		DBMaxOpenConns: 1,
	}

	db, err := Setup(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.DB.Migrator().HasTable(&models.Task{}))
	for _, index := range []string{"ix_tasks_id", "ix_tasks_status", "ix_tasks_due_date"} {
		assert.True(t, db.DB.Migrator().HasIndex(&models.Task{}, index), index)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	task := models.Task{Title: "first", Status: models.StatusPending}
	require.NoError(t, db.Create(&task).Error)
	assert.NotZero(t, task.ID)
	assert.False(t, task.CreateDate.IsZero())
}

func TestSetupUnsupportedDriver(t *testing.T) {
	_, err := Setup(config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}
