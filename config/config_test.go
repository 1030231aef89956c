package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_DRIVER", "NATS_URL", "NATS_SUBJECT_PREFIX", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "", cfg.NatsURL)
	assert.Equal(t, "taskman", cfg.NatsSubjectPrefix)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30, cfg.DBMaxOpenConns)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DEBUG", "false")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/tasks.db")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg := Load()

	assert.Equal(t, "9000", cfg.AppPort)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/tasks.db", cfg.DSN())
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, "nats://localhost:4222", cfg.NatsURL)
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: " http://a.test , ,http://b.test,"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())

	assert.Empty(t, Config{}.Origins())
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBDriver:   "postgres",
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "tasks",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=tasks sslmode=disable", cfg.DSN())

	cfg.DatabaseURL = "postgres://u:p@db:5432/tasks"
	assert.Equal(t, "postgres://u:p@db:5432/tasks", cfg.DSN())

	cfg.DBDriver = "sqlite"
	cfg.DBPath = "local.db"
	assert.Equal(t, "local.db", cfg.DSN())
}
