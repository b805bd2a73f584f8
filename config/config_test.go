package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DATA_DIR", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/tmp/inventory-data")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/inventory-data", cfg.DataDir)
}

func TestNewLoggerLevelByEnvironment(t *testing.T) {
	dev := NewLogger(&Config{Environment: "development"})
	assert.Equal(t, logrus.DebugLevel, dev.GetLevel())

	prod := NewLogger(&Config{Environment: "production"})
	assert.Equal(t, logrus.InfoLevel, prod.GetLevel())
}
