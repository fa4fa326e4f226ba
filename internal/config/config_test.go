package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugrc/stewardlink/internal/config"
	"github.com/ugrc/stewardlink/pkg/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv(config.EnvServer, "db.example.internal")
	t.Setenv(config.EnvDatabase, "sgid")
	t.Setenv(config.EnvUser, "linker")
	t.Setenv(config.EnvPassword, "hunter2")
	t.Setenv(config.EnvSheet, "1abcDEF")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := config.Load()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "db.example.internal", cfg.Database.Server)
	assert.Equal(t, config.DefaultTable, cfg.Database.Table)
	assert.Equal(t, config.DefaultWorksheet, cfg.Sheet.Worksheet)
	assert.Equal(t, config.DefaultCredentialsFile, cfg.Sheet.CredentialsFile)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CATALOG_TABLE", "META.ITEMS_TEST")
	t.Setenv("SHEET_WORKSHEET", "Stewardship Staging")

	cfg := config.Load()

	assert.Equal(t, "META.ITEMS_TEST", cfg.Database.Table)
	assert.Equal(t, "Stewardship Staging", cfg.Sheet.Worksheet)
}

func TestValidateMissingValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(config.EnvPassword, "")

	cfg := config.Load()
	err := cfg.Validate()

	require.Error(t, err)
	var cfgErr *errors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "database", cfgErr.Component)
	assert.Contains(t, err.Error(), config.EnvPassword)
}

func TestValidateMissingSheet(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv(config.EnvSheet, "")

	err := config.Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvSheet)
}
