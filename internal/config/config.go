// Package config resolves stewardlink configuration from the environment
// and any viper-bound config file into one explicit struct, constructed
// once at process start. The reconciliation core never reads configuration
// itself; readers and the updater receive resolved values through their
// constructors.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/ugrc/stewardlink/pkg/errors"
)

// Environment variable names, shared with the original scheduled task.
const (
	EnvServer   = "AGOL_SERVER"
	EnvDatabase = "AGOL_DB"
	EnvUser     = "AGOL_USER"
	EnvPassword = "AGOL_PW"
	EnvSheet    = "AGOL_SHEET"
)

// Defaults for values the environment rarely overrides.
const (
	DefaultTable           = "META.AGOLITEMS"
	DefaultWorksheet       = "SGID Stewardship Info"
	DefaultCredentialsFile = "client_secret.json"
)

// Database holds the catalog database connection settings.
type Database struct {
	Server   string
	Name     string
	User     string
	Password string
	Table    string
}

// Sheet holds the stewardship spreadsheet settings.
type Sheet struct {
	SpreadsheetID   string
	Worksheet       string
	CredentialsFile string
}

// Config is the resolved configuration for one process.
type Config struct {
	Database Database
	Sheet    Sheet
}

// Load resolves configuration from viper and the environment.
func Load() *Config {
	return &Config{
		Database: Database{
			Server:   GetString(EnvServer),
			Name:     GetString(EnvDatabase),
			User:     GetString(EnvUser),
			Password: GetString(EnvPassword),
			Table:    getStringDefault("CATALOG_TABLE", DefaultTable),
		},
		Sheet: Sheet{
			SpreadsheetID:   GetString(EnvSheet),
			Worksheet:       getStringDefault("SHEET_WORKSHEET", DefaultWorksheet),
			CredentialsFile: getStringDefault("SHEET_CREDENTIALS", DefaultCredentialsFile),
		},
	}
}

// Validate checks that every required value is present.
func (c *Config) Validate() error {
	required := []struct {
		value, env, component string
	}{
		{c.Database.Server, EnvServer, "database"},
		{c.Database.Name, EnvDatabase, "database"},
		{c.Database.User, EnvUser, "database"},
		{c.Database.Password, EnvPassword, "database"},
		{c.Sheet.SpreadsheetID, EnvSheet, "sheet"},
	}

	for _, r := range required {
		if r.value == "" {
			return errors.NewConfigError(r.component, r.env+" not set", nil)
		}
	}

	return nil
}

// GetString is a helper to get string values from viper.
// It checks both OS environment variables and viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

func getStringDefault(key, fallback string) string {
	if v := GetString(key); v != "" {
		return v
	}
	return fallback
}
