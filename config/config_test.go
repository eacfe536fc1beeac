package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	t.Setenv("SHEETS_API_KEY", "key-from-env")
	t.Setenv("SHEET_ID", "sheet-from-env")
	t.Setenv("DEFAULT_SHEET_NAME", "THIS WEEK 1/19-1/25")
	t.Setenv("JWT_SECRET", "secret-from-env")
	t.Setenv("ACCESS_PASSWORD_HASH", "hash-from-env")

	LoadConfig()

	// Keys with no config-file entry still land from the environment.
	assert.Equal(t, "key-from-env", AppConfig.SheetsAPIKey)
	assert.Equal(t, "sheet-from-env", AppConfig.SheetID)
	assert.Equal(t, "THIS WEEK 1/19-1/25", AppConfig.DefaultSheetName)
	assert.Equal(t, "secret-from-env", AppConfig.JWTSecret)
	assert.Equal(t, "hash-from-env", AppConfig.AccessPasswordHash)

	require.NoError(t, ValidateSheetsConfig())
}

func TestValidateSheetsConfig(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.SheetsAPIKey = ""
	AppConfig.SheetID = "sheet-123"
	assert.Error(t, ValidateSheetsConfig())

	AppConfig.SheetsAPIKey = "key"
	AppConfig.SheetID = ""
	assert.Error(t, ValidateSheetsConfig())

	AppConfig.SheetID = "sheet-123"
	assert.NoError(t, ValidateSheetsConfig())
}
