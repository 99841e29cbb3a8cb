package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit_Development verifies logger initialization in development mode.
func TestInit_Development(t *testing.T) {
	err := Init("development", "debug")
	require.NoError(t, err)
	assert.NotNil(t, Get())
}

// TestInit_Production verifies logger initialization in production mode.
func TestInit_Production(t *testing.T) {
	err := Init("production", "info")
	require.NoError(t, err)
	assert.NotNil(t, Get())
}

// TestInit_InvalidLevel verifies that an unknown level falls back to the config default.
func TestInit_InvalidLevel(t *testing.T) {
	err := Init("development", "not-a-level")
	require.NoError(t, err)
	assert.NotNil(t, Get())
}

// TestGet_Uninitialized verifies that Get returns a no-op logger before Init.
func TestGet_Uninitialized(t *testing.T) {
	saved := globalLogger
	globalLogger = nil
	defer func() { globalLogger = saved }()

	l := Get()
	require.NotNil(t, l)
	// Must not panic.
	l.Info("noop")
}

// TestNamed verifies that Named returns a scoped logger.
func TestNamed(t *testing.T) {
	require.NoError(t, Init("development", "info"))
	assert.NotNil(t, Named("engine"))
}
