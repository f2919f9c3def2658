package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-almanac/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required at runtime.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"KeyringService", config.KeyringService},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultPort", config.DefaultPort},
		{"RouteConvert", config.RouteConvert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestSystemIDs_Integrity pins the registry identifiers: they key saved URLs
// and CLI flags, so any change here is a breaking one.
func TestSystemIDs_Integrity(t *testing.T) {
	assert.Equal(t, []string{
		config.SystemGregorian,
		config.SystemJulian,
		config.SystemHebrew,
		config.SystemIslamic,
		config.SystemPersian,
		config.SystemMaya,
	}, config.SystemIDs)

	seen := make(map[string]bool)
	for _, id := range config.SystemIDs {
		assert.NotEmpty(t, id)
		assert.Equal(t, strings.ToLower(id), id, "System IDs are lowercase by convention")
		assert.Falsef(t, seen[id], "duplicate system ID %q", id)
		seen[id] = true
	}

	assert.Contains(t, config.SystemIDs, config.DefaultTargetSystem)
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultRefreshMin, 0, "Default refresh interval must be positive")
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
	assert.NotEmpty(t, config.SupportedLanguages)
	assert.Equal(t, "en", config.SupportedLanguages[0], "English is the fallback language")
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Almanac/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	// Generous enough for contact photos, small enough to protect RAM.
	assert.GreaterOrEqual(t, int64(config.MaxHTTPResponseSize), int64(50*1024*1024))
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024))
}
