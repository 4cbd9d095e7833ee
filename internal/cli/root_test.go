package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"planets-catalog/internal/shared/config"
	"planets-catalog/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Logging:     config.LoggingConfig{Level: "error"},
		Catalog: config.CatalogConfig{
			DistanceFrom: "Earth",
			DistanceTo:   "Uranus",
		},
	}
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(testConfig(), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootDefaults(t *testing.T) {
	out, _, err := runRoot(t)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Planetary system 'Solar System': 8 planets\n"))
	assert.Contains(t, out, "Sorted by day length:\nJupiter: 9.9 hours\n")
	assert.True(t, strings.HasSuffix(out, "Distance between Earth and Uranus: 2722.9 million km\n"))
}

func TestRootFlags(t *testing.T) {
	out, _, err := runRoot(t, "--from", "Mars", "--to", "Mercury", "--system-name", "Sol")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Planetary system 'Sol': 8 planets\n"))
	assert.Contains(t, out, "Distance between Mars and Mercury: 170 million km\n")
}

func TestRootUnknownPlanet(t *testing.T) {
	out, stderr, err := runRoot(t, "--to", "Pluto")
	require.Error(t, err)

	assert.Empty(t, out)
	assert.Contains(t, stderr, `planet "Pluto" not found`)
}

func TestRootLogLevelFlag(t *testing.T) {
	_, stderr, err := runRoot(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "component=cli")
}

func TestRootRejectsUnknownLogLevel(t *testing.T) {
	out, stderr, err := runRoot(t, "--log-level", "loud")
	require.Error(t, err)

	assert.Equal(t, errors.ErrorTypeInvalidConfig, errors.GetType(err))
	assert.Empty(t, out)
	assert.Contains(t, stderr, `unknown log level "loud"`)
}

func TestRootLogLevelFlagIsCaseInsensitive(t *testing.T) {
	_, stderr, err := runRoot(t, "--log-level", "DEBUG")
	require.NoError(t, err)
	assert.Contains(t, stderr, "component=cli")
}

func TestRootRejectsArgs(t *testing.T) {
	_, _, err := runRoot(t, "extra")
	assert.Error(t, err)
}
