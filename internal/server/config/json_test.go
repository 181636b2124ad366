package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(contents), 0o600)
	require.NoError(t, err)
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := writeTempConfig(t, `{
		"endpoint_addr": ":7070",
		"secret_key": "json-secret",
		"token_validity_duration": "45m"
	}`)
	os.Args = []string{"app", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddr, ":7070")
	assert.Equal(t, c.SecretKey, "json-secret")
	assert.Equal(t, c.TokenValidityDuration, 45*time.Minute)
}

func TestParseJson_MissingFieldsKeepDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := writeTempConfig(t, `{"endpoint_addr": ":7070"}`)
	os.Args = []string{"app", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddr, ":7070")
	assert.Equal(t, c.SecretKey, "secretKey")
	assert.Equal(t, c.TokenValidityDuration, 1*time.Hour)
}

func TestParseJson_NoFileConfigured(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"app"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddr, ":8080")
}
