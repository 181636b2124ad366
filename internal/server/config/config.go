// Package config handles configuration for the TaskKeeper server,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// DefaultSecretKey is the built-in development signing secret. The
// server refuses to start while SecretKey is left at this value; see
// server.NewApp.
const DefaultSecretKey = "secretKey"

// Config holds runtime settings for the TaskKeeper server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//     Do not use the test default in prod.
//   - TokenValidityDuration: session token lifetime.
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = 1 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
