package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address (e.g., ":8080")
//	SECRET_KEY      token signing secret
//	TOKEN_VALIDITY  session token lifetime (time.ParseDuration format)
//
// Unset variables leave the current values untouched; an unparsable
// TOKEN_VALIDITY is ignored.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
