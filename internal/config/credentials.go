package config

import (
	"os"

	"glpi-inventory/internal/domain"
)

// Environment variables holding the GLPI tokens. The unprefixed names are
// accepted as a fallback.
const (
	EnvAppToken  = "GLPI_APP_TOKEN"
	EnvUserToken = "GLPI_USER_TOKEN"

	envAppTokenFallback  = "APP_TOKEN"
	envUserTokenFallback = "USER_TOKEN"
)

// LookupFunc resolves an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// LoadCredentials reads both tokens through lookup (os.LookupEnv when nil)
func LoadCredentials(lookup LookupFunc) (domain.Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	creds := domain.Credentials{
		AppToken:  firstSet(lookup, EnvAppToken, envAppTokenFallback),
		UserToken: firstSet(lookup, EnvUserToken, envUserTokenFallback),
	}

	if creds.Complete() {
		return creds, nil
	}
	if creds.AppToken == "" {
		return creds, domain.Missing(EnvAppToken)
	}
	return creds, domain.Missing(EnvUserToken)
}

func firstSet(lookup LookupFunc, keys ...string) string {
	for _, key := range keys {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
	}
	return ""
}
