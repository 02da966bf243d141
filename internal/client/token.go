package client

import (
	"os"

	"github.com/zalando/go-keyring"

	perr "salesops/internal/platform/errors"
)

const (
	keyringService = "salesops"
	keyringKey     = "api-token"

	// EnvToken overrides the keyring when set
	EnvToken = "SALESOPS_TOKEN"
)

// LoadToken resolves the API token. The environment variable wins so
// CI and containers never need a keychain; otherwise the system
// keyring is consulted
func LoadToken() (string, error) {
	if tok := os.Getenv(EnvToken); tok != "" {
		return tok, nil
	}
	tok, err := keyring.Get(keyringService, keyringKey)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnauthorized, "no stored token")
	}
	return tok, nil
}

// SaveToken stores the API token in the system keyring
func SaveToken(token string) error {
	if token == "" {
		return perr.InvalidArgf("token must not be empty")
	}
	if err := keyring.Set(keyringService, keyringKey, token); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "store token")
	}
	return nil
}

// DeleteToken removes the stored API token
func DeleteToken() error {
	if err := keyring.Delete(keyringService, keyringKey); err != nil {
		return perr.Wrap(err, perr.ErrorCodeNotFound, "delete token")
	}
	return nil
}
