package config

import "errors"

// Startup validation failures. Both are fatal: the operator fixes the
// environment and restarts, there is no retry.
var (
	// ErrMissingRequired reports a required setting with no value.
	ErrMissingRequired = errors.New("missing required configuration")

	// ErrInsecureProduction reports a secret key too short to run with
	// ENVIRONMENT=production.
	ErrInsecureProduction = errors.New("weak secret in production")
)
