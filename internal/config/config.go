// Package config loads the classrent backend settings from the process
// environment, optionally seeded by a local .env file, and validates them
// once at startup. The resulting Settings value is never mutated after Load
// returns, so it can be shared freely across goroutines.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const envProduction = "production"

// Settings is the runtime configuration consumed by the rest of the
// application. Construct it with Load and pass it by reference to whatever
// needs it.
type Settings struct {
	MongoDBURL   string
	DatabaseName string

	SecretKey      string
	Algorithm      string
	AccessTokenTTL time.Duration

	OpenAIAPIKey string

	SMTPServer    string
	SMTPPort      int
	EmailUsername string
	EmailPassword string

	CalDAVURL      string
	CalDAVUsername string
	CalDAVPassword string

	Environment string
	Debug       bool
}

type loader struct {
	envFile   string
	overrides map[string]string
}

// Option adjusts how Load resolves settings.
type Option func(*loader)

// WithValue pins key (an environment-style name such as "MONGODB_URL",
// case-insensitive) to value, taking precedence over the process
// environment and the env file.
func WithValue(key, value string) Option {
	return func(l *loader) { l.overrides[strings.ToUpper(key)] = value }
}

// WithEnvFile reads file defaults from path instead of ./.env. An empty
// path disables the env file entirely.
func WithEnvFile(path string) Option {
	return func(l *loader) { l.envFile = path }
}

// Load builds a Settings record. Each field resolves, in order, from an
// explicit WithValue override, the environment, the env file, then its
// declared default. Unknown environment keys are ignored.
//
// Validation failures wrap ErrMissingRequired or ErrInsecureProduction and
// are fatal: the process must not continue with a broken configuration.
func Load(opts ...Option) (*Settings, error) {
	l := &loader{envFile: ".env", overrides: map[string]string{}}
	for _, opt := range opts {
		opt(l)
	}

	// godotenv never overrides variables already present in the real
	// environment, which keeps the file a lower-priority source.
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil {
			logrus.WithError(err).Debug("env file not loaded")
		}
	}

	s := &Settings{}
	fields := []struct {
		key      string
		fallback string
		assign   func(*Settings, string) error
	}{
		{"MONGODB_URL", "", func(s *Settings, v string) error { s.MongoDBURL = v; return nil }},
		{"DATABASE_NAME", "classrent", func(s *Settings, v string) error { s.DatabaseName = v; return nil }},
		{"SECRET_KEY", "", func(s *Settings, v string) error { s.SecretKey = v; return nil }},
		{"ALGORITHM", "HS256", func(s *Settings, v string) error { s.Algorithm = v; return nil }},
		{"ACCESS_TOKEN_EXPIRE_MINUTES", "30", func(s *Settings, v string) error {
			minutes, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			s.AccessTokenTTL = time.Duration(minutes) * time.Minute
			return nil
		}},
		{"OPENAI_API_KEY", "", func(s *Settings, v string) error { s.OpenAIAPIKey = v; return nil }},
		{"SMTP_SERVER", "smtp.gmail.com", func(s *Settings, v string) error { s.SMTPServer = v; return nil }},
		{"SMTP_PORT", "587", func(s *Settings, v string) error {
			port, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			s.SMTPPort = port
			return nil
		}},
		{"EMAIL_USERNAME", "", func(s *Settings, v string) error { s.EmailUsername = v; return nil }},
		{"EMAIL_PASSWORD", "", func(s *Settings, v string) error { s.EmailPassword = v; return nil }},
		{"CALDAV_URL", "", func(s *Settings, v string) error { s.CalDAVURL = v; return nil }},
		{"CALDAV_USERNAME", "", func(s *Settings, v string) error { s.CalDAVUsername = v; return nil }},
		{"CALDAV_PASSWORD", "", func(s *Settings, v string) error { s.CalDAVPassword = v; return nil }},
		{"ENVIRONMENT", "development", func(s *Settings, v string) error { s.Environment = v; return nil }},
		{"DEBUG", "true", func(s *Settings, v string) error {
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			s.Debug = debug
			return nil
		}},
	}
	for _, f := range fields {
		if err := f.assign(s, l.resolve(f.key, f.fallback)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", f.key, err)
		}
	}

	if s.SecretKey == "" {
		s.SecretKey = GenerateSecretKey()
	}

	if s.MongoDBURL == "" {
		return nil, fmt.Errorf("%w: MONGODB_URL", ErrMissingRequired)
	}
	if s.Environment == envProduction && s.Debug {
		s.Debug = false
	}
	if s.Environment == envProduction && len(s.SecretKey) < 32 {
		return nil, fmt.Errorf("%w: SECRET_KEY must be at least 32 characters", ErrInsecureProduction)
	}

	return s, nil
}

func (l *loader) resolve(key, fallback string) string {
	if v := strings.TrimSpace(l.overrides[key]); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	if v := strings.TrimSpace(envFold(key)); v != "" {
		return v
	}
	return fallback
}

// envFold scans the environment for key ignoring case, so lowercase
// variants like "mongodb_url" are honored. Blank values are treated as
// unset, same as the exact-match path.
func envFold(key string) string {
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(k, key) && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
