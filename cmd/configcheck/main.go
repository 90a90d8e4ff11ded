// configcheck loads the classrent configuration exactly as the backend
// would and reports the effective, redacted settings. Exits non-zero when
// the environment is invalid, so it can gate deployments.
package main

import (
	"sort"

	"github.com/sirupsen/logrus"

	"classrent/internal/auth"
	"classrent/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"database":    cfg.DatabaseName,
		"debug":       cfg.Debug,
	}).Info("configuration OK")

	if _, err := auth.NewIssuer(cfg); err != nil {
		logrus.Fatalf("token signing misconfigured: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"mail":     cfg.MailConfigured(),
		"calendar": cfg.CalendarConfigured(),
		"ai":       cfg.AIConfigured(),
	}).Info("optional integrations")

	redacted := cfg.Redacted()
	keys := make([]string, 0, len(redacted))
	for k := range redacted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		logrus.Debugf("%s=%s", k, redacted[k])
	}
}
