package config

import "strconv"

// Redacted returns the effective settings keyed by environment name with
// secret material masked. Safe to log.
func (s *Settings) Redacted() map[string]string {
	return map[string]string{
		"MONGODB_URL":                 s.MongoDBURL,
		"DATABASE_NAME":               s.DatabaseName,
		"SECRET_KEY":                  mask(s.SecretKey),
		"ALGORITHM":                   s.Algorithm,
		"ACCESS_TOKEN_EXPIRE_MINUTES": strconv.Itoa(int(s.AccessTokenTTL.Minutes())),
		"OPENAI_API_KEY":              mask(s.OpenAIAPIKey),
		"SMTP_SERVER":                 s.SMTPServer,
		"SMTP_PORT":                   strconv.Itoa(s.SMTPPort),
		"EMAIL_USERNAME":              s.EmailUsername,
		"EMAIL_PASSWORD":              mask(s.EmailPassword),
		"CALDAV_URL":                  s.CalDAVURL,
		"CALDAV_USERNAME":             s.CalDAVUsername,
		"CALDAV_PASSWORD":             mask(s.CalDAVPassword),
		"ENVIRONMENT":                 s.Environment,
		"DEBUG":                       strconv.FormatBool(s.Debug),
	}
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return "********"
}
