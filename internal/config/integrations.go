package config

// The mail, calendar and AI integrations are optional: the backend runs
// without them and each service checks its own credentials before
// connecting. These predicates are those checks.

// MailConfigured reports whether SMTP credentials are complete. The
// server/port defaults alone are not enough to send mail.
func (s *Settings) MailConfigured() bool {
	return s.EmailUsername != "" && s.EmailPassword != ""
}

// CalendarConfigured reports whether all CalDAV credentials are present.
func (s *Settings) CalendarConfigured() bool {
	return s.CalDAVURL != "" && s.CalDAVUsername != "" && s.CalDAVPassword != ""
}

// AIConfigured reports whether an OpenAI API key was provided.
func (s *Settings) AIConfigured() bool {
	return s.OpenAIAPIKey != ""
}
