package email

// Provider sends the transactional mails the marketplace produces.
type Provider interface {
	SendWelcome(to, name string) error
	SendModerationOutcome(to, name, serviceTitle, outcome string) error
}

// NoopProvider is used when email is disabled (tests, local development).
type NoopProvider struct{}

func (NoopProvider) SendWelcome(to, name string) error { return nil }

func (NoopProvider) SendModerationOutcome(to, name, serviceTitle, outcome string) error {
	return nil
}
