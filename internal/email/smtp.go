package email

import (
	"bytes"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider delivers mail through a plain SMTP relay.
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

var welcomeTpl = template.Must(template.New("welcome").Parse(`
<p>Hola {{.Name}},</p>
<p>Tu cuenta en SkillLink ha sido creada. Ya puedes publicar y solicitar servicios.</p>
`))

var moderationTpl = template.Must(template.New("moderation").Parse(`
<p>Hola {{.Name}},</p>
<p>Tu servicio <strong>{{.Title}}</strong> ha sido <strong>{{.Outcome}}</strong> por el equipo de moderación.</p>
`))

func (p *SMTPProvider) send(to, subject string, tpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	return p.send(to, "Bienvenido a SkillLink", welcomeTpl, map[string]string{
		"Name": name,
	})
}

func (p *SMTPProvider) SendModerationOutcome(to, name, serviceTitle, outcome string) error {
	return p.send(to, "Resultado de moderación de tu servicio", moderationTpl, map[string]string{
		"Name":    name,
		"Title":   serviceTitle,
		"Outcome": outcome,
	})
}
