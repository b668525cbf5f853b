package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"gopkg.in/gomail.v2"
	"gopkg.in/yaml.v3"
)

// Notifier sends lifecycle emails. Callers treat failures as best-effort
// and log them; a notification error never fails the triggering operation.
type Notifier interface {
	Send(templateName, to string, data map[string]interface{}) error
	Enabled() bool
}

// SMTPConfig configures the mail dialer
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type mailTemplate struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

// MailNotifier renders yaml-defined templates and sends them over SMTP
type MailNotifier struct {
	cfg       SMTPConfig
	templates map[string]mailTemplate
}

// NewMailNotifier loads templates from the given yaml file. When the SMTP
// host is empty the notifier is disabled and Send becomes a no-op.
func NewMailNotifier(cfg SMTPConfig, templatesPath string) (*MailNotifier, error) {
	n := &MailNotifier{cfg: cfg, templates: map[string]mailTemplate{}}

	if cfg.Host == "" {
		return n, nil
	}

	raw, err := os.ReadFile(templatesPath)
	if err != nil {
		return nil, fmt.Errorf("read mail templates: %w", err)
	}
	if err := yaml.Unmarshal(raw, &n.templates); err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}

	return n, nil
}

// Enabled reports whether mail delivery is configured
func (n *MailNotifier) Enabled() bool {
	return n.cfg.Host != ""
}

// Send renders the named template with data and delivers it
func (n *MailNotifier) Send(templateName, to string, data map[string]interface{}) error {
	if !n.Enabled() {
		return nil
	}

	tmpl, ok := n.templates[templateName]
	if !ok {
		return fmt.Errorf("mail template %q not found", templateName)
	}

	subject, err := render(tmpl.Subject, data)
	if err != nil {
		return fmt.Errorf("render subject: %w", err)
	}
	body, err := render(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("render body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func render(text string, data map[string]interface{}) (string, error) {
	tmpl, err := template.New("mail").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
