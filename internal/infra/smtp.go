package infra

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/config"
	"github.com/iacubdiego/Calo-indumentaria-web/internal/dto"
)

// Mailer delivers contact form submissions to the sales inbox.
type Mailer struct {
	host      string
	user      string
	password  string
	from      string
	addr      string
	recipient string
}

// NewMailer returns nil when SMTP is not configured. A relay without
// authentication is fine, but the sender address is mandatory.
func NewMailer(cfg *config.Config) *Mailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	if cfg.SMTPHost == "" || cfg.ContactRecipient == "" || from == "" {
		return nil
	}
	return &Mailer{
		host:      cfg.SMTPHost,
		user:      cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		from:      from,
		addr:      fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		recipient: cfg.ContactRecipient,
	}
}

// SendContact emails one contact request. Reply-To is the visitor so the
// sales team can answer directly.
func (m *Mailer) SendContact(req dto.ContactRequest) error {
	e := m.contactEmail(req)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: send contact: %w", err)
	}
	return nil
}

func (m *Mailer) contactEmail(req dto.ContactRequest) *email.Email {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{m.recipient}
	e.ReplyTo = []string{req.Email}
	e.Subject = "Nueva consulta web: " + req.Name
	e.Text = []byte(ContactBody(req))
	return e
}

// ContactBody renders the plain-text message body.
func ContactBody(req dto.ContactRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nombre: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", req.Phone)
	}
	if req.Company != "" {
		fmt.Fprintf(&b, "Empresa: %s\n", req.Company)
	}
	fmt.Fprintf(&b, "\n%s\n", req.Message)
	return b.String()
}
