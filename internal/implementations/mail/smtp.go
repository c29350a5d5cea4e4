package mail

import (
	"context"
	"net/url"

	"just2kleen/internal/core/domain/account"

	"github.com/wneessen/go-mail"
)

const senderName = "Just2Kleen"

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender delivers confirmation and password reset emails through a plain
// SMTP relay (Gmail in the default deployment).
type SMTPSender struct {
	client  *mail.Client
	from    string
	baseURL url.URL
}

func NewSMTPSender(config SMTPConfig, baseURL url.URL) (*SMTPSender, error) {
	if config.Host == "" {
		panic("smtp host must not be empty")
	}
	opts := []mail.Option{
		mail.WithPort(config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.Username),
		mail.WithPassword(config.Password),
	}
	// Port 465 speaks implicit TLS, everything else negotiates STARTTLS.
	if config.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	client, err := mail.NewClient(config.Host, opts...)
	if err != nil {
		return nil, err
	}
	return &SMTPSender{client: client, from: config.From, baseURL: baseURL}, nil
}

func (s *SMTPSender) SendConfirmationEmail(ctx context.Context, a account.Account) error {
	m, err := renderConfirmationEmail(s.baseURL, a)
	if err != nil {
		return err
	}
	return s.send(ctx, string(a.Email), m)
}

func (s *SMTPSender) SendPasswordResetEmail(
	ctx context.Context,
	a account.Account,
	token account.ResetToken,
) error {
	m, err := renderPasswordResetEmail(s.baseURL, a, token)
	if err != nil {
		return err
	}
	return s.send(ctx, string(a.Email), m)
}

func (s *SMTPSender) send(ctx context.Context, to string, m message) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(senderName, s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	return s.client.DialAndSendWithContext(ctx, msg)
}
