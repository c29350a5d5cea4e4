package mail

import (
	"bytes"
	"fmt"
	"net/url"
	"text/template"

	"just2kleen/internal/core/domain/account"
)

const (
	confirmationSubject  = "Welcome to Just2Kleen! Please Confirm Your Email"
	passwordResetSubject = "Reset Your Just2Kleen Password"
)

var confirmationBody = template.Must(template.New("confirmation").Parse(
	"Hello {{.FullName}},\n\n" +
		"Thank you for registering with Just2Kleen! " +
		"Please confirm your email by clicking the link below:\n\n" +
		"{{.Link}}\n\n" +
		"If you did not register, please ignore this email.\n\n" +
		"Best regards,\nThe Just2Kleen Team",
))

var passwordResetBody = template.Must(template.New("password_reset").Parse(
	"You requested a password reset. " +
		"Please click the link below to reset your password:\n\n" +
		"{{.Link}}\n\n" +
		"If you did not request this, please ignore this email.",
))

type message struct {
	Subject string
	Body    string
}

func renderConfirmationEmail(baseURL url.URL, a account.Account) (message, error) {
	if !a.VerificationToken.IsPresent {
		return message{}, fmt.Errorf("account %s has no verification token", a.ID)
	}
	link := baseURL.JoinPath("verify-email")
	q := link.Query()
	q.Set("token", string(a.VerificationToken.Value))
	link.RawQuery = q.Encode()

	var buf bytes.Buffer
	err := confirmationBody.Execute(&buf, struct {
		FullName string
		Link     string
	}{FullName: a.FullName, Link: link.String()})
	if err != nil {
		return message{}, err
	}
	return message{Subject: confirmationSubject, Body: buf.String()}, nil
}

func renderPasswordResetEmail(baseURL url.URL, a account.Account, token account.ResetToken) (message, error) {
	link := baseURL.JoinPath("reset-password")
	q := link.Query()
	q.Set("token", string(token))
	q.Set("role", string(a.Role))
	link.RawQuery = q.Encode()

	var buf bytes.Buffer
	err := passwordResetBody.Execute(&buf, struct{ Link string }{Link: link.String()})
	if err != nil {
		return message{}, err
	}
	return message{Subject: passwordResetSubject, Body: buf.String()}, nil
}
