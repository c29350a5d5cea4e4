package mail

import (
	"context"
	"net/url"

	"just2kleen/internal/core/domain/account"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESSender is an alternative email backend for deployments that relay
// through Amazon SES instead of plain SMTP.
type SESSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender  string
	baseURL url.URL
}

func NewSESSender(awsConfig aws.Config, sender string, baseURL url.URL) *SESSender {
	return &SESSender{
		ses:     ses.NewFromConfig(awsConfig),
		sender:  sender,
		baseURL: baseURL,
	}
}

func (s *SESSender) SendConfirmationEmail(ctx context.Context, a account.Account) error {
	m, err := renderConfirmationEmail(s.baseURL, a)
	if err != nil {
		return err
	}
	return s.send(ctx, string(a.Email), m)
}

func (s *SESSender) SendPasswordResetEmail(
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

func (s *SESSender) send(ctx context.Context, to string, m message) error {
	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(m.Subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(m.Body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	)
	return err
}
