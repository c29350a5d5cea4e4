package sendpasswordresettoken

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
)

type sendResetEmailService struct {
	log    logging.Logger
	sender account.PasswordResetEmailSender
	inner  services.Service[Input, Result]
}

// NewWithResetEmailSending decorates the token-issuing service with the email
// send. The email goes out only after the token has been persisted.
func NewWithResetEmailSending(
	log logging.Logger,
	sender account.PasswordResetEmailSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &sendResetEmailService{log: log, sender: sender, inner: inner}
}

func (s *sendResetEmailService) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if err != nil {
		return result, err
	}

	err = s.sender.SendPasswordResetEmail(ctx, result.Account, result.Token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset email.",
			logging.Entry("email", input.Email),
			logging.Entry("role", input.Role),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset email sent.",
		logging.Entry("email", input.Email),
		logging.Entry("role", input.Role),
	)
	return result, nil
}
