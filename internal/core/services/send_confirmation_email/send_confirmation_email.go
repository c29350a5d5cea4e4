package sendconfirmationemail

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
)

type Input struct {
	Account account.Account
}

type Result struct{}

type service struct {
	log    logging.Logger
	sender account.ConfirmationEmailSender
}

// New creates the service that performs the actual confirmation email send.
// It is run by the queue consumer, not by the sweeper directly.
func New(
	log logging.Logger,
	sender account.ConfirmationEmailSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &service{log: log, sender: sender}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !input.Account.VerificationToken.IsPresent {
		return result, e.NewInvalidStateError(
			"verification token is not set for account " + input.Account.ID.String(),
		)
	}

	err = s.sender.SendConfirmationEmail(ctx, input.Account)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send confirmation email.",
			logging.Entry("email", input.Account.Email),
			logging.Entry("role", input.Account.Role),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Confirmation email sent.",
		logging.Entry("email", input.Account.Email),
		logging.Entry("role", input.Account.Role),
	)
	return result, nil
}
