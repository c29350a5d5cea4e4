package verifyemail

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
)

type Input struct {
	Token account.VerificationToken
}

type Result struct {
	Account account.Account
	// AlreadyVerified is set when the token matched an account that was
	// verified before this call; the operation is an idempotent no-op.
	AlreadyVerified bool
}

type service struct {
	log      logging.Logger
	accounts account.Repository
}

func New(
	log logging.Logger,
	accounts account.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	return &service{log: log, accounts: accounts}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	acc, err := s.accounts.GetByVerificationToken(ctx, input.Token)
	if errors.Is(err, account.ErrInvalidVerificationToken) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not look up account by verification token.",
			logging.Entry("err", err),
		)
		return result, err
	}

	if acc.IsVerified {
		return Result{Account: acc, AlreadyVerified: true}, nil
	}

	// Single conditional update: matches only while the token is still in
	// place and the account is unverified, so a concurrent verification
	// cannot be applied twice.
	verified, err := s.accounts.VerifyByToken(ctx, input.Token)
	if errors.Is(err, account.ErrInvalidVerificationToken) {
		// The token was consumed between lookup and update.
		return Result{Account: acc, AlreadyVerified: true}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not verify account.",
			logging.Entry("accountID", acc.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Account email successfully verified.",
		logging.Entry("accountID", verified.ID),
		logging.Entry("role", verified.Role),
	)
	return Result{Account: verified}, nil
}
