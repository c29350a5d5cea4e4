package sendpasswordresettoken

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
	Role  account.Role
}

func (i Input) GetRateLimitKey() string {
	return "forgot-password::" + string(i.Email)
}

type Result struct {
	Account account.Account
	Token   account.ResetToken
}

type service struct {
	log            logging.Logger
	accounts       account.Repository
	tokenGenerator account.ResetTokenGenerator
	validDuration  time.Duration
	now            func() time.Time
}

// New creates the service that issues a password reset token. Each call
// overwrites any pending token and its expiry as a pair.
func New(
	log logging.Logger,
	accounts account.Repository,
	tokenGenerator account.ResetTokenGenerator,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		accounts:       accounts,
		tokenGenerator: tokenGenerator,
		validDuration:  validDuration,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	_, err = s.accounts.GetByEmail(ctx, input.Role, input.Email)
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		s.log.Info(
			ctx,
			"Account not found for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("role", input.Role),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("role", input.Role),
			logging.Entry("err", err),
		)
		return result, err
	}

	token := s.tokenGenerator.GenerateResetToken()
	acc, err := s.accounts.SetResetToken(ctx, account.SetResetTokenInput{
		Role:        input.Role,
		Email:       input.Email,
		ResetToken:  token,
		TokenExpiry: s.now().Add(s.validDuration),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not set password reset token.",
			logging.Entry("email", input.Email),
			logging.Entry("role", input.Role),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token issued.",
		logging.Entry("accountID", acc.ID),
		logging.Entry("role", acc.Role),
		logging.Entry("tokenExpiry", acc.TokenExpiry.Value),
	)
	return Result{Account: acc, Token: token}, nil
}
