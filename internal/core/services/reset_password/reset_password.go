package resetpassword

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
	"time"
)

type Input struct {
	Token       account.ResetToken
	Role        account.Role
	NewPassword account.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	accounts       account.Repository
	passwordHasher account.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	accounts account.Repository,
	passwordHasher account.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		accounts:       accounts,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	acc, err := s.accounts.GetByResetToken(ctx, input.Role, input.Token)
	if errors.Is(err, account.ErrInvalidResetToken) {
		// Wrong and expired-then-reissued tokens are indistinguishable
		// here; expiry is checked only once a row is found.
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get account by reset token.",
			logging.Entry("role", input.Role),
			logging.Entry("err", err),
		)
		return result, err
	}

	if acc.IsResetTokenExpired(s.now()) {
		s.log.Info(
			ctx,
			"Password reset token has expired.",
			logging.Entry("accountID", acc.ID),
			logging.Entry("tokenExpiry", acc.TokenExpiry.Value),
		)
		return result, account.ErrResetTokenExpired
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		return result, err
	}
	err = s.accounts.SetPassword(ctx, input.Role, acc.ID, newPasswordHash)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update account password.",
			logging.Entry("accountID", acc.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("accountID", acc.ID),
		logging.Entry("role", acc.Role),
	)
	return result, nil
}
