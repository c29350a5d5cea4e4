package account

import "errors"

var (
	ErrAccountDoesNotExist      = errors.New("account does not exist")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrInvalidResetToken        = errors.New("invalid reset token")
	ErrResetTokenExpired        = errors.New("reset token has expired")
)
