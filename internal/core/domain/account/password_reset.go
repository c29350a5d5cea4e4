package account

import "context"

type ResetToken string

type ResetTokenGenerator interface {
	GenerateResetToken() ResetToken
}

type PasswordResetEmailSender interface {
	SendPasswordResetEmail(ctx context.Context, account Account, token ResetToken) error
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
