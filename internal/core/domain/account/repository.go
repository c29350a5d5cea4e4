package account

import (
	"context"
	c "just2kleen/internal/core/domain/common"
	"time"
)

type SetResetTokenInput struct {
	Role        Role
	Email       c.Email
	ResetToken  ResetToken
	TokenExpiry time.Time
}

type Repository interface {
	// ListUnverified returns every account of the given role with
	// IsVerified = false, including accounts that do not have a
	// verification token yet.
	ListUnverified(ctx context.Context, role Role) ([]Account, error)

	// SetVerificationToken assigns a verification token to the account
	// with the given email.
	SetVerificationToken(ctx context.Context, role Role, email c.Email, token VerificationToken) error

	// GetByVerificationToken searches both role tables.
	GetByVerificationToken(ctx context.Context, token VerificationToken) (Account, error)

	// VerifyByToken flips IsVerified and clears the verification token in
	// a single conditional update, matching only rows that still hold the
	// token and are not verified yet. Returns ErrInvalidVerificationToken
	// when no row matches.
	VerifyByToken(ctx context.Context, token VerificationToken) (Account, error)

	GetByEmail(ctx context.Context, role Role, email c.Email) (Account, error)

	// SetResetToken stores the reset token and its expiry as a pair,
	// overwriting any pending reset.
	SetResetToken(ctx context.Context, input SetResetTokenInput) (Account, error)

	GetByResetToken(ctx context.Context, role Role, token ResetToken) (Account, error)

	// SetPassword stores the new password hash and clears the reset token
	// and its expiry in the same update.
	SetPassword(ctx context.Context, role Role, id ID, password PasswordHash) error
}
