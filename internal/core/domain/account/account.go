package account

import (
	c "just2kleen/internal/core/domain/common"
	"time"

	"github.com/google/uuid"
)

type ID uuid.UUID

func (id ID) String() string {
	return uuid.UUID(id).String()
}

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// Account is a profile row from one of the two role tables. Rows are created
// by the external registration flow; this service only mutates the
// verification and reset token fields.
type Account struct {
	ID                ID
	Role              Role
	Email             c.Email
	FullName          string
	IsVerified        bool
	VerificationToken c.Optional[VerificationToken]
	PasswordHash      c.Optional[PasswordHash]
	ResetToken        c.Optional[ResetToken]
	TokenExpiry       c.Optional[time.Time]
}

// IsResetTokenExpired reports whether the pending reset token is past its
// deadline. An account without a pending reset is treated as expired.
func (a *Account) IsResetTokenExpired(now time.Time) bool {
	if !a.ResetToken.IsPresent || !a.TokenExpiry.IsPresent {
		return true
	}
	return !now.Before(a.TokenExpiry.Value)
}
