package passwordhasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"just2kleen/internal/core/domain/account"
)

// Sha256 is a deterministic, unsalted hasher compatible with the hashes the
// registration flow already stores. See DESIGN.md for why it stays the
// default despite being a weak password hash.
type Sha256 struct{}

func NewSha256() *Sha256 {
	return &Sha256{}
}

func (h *Sha256) HashPassword(password account.RawPassword) (account.PasswordHash, error) {
	sum := sha256.Sum256([]byte(password))
	return account.PasswordHash(hex.EncodeToString(sum[:])), nil
}

func (h *Sha256) ValidatePassword(password account.RawPassword, hash account.PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(actualHash), []byte(hash)) == 1
}
