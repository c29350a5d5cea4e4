package tokengenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"just2kleen/internal/core/domain/account"
)

const tokenByteLength = 32

// Generator produces opaque tokens from the system entropy source:
// 32 random bytes, hex-encoded to 64 characters.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateVerificationToken() account.VerificationToken {
	return account.VerificationToken(g.generate())
}

func (g *Generator) GenerateResetToken() account.ResetToken {
	return account.ResetToken(g.generate())
}

func (g *Generator) generate() string {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; if it does,
		// tokens must not be issued at all.
		panic(fmt.Sprintf("could not read from system random source: %v", err))
	}
	return hex.EncodeToString(b)
}
