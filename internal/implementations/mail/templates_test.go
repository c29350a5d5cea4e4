package mail

import (
	"net/url"
	"testing"

	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	BASE_URL           = "https://app.just2kleen.com"
	EMAIL              = "test@just2kleen.test"
	FULL_NAME          = "Test Cleaner"
	VERIFICATION_TOKEN = "aaaabbbbccccddddeeeeffff0000111122223333444455556666777788889999"
	RESET_TOKEN        = "9999888877776666555544443333222211110000ffffeeeeddddccccbbbbaaaa"
)

func testAccount() account.Account {
	return account.Account{
		ID:       account.ID(uuid.New()),
		Role:     account.RoleCleaner,
		Email:    c.NewEmail(EMAIL),
		FullName: FULL_NAME,
		VerificationToken: c.NewOptional(
			account.VerificationToken(VERIFICATION_TOKEN),
			true,
		),
	}
}

func mustParseURL(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return *u
}

func TestConfirmationEmailContainsVerificationLink(t *testing.T) {
	baseURL := mustParseURL(t, BASE_URL)

	m, err := renderConfirmationEmail(baseURL, testAccount())

	require.NoError(t, err)
	assert.Equal(t, "Welcome to Just2Kleen! Please Confirm Your Email", m.Subject)
	assert.Contains(t, m.Body, "Hello "+FULL_NAME)
	assert.Contains(t, m.Body, BASE_URL+"/verify-email?token="+VERIFICATION_TOKEN)
}

func TestConfirmationEmailRequiresVerificationToken(t *testing.T) {
	baseURL := mustParseURL(t, BASE_URL)
	a := testAccount()
	a.VerificationToken = c.Optional[account.VerificationToken]{}

	_, err := renderConfirmationEmail(baseURL, a)

	assert.Error(t, err)
}

func TestPasswordResetEmailContainsTokenAndRole(t *testing.T) {
	baseURL := mustParseURL(t, BASE_URL)

	m, err := renderPasswordResetEmail(baseURL, testAccount(), account.ResetToken(RESET_TOKEN))

	require.NoError(t, err)
	assert.Equal(t, "Reset Your Just2Kleen Password", m.Subject)
	assert.Contains(t, m.Body, "/reset-password?")
	assert.Contains(t, m.Body, "token="+RESET_TOKEN)
	assert.Contains(t, m.Body, "role=cleaner")
}
