package account

import (
	c "just2kleen/internal/core/domain/common"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsResetTokenExpired(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		id      string
		account Account
		expired bool
	}{
		{
			id:      "no pending reset",
			account: Account{},
			expired: true,
		},
		{
			id: "expiry in the future",
			account: Account{
				ResetToken:  c.NewOptional(ResetToken("token"), true),
				TokenExpiry: c.NewOptional(now.Add(time.Hour), true),
			},
			expired: false,
		},
		{
			id: "expiry in the past",
			account: Account{
				ResetToken:  c.NewOptional(ResetToken("token"), true),
				TokenExpiry: c.NewOptional(now.Add(-time.Second), true),
			},
			expired: true,
		},
		{
			id: "expiry exactly now",
			account: Account{
				ResetToken:  c.NewOptional(ResetToken("token"), true),
				TokenExpiry: c.NewOptional(now, true),
			},
			expired: true,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			require.Equal(t, testcase.expired, testcase.account.IsResetTokenExpired(now))
		})
	}
}
