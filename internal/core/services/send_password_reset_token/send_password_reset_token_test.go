package sendpasswordresettoken

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	TOKEN = "5d41402abc4b2a76b9719d911017c5925d41402abc4b2a76b9719d911017c592"
	EMAIL = c.Email("a@x.com")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	Accounts       *account.FakeRepository
	TokenGenerator *account.FakeResetTokenGenerator
	Sender         *account.FakePasswordResetEmailSender
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Accounts = account.NewFakeRepository()
	suite.TokenGenerator = account.NewFakeResetTokenGenerator(TOKEN)
	suite.Sender = account.NewFakePasswordResetEmailSender()
	suite.Service = NewWithResetEmailSending(
		suite.Logger,
		suite.Sender,
		New(
			suite.Logger,
			suite.Accounts,
			suite.TokenGenerator,
			2*time.Hour,
			func() time.Time { return NOW },
		),
	)
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	acc := suite.Accounts.Add(account.Account{Role: account.RoleCleaner, Email: EMAIL})

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Role: account.RoleCleaner})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(account.ResetToken(TOKEN), result.Token)

	stored, ok := suite.Accounts.GetByID(acc.ID)
	assert.True(ok)
	assert.True(stored.ResetToken.IsPresent)
	assert.Equal(account.ResetToken(TOKEN), stored.ResetToken.Value)
	assert.True(stored.TokenExpiry.IsPresent)
	assert.Equal(NOW.Add(2*time.Hour), stored.TokenExpiry.Value)

	assert.Equal(1, suite.Sender.SentCount())
	assert.Equal(account.ResetToken(TOKEN), suite.Sender.SentTokens[0])
}

func (suite *testSuite) TestAccountDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Role: account.RoleCleaner})

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
	assert.Equal(0, suite.Sender.SentCount())
}

func (suite *testSuite) TestRoleSelectsTable() {
	suite.Accounts.Add(account.Account{Role: account.RoleCleaner, Email: EMAIL})

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Role: account.RoleClient})

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrAccountDoesNotExist))
}

func (suite *testSuite) TestNoEmailOnPersistenceFailure() {
	suite.Accounts.Add(account.Account{Role: account.RoleCleaner, Email: EMAIL})
	failing := New(
		suite.Logger,
		suite.Accounts,
		suite.TokenGenerator,
		2*time.Hour,
		func() time.Time { return NOW },
	)
	suite.Service = NewWithResetEmailSending(suite.Logger, suite.Sender, failing)
	suite.Accounts.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Role: account.RoleCleaner})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.Sender.SentCount())
}

func (suite *testSuite) TestRepeatedRequestOverwritesToken() {
	acc := suite.Accounts.Add(account.Account{
		Role:        account.RoleClient,
		Email:       EMAIL,
		ResetToken:  c.NewOptional(account.ResetToken("old-token"), true),
		TokenExpiry: c.NewOptional(NOW.Add(-time.Hour), true),
	})

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Role: account.RoleClient})

	assert := suite.Require()
	assert.Nil(err)

	stored, ok := suite.Accounts.GetByID(acc.ID)
	assert.True(ok)
	assert.Equal(account.ResetToken(TOKEN), stored.ResetToken.Value)
	assert.Equal(NOW.Add(2*time.Hour), stored.TokenExpiry.Value)
}
