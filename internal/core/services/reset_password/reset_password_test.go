package resetpassword

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
	TOKEN        = account.ResetToken("ad7f2c1a6e54bb0d3f9f2c1a6e54bb0dad7f2c1a6e54bb0d3f9f2c1a6e54bb0d")
	NEW_PASSWORD = account.RawPassword("new-password")
	OLD_HASH     = account.PasswordHash("old-hash")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	Accounts       *account.FakeRepository
	PasswordHasher *account.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Accounts = account.NewFakeRepository()
	suite.PasswordHasher = account.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.Accounts,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) addAccountWithPendingReset(role account.Role, expiry time.Time) account.Account {
	return suite.Accounts.Add(account.Account{
		Role:         role,
		Email:        c.Email("a@x.com"),
		PasswordHash: c.NewOptional(OLD_HASH, true),
		ResetToken:   c.NewOptional(TOKEN, true),
		TokenExpiry:  c.NewOptional(expiry, true),
	})
}

func (suite *testSuite) TestSuccess() {
	acc := suite.addAccountWithPendingReset(account.RoleCleaner, NOW.Add(time.Hour))

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: TOKEN, Role: account.RoleCleaner, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.Nil(err)

	stored, ok := suite.Accounts.GetByID(acc.ID)
	assert.True(ok)
	expectedHash, _ := suite.PasswordHasher.HashPassword(NEW_PASSWORD)
	assert.Equal(expectedHash, stored.PasswordHash.Value)
	assert.False(stored.ResetToken.IsPresent)
	assert.False(stored.TokenExpiry.IsPresent)
}

func (suite *testSuite) TestUnknownToken() {
	suite.addAccountWithPendingReset(account.RoleCleaner, NOW.Add(time.Hour))

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: account.ResetToken("unknown"), Role: account.RoleCleaner, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrInvalidResetToken))
}

func (suite *testSuite) TestWrongRole() {
	suite.addAccountWithPendingReset(account.RoleCleaner, NOW.Add(time.Hour))

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: TOKEN, Role: account.RoleClient, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrInvalidResetToken))
}

func (suite *testSuite) TestExpiredToken() {
	acc := suite.addAccountWithPendingReset(account.RoleClient, NOW.Add(-time.Minute))

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: TOKEN, Role: account.RoleClient, NewPassword: NEW_PASSWORD},
	)

	assert := suite.Require()
	assert.True(errors.Is(err, account.ErrResetTokenExpired))

	// Password and tokens remain unchanged.
	stored, ok := suite.Accounts.GetByID(acc.ID)
	assert.True(ok)
	assert.Equal(OLD_HASH, stored.PasswordHash.Value)
	assert.True(stored.ResetToken.IsPresent)
	assert.True(stored.TokenExpiry.IsPresent)
}

func (suite *testSuite) TestPersistenceFailure() {
	suite.addAccountWithPendingReset(account.RoleCleaner, NOW.Add(time.Hour))

	failingAccounts := account.NewFakeRepository()
	failingAccounts.Add(suite.Accounts.Accounts[0])
	suite.Service = New(
		suite.Logger,
		&setPasswordFailingRepository{FakeRepository: failingAccounts},
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)

	_, err := suite.Service.Run(
		context.Background(),
		Input{Token: TOKEN, Role: account.RoleCleaner, NewPassword: NEW_PASSWORD},
	)

	suite.Require().NotNil(err)
}

type setPasswordFailingRepository struct {
	*account.FakeRepository
}

func (r *setPasswordFailingRepository) SetPassword(
	ctx context.Context,
	role account.Role,
	id account.ID,
	password account.PasswordHash,
) error {
	return errors.New("store unavailable")
}
