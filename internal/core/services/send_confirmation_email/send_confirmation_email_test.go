package sendconfirmationemail

import (
	"context"
	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Sender  *account.FakeConfirmationEmailSender
	Service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Sender = account.NewFakeConfirmationEmailSender()
	suite.Service = New(suite.Logger, suite.Sender)
}

func TestSendConfirmationEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	acc := account.Account{
		Role:              account.RoleCleaner,
		Email:             c.Email("a@x.com"),
		FullName:          "Ada Lovelace",
		VerificationToken: c.NewOptional(account.VerificationToken("token"), true),
	}

	_, err := suite.Service.Run(context.Background(), Input{Account: acc})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(1, suite.Sender.SentCount())
	assert.Equal(c.Email("a@x.com"), suite.Sender.Sent[0].Email)
}

func (suite *testSuite) TestMissingTokenIsAnInvalidState() {
	acc := account.Account{
		Role:  account.RoleCleaner,
		Email: c.Email("a@x.com"),
	}

	_, err := suite.Service.Run(context.Background(), Input{Account: acc})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.Sender.SentCount())
}

func (suite *testSuite) TestSenderError() {
	suite.Sender.ReturnError = true
	acc := account.Account{
		Role:              account.RoleClient,
		Email:             c.Email("a@x.com"),
		VerificationToken: c.NewOptional(account.VerificationToken("token"), true),
	}

	_, err := suite.Service.Run(context.Background(), Input{Account: acc})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.Sender.SentCount())
}
