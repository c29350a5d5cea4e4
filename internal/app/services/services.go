package services

import (
	"just2kleen/internal/app/deps"
	drl "just2kleen/internal/core/domain/rate_limiter"
	"just2kleen/internal/core/services"
	ratelimiting "just2kleen/internal/core/services/rate_limiting"
	resetpassword "just2kleen/internal/core/services/reset_password"
	sendconfirmationemail "just2kleen/internal/core/services/send_confirmation_email"
	sendpasswordresettoken "just2kleen/internal/core/services/send_password_reset_token"
	sweepunverified "just2kleen/internal/core/services/sweep_unverified"
	verifyemail "just2kleen/internal/core/services/verify_email"
)

type Services struct {
	SweepUnverified       services.Service[sweepunverified.Input, sweepunverified.Result]
	SendConfirmationEmail services.Service[sendconfirmationemail.Input, sendconfirmationemail.Result]
	VerifyEmail           services.Service[verifyemail.Input, verifyemail.Result]

	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SweepUnverified = sweepunverified.New(
		deps.Logger,
		deps.AccountRepository,
		deps.VerificationTokenGenerator,
		deps.ConfirmationEmailScheduler,
	)
	s.SendConfirmationEmail = sendconfirmationemail.New(
		deps.Logger,
		deps.EmailSender,
	)
	s.VerifyEmail = verifyemail.New(
		deps.Logger,
		deps.AccountRepository,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.NewWithResetEmailSending(
			deps.Logger,
			deps.EmailSender,
			sendpasswordresettoken.New(
				deps.Logger,
				deps.AccountRepository,
				deps.ResetTokenGenerator,
				deps.Config.ResetTokenValidDuration,
				deps.Now,
			),
		),
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.AccountRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	return s
}
