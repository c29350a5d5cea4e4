package account

import "context"

type VerificationToken string

type VerificationTokenGenerator interface {
	GenerateVerificationToken() VerificationToken
}

// ConfirmationEmailSender delivers the confirmation email carrying the
// account's verification token.
type ConfirmationEmailSender interface {
	SendConfirmationEmail(ctx context.Context, account Account) error
}

// ConfirmationEmailScheduler enqueues a confirmation email for later
// delivery. The sweeper publishes through it instead of sending inline.
type ConfirmationEmailScheduler interface {
	ScheduleConfirmationEmail(ctx context.Context, account Account) error
}
