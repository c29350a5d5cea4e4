package sweepunverified

import (
	"context"
	"errors"
	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
)

type Input struct{}

type Result struct {
	// ScheduledCount is the number of confirmation emails handed to the
	// scheduler during this cycle.
	ScheduledCount int
}

type service struct {
	log            logging.Logger
	accounts       account.Repository
	tokenGenerator account.VerificationTokenGenerator
	scheduler      account.ConfirmationEmailScheduler
}

// New creates the verification sweep service. One Run is one sweep cycle:
// every unverified account gets a verification token if it lacks one, then a
// confirmation email is scheduled for it. Per-account failures are logged and
// skipped; they never abort the cycle.
func New(
	log logging.Logger,
	accounts account.Repository,
	tokenGenerator account.VerificationTokenGenerator,
	scheduler account.ConfirmationEmailScheduler,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if accounts == nil {
		panic(e.NewNilArgumentError("accounts"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	return &service{
		log:            log,
		accounts:       accounts,
		tokenGenerator: tokenGenerator,
		scheduler:      scheduler,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	for _, role := range account.Roles() {
		scheduled, err := s.sweepRole(ctx, role)
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not list unverified accounts.",
				logging.Entry("role", role),
				logging.Entry("err", err),
			)
			continue
		}
		result.ScheduledCount += scheduled
	}
	return result, nil
}

func (s *service) sweepRole(ctx context.Context, role account.Role) (scheduled int, err error) {
	unverified, err := s.accounts.ListUnverified(ctx, role)
	if err != nil {
		return 0, err
	}
	if len(unverified) == 0 {
		s.log.Debug(ctx, "No unverified accounts found.", logging.Entry("role", role))
		return 0, nil
	}

	for _, acc := range unverified {
		if !acc.VerificationToken.IsPresent {
			token := s.tokenGenerator.GenerateVerificationToken()
			err := s.accounts.SetVerificationToken(ctx, role, acc.Email, token)
			if errors.Is(err, context.Canceled) {
				return scheduled, err
			}
			if err != nil {
				s.log.Error(
					ctx,
					"Could not set verification token, skipping account.",
					logging.Entry("role", role),
					logging.Entry("email", acc.Email),
					logging.Entry("err", err),
				)
				continue
			}
			acc.VerificationToken = c.NewOptional(token, true)
		}

		err := s.scheduler.ScheduleConfirmationEmail(ctx, acc)
		if errors.Is(err, context.Canceled) {
			return scheduled, err
		}
		if err != nil {
			// The token stays on the row, so the next cycle retries
			// the send with the same token.
			s.log.Error(
				ctx,
				"Could not schedule confirmation email.",
				logging.Entry("role", role),
				logging.Entry("email", acc.Email),
				logging.Entry("err", err),
			)
			continue
		}
		scheduled++
		s.log.Info(
			ctx,
			"Confirmation email scheduled.",
			logging.Entry("role", role),
			logging.Entry("email", acc.Email),
		)
	}
	return scheduled, nil
}
