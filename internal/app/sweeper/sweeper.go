package sweeper

import (
	"context"
	"sync"
	"time"

	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/domain/logging"
	"just2kleen/internal/core/services"
	sweepunverified "just2kleen/internal/core/services/sweep_unverified"
)

// Sweeper periodically runs the unverified-accounts sweep. It is started and
// stopped explicitly so shutdown can wait for an in-flight cycle, and tests
// can drive single cycles through the service directly.
type Sweeper struct {
	log      logging.Logger
	service  services.Service[sweepunverified.Input, sweepunverified.Result]
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func New(
	log logging.Logger,
	service services.Service[sweepunverified.Input, sweepunverified.Result],
	interval time.Duration,
) *Sweeper {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if interval <= 0 {
		panic("sweep interval must be positive")
	}
	return &Sweeper{log: log, service: service, interval: interval}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	s.log.Info(
		ctx,
		"Starting periodic verification sweeper.",
		logging.Entry("intervalMinutes", s.interval.Minutes()),
	)

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.log.Info(context.Background(), "Stopping periodic verification sweeper.")
				return
			case <-ticker.C:
				result, err := s.service.Run(ctx, sweepunverified.Input{})
				if err != nil {
					s.log.Error(ctx, "Sweep cycle returned an error.", logging.Entry("err", err))
					continue
				}
				s.log.Info(
					ctx,
					"Sweep cycle finished.",
					logging.Entry("scheduledCount", result.ScheduledCount),
				)
			}
		}
	}()
}

// Stop cancels the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	s.once.Do(func() {
		if s.cancel == nil {
			return
		}
		s.cancel()
		<-s.done
	})
}
