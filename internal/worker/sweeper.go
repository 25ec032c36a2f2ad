// Package worker runs the background settlement sweeps: auto-confirming
// stale pending bookings, completing bookings past checkout, and optionally
// releasing payouts. Each pass lists candidate IDs and replays them through
// the same settlement commands the API uses, so every eligibility rule is
// re-checked under the conditional write.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"staymarket/internal/pkg/clock"
	"staymarket/internal/pkg/config"
	"staymarket/internal/pkg/errs"
	"staymarket/internal/usecase/commands"
	"staymarket/internal/usecase/shared"
)

type Sweeper struct {
	bookings   shared.BookingStore
	settlement commands.SettlementCommands
	clock      clock.Clock
	logger     *slog.Logger

	interval      time.Duration
	batchSize     int
	confirmWindow time.Duration
	autoConfirm   bool
	autoComplete  bool
	processPayout bool

	trigger chan struct{}
	stop    chan struct{}
	wg      sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewSweeper(
	bookings shared.BookingStore,
	settlement commands.SettlementCommands,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *Sweeper {
	return &Sweeper{
		bookings:      bookings,
		settlement:    settlement,
		clock:         clk,
		logger:        logger,
		interval:      cfg.Sweep.Interval,
		batchSize:     cfg.Sweep.BatchSize,
		confirmWindow: cfg.Settlement.AutoConfirmWindow,
		autoConfirm:   cfg.Sweep.AutoConfirm,
		autoComplete:  cfg.Sweep.AutoComplete,
		processPayout: cfg.Sweep.ProcessPayout,
		trigger:       make(chan struct{}, 1),
		stop:          make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.run(ctx)
	})
}

func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
}

// Trigger requests an immediate pass. Coalesces if one is already pending.
func (s *Sweeper) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// RunOnce executes a single sweep synchronously. Intended for tests and
// one-shot maintenance invocations; the background loop uses the same pass.
func (s *Sweeper) RunOnce(ctx context.Context) {
	s.sweep(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	var ticker *time.Ticker
	if s.interval > 0 {
		ticker = time.NewTicker(s.interval)
		defer ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-s.trigger:
			s.sweep(ctx)
		case <-s.tickChan(ticker):
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) tickChan(ticker *time.Ticker) <-chan time.Time {
	if ticker == nil {
		return nil
	}
	return ticker.C
}

func (s *Sweeper) sweep(ctx context.Context) {
	if s.autoConfirm {
		s.sweepAutoConfirm(ctx)
	}
	if s.autoComplete {
		s.sweepAutoComplete(ctx)
	}
	if s.processPayout {
		s.sweepPayouts(ctx)
	}
}

func (s *Sweeper) sweepAutoConfirm(ctx context.Context) {
	cutoff := s.clock.Now().Add(-s.confirmWindow)
	ids, err := s.bookings.ListAutoConfirmable(ctx, cutoff, s.batchSize)
	if err != nil {
		s.logger.Error("auto-confirm scan failed", "error", err)
		return
	}
	for _, id := range ids {
		if _, err := s.settlement.AutoConfirmBooking(ctx, id); err != nil {
			// Losing the race to a host action or another sweeper is
			// expected; anything else is worth a log line.
			if errs.IsExpectedSweepError(err) {
				continue
			}
			s.logger.Warn("auto-confirm failed", "booking_id", id, "error", err)
		} else {
			s.logger.Info("booking auto-confirmed", "booking_id", id)
		}
	}
}

func (s *Sweeper) sweepAutoComplete(ctx context.Context) {
	ids, err := s.bookings.ListCompletionDue(ctx, s.clock.Now(), s.batchSize)
	if err != nil {
		s.logger.Error("completion scan failed", "error", err)
		return
	}
	for _, id := range ids {
		if _, err := s.settlement.CompleteBooking(ctx, id); err != nil {
			if errs.IsExpectedSweepError(err) {
				continue
			}
			s.logger.Warn("auto-complete failed", "booking_id", id, "error", err)
		} else {
			s.logger.Info("booking completed", "booking_id", id)
		}
	}
}

func (s *Sweeper) sweepPayouts(ctx context.Context) {
	ids, err := s.bookings.ListPayoutDue(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("payout scan failed", "error", err)
		return
	}
	for _, id := range ids {
		result, err := s.settlement.ProcessPayout(ctx, id)
		if err != nil {
			if errs.IsExpectedSweepError(err) {
				continue
			}
			s.logger.Warn("payout failed", "booking_id", id, "error", err)
			continue
		}
		s.logger.Info("payout processed",
			"booking_id", id,
			"amount", result.PayoutAmount.String(),
		)
	}
}
