// Package notify delivers booking notifications. Delivery is asynchronous
// and best-effort: a notification that cannot be delivered is logged and
// dropped, never propagated into the settlement outcome.
package notify

import (
	"log/slog"
	"sync"

	"staymarket/internal/usecase/shared"
)

const queueDepth = 256

// LogNotifier is the default sink. It drains events on a single goroutine
// and writes them as structured log lines; a real deployment would swap in
// a mail or push gateway behind the same interface.
type LogNotifier struct {
	logger *slog.Logger
	events chan shared.NotificationEvent
	done   chan struct{}
	once   sync.Once
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	n := &LogNotifier{
		logger: logger,
		events: make(chan shared.NotificationEvent, queueDepth),
		done:   make(chan struct{}),
	}
	go n.drain()
	return n
}

func (n *LogNotifier) Dispatch(event shared.NotificationEvent) {
	select {
	case n.events <- event:
	default:
		// Queue full. Notifications are advisory; dropping beats blocking
		// a settlement path.
		n.logger.Warn("notification dropped, queue full",
			slog.String("topic", event.Topic),
			slog.String("booking_id", event.BookingID.String()),
		)
	}
}

// Close stops the drain goroutine after the queued events are delivered.
func (n *LogNotifier) Close() {
	n.once.Do(func() {
		close(n.events)
		<-n.done
	})
}

func (n *LogNotifier) drain() {
	defer close(n.done)
	for event := range n.events {
		n.logger.Info("notification dispatched",
			slog.String("topic", event.Topic),
			slog.String("booking_id", event.BookingID.String()),
			slog.String("guest_id", event.GuestID.String()),
			slog.String("host_id", event.HostID.String()),
		)
	}
}
