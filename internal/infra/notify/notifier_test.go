//go:build unit

package notify_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"staymarket/internal/infra/notify"
	"staymarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDispatchDeliversBeforeClose(t *testing.T) {
	var mu sync.Mutex
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(lockedWriter{&mu, &buf}, nil))

	n := notify.NewLogNotifier(logger)
	event := shared.NotificationEvent{
		Topic:     "booking_confirmed",
		BookingID: uuid.New(),
		GuestID:   uuid.New(),
		HostID:    uuid.New(),
	}
	n.Dispatch(event)
	n.Close()

	mu.Lock()
	out := buf.String()
	mu.Unlock()
	assert.Contains(t, out, "notification dispatched")
	assert.Contains(t, out, "booking_confirmed")
	assert.Contains(t, out, event.BookingID.String())
}

func TestCloseIsIdempotent(t *testing.T) {
	n := notify.NewLogNotifier(slog.Default())
	n.Close()
	n.Close()
}

type lockedWriter struct {
	mu  *sync.Mutex
	buf *bytes.Buffer
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}
