package realtime

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotifyChannel is the LISTEN/NOTIFY channel the row-change triggers publish
// to (see the notify trigger migration).
const NotifyChannel = "row_changes"

// PGChangeStream adapts PostgreSQL LISTEN/NOTIFY to the ChangeStream
// interface. Triggers on the tracked tables publish payloads of the form
// "table:OP:id"; each subscription holds one dedicated connection from the
// pool for the lifetime of the listen loop.
type PGChangeStream struct {
	pool    *pgxpool.Pool
	channel string
	logger  *slog.Logger
}

var _ ChangeStream = (*PGChangeStream)(nil)

// NewPGChangeStream creates a change stream listening on the given channel.
func NewPGChangeStream(pool *pgxpool.Pool, channel string, logger *slog.Logger) *PGChangeStream {
	if channel == "" {
		channel = NotifyChannel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PGChangeStream{pool: pool, channel: channel, logger: logger}
}

// Subscribe starts the listen loop on a dedicated connection. Failures are
// reported through onStatus (CHANNEL_ERROR, or TIMED_OUT when the context
// deadline was hit) and terminate the loop; the caller decides whether to
// resubscribe.
func (s *PGChangeStream) Subscribe(onEvent func(Event), onStatus func(SubscriptionStatus)) func() {
	ctx, cancel := context.WithCancel(context.Background())
	go s.listen(ctx, onEvent, onStatus)
	return cancel
}

func (s *PGChangeStream) listen(ctx context.Context, onEvent func(Event), onStatus func(SubscriptionStatus)) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to acquire listen connection", slog.String("error", err.Error()))
		onStatus(StatusChannelError)
		return
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+s.channel); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("LISTEN failed", slog.String("channel", s.channel), slog.String("error", err.Error()))
		onStatus(StatusChannelError)
		return
	}
	// Make sure the connection goes back to the pool clean.
	defer func() {
		_, _ = conn.Exec(context.Background(), "UNLISTEN *")
	}()

	onStatus(StatusSubscribed)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				// Unsubscribed: exit silently, no further callbacks.
				return
			}
			if isTimeout(err) {
				onStatus(StatusTimedOut)
			} else {
				s.logger.Warn("notification wait failed", slog.String("error", err.Error()))
				onStatus(StatusChannelError)
			}
			return
		}
		if ev, ok := parsePayload(notification.Payload); ok {
			onEvent(ev)
		}
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	if errors.As(err, &t) {
		return t.Timeout()
	}
	return false
}

// parsePayload splits "table:OP:id" trigger payloads. Unparseable payloads
// are dropped rather than surfaced as errors.
func parsePayload(payload string) (Event, bool) {
	parts := strings.SplitN(payload, ":", 3)
	if len(parts) != 3 {
		return Event{}, false
	}
	switch EventType(parts[1]) {
	case EventInsert, EventUpdate, EventDelete:
		return Event{Table: parts[0], Type: EventType(parts[1]), RowID: parts[2]}, true
	}
	return Event{}, false
}
