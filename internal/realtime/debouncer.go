package realtime

import (
	"log/slog"
	"sync"
	"time"
)

// ConnectionState is the debouncer's view of the underlying subscription.
type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
)

const (
	defaultCooldown       = 750 * time.Millisecond
	defaultDebounceWindow = 250 * time.Millisecond
	defaultRetryBase      = 5 * time.Second
	defaultMaxRetryDelay  = 15 * time.Second
	defaultMaxRetries     = 3
)

// Debouncer subscribes to a ChangeStream and collapses bursts of change
// events into a single downstream refresh callback.
//
// Events arriving within the cooldown window after the last emitted refresh
// are discarded outright; otherwise each event (re)starts a short debounce
// timer, and one refresh fires when the timer expires. Connection failures
// are retried with a linearly increasing backoff up to a maximum retry count,
// after which the debouncer stays disconnected and the caller is left with
// manual refresh only — a deliberate degradation, never an error.
//
// All state is owned by one instance; construct one per subscription scope
// and Close it on teardown. Close cancels pending timers and the
// subscription, guaranteeing no callback invocations afterwards.
type Debouncer struct {
	stream    ChangeStream
	onRefresh func()
	logger    *slog.Logger

	cooldown       time.Duration
	debounceWindow time.Duration
	retryBase      time.Duration
	maxRetryDelay  time.Duration
	maxRetries     int

	mu            sync.Mutex
	firing        sync.WaitGroup
	state         ConnectionState
	retryCount    int
	lastRefresh   time.Time
	debounceTimer *time.Timer
	retryTimer    *time.Timer
	unsubscribe   func()
	closed        bool
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithCooldown overrides the post-refresh cooldown window.
func WithCooldown(d time.Duration) Option {
	return func(db *Debouncer) { db.cooldown = d }
}

// WithDebounceWindow overrides the debounce timer duration.
func WithDebounceWindow(d time.Duration) Option {
	return func(db *Debouncer) { db.debounceWindow = d }
}

// WithRetryBackoff overrides the reconnect backoff: attempt n waits n*base,
// capped at max.
func WithRetryBackoff(base, max time.Duration) Option {
	return func(db *Debouncer) {
		db.retryBase = base
		db.maxRetryDelay = max
	}
}

// WithMaxRetries overrides how many consecutive reconnect attempts are made.
func WithMaxRetries(n int) Option {
	return func(db *Debouncer) { db.maxRetries = n }
}

// WithLogger attaches a logger for connection lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(db *Debouncer) { db.logger = l }
}

// NewDebouncer builds a Debouncer over stream that invokes onRefresh once per
// coalesced burst. Call Connect to start receiving events.
func NewDebouncer(stream ChangeStream, onRefresh func(), opts ...Option) *Debouncer {
	d := &Debouncer{
		stream:         stream,
		onRefresh:      onRefresh,
		logger:         slog.Default(),
		cooldown:       defaultCooldown,
		debounceWindow: defaultDebounceWindow,
		retryBase:      defaultRetryBase,
		maxRetryDelay:  defaultMaxRetryDelay,
		maxRetries:     defaultMaxRetries,
		state:          StateDisconnected,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Connect subscribes to the change stream. Safe to call once; reconnects are
// handled internally afterwards.
func (d *Debouncer) Connect() {
	d.subscribe()
}

// State returns the current connection state.
func (d *Debouncer) State() ConnectionState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Close tears the debouncer down: pending debounce and reconnect timers are
// cancelled and the subscription is released. No refresh callback fires after
// Close returns. Idempotent.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.firing.Wait()
		return
	}
	d.closed = true
	d.state = StateDisconnected
	if d.debounceTimer != nil {
		d.debounceTimer.Stop()
		d.debounceTimer = nil
	}
	if d.retryTimer != nil {
		d.retryTimer.Stop()
		d.retryTimer = nil
	}
	unsub := d.unsubscribe
	d.unsubscribe = nil
	d.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	// A debounce timer that expired just before the lock above was taken may
	// still be inside fire; its callback must finish before Close returns.
	d.firing.Wait()
}

func (d *Debouncer) subscribe() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.state = StateConnecting
	old := d.unsubscribe
	d.unsubscribe = nil
	d.mu.Unlock()

	if old != nil {
		old()
	}

	unsub := d.stream.Subscribe(d.handleEvent, d.handleStatus)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		unsub()
		return
	}
	d.unsubscribe = unsub
	d.mu.Unlock()
}

func (d *Debouncer) handleStatus(s SubscriptionStatus) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}

	switch s {
	case StatusSubscribed:
		d.state = StateConnected
		d.retryCount = 0
		d.mu.Unlock()
		d.logger.Debug("realtime subscription established")
		return

	case StatusChannelError, StatusTimedOut:
		d.state = StateDisconnected
		if d.retryCount >= d.maxRetries {
			d.mu.Unlock()
			d.logger.Warn("realtime subscription gave up after max retries",
				slog.String("status", string(s)),
				slog.Int("retries", d.maxRetries))
			return
		}
		d.retryCount++
		delay := time.Duration(d.retryCount) * d.retryBase
		if delay > d.maxRetryDelay {
			delay = d.maxRetryDelay
		}
		d.retryTimer = time.AfterFunc(delay, d.subscribe)
		attempt := d.retryCount
		d.mu.Unlock()
		d.logger.Info("realtime subscription lost, reconnect scheduled",
			slog.String("status", string(s)),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay))
		return
	}
	d.mu.Unlock()
}

func (d *Debouncer) handleEvent(e Event) {
	d.mu.Lock()
	if d.closed || d.state != StateConnected {
		d.mu.Unlock()
		return
	}
	if time.Since(d.lastRefresh) < d.cooldown {
		// Too soon after the previous refresh: drop the event entirely.
		d.mu.Unlock()
		return
	}
	if d.debounceTimer != nil {
		d.debounceTimer.Stop()
	}
	d.debounceTimer = time.AfterFunc(d.debounceWindow, d.fire)
	d.mu.Unlock()
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.lastRefresh = time.Now()
	d.debounceTimer = nil
	cb := d.onRefresh
	// Registered while the lock is held, so Close either sees closed unset and
	// waits for the callback, or fire sees closed set and never gets here.
	d.firing.Add(1)
	d.mu.Unlock()

	if cb != nil {
		cb()
	}
	d.firing.Done()
}
