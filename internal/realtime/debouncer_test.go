package realtime_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/misuhub/receivables_app/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStream drives the debouncer from tests.
type fakeStream struct {
	mu           sync.Mutex
	subscribes   int
	unsubscribes int
	onEvent      func(realtime.Event)
	onStatus     func(realtime.SubscriptionStatus)
}

func (f *fakeStream) Subscribe(onEvent func(realtime.Event), onStatus func(realtime.SubscriptionStatus)) func() {
	f.mu.Lock()
	f.subscribes++
	f.onEvent = onEvent
	f.onStatus = onStatus
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.unsubscribes++
		f.mu.Unlock()
	}
}

func (f *fakeStream) emit(e realtime.Event) {
	f.mu.Lock()
	cb := f.onEvent
	f.mu.Unlock()
	if cb != nil {
		cb(e)
	}
}

func (f *fakeStream) status(s realtime.SubscriptionStatus) {
	f.mu.Lock()
	cb := f.onStatus
	f.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

func (f *fakeStream) subscribeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subscribes
}

func (f *fakeStream) unsubscribeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unsubscribes
}

func event() realtime.Event {
	return realtime.Event{Table: "transactions", Type: realtime.EventUpdate, RowID: "t1"}
}

func connected(t *testing.T, stream *fakeStream, d *realtime.Debouncer) {
	t.Helper()
	d.Connect()
	stream.status(realtime.StatusSubscribed)
	require.Equal(t, realtime.StateConnected, d.State())
}

func TestDebouncer_CoalescesBurstIntoOneRefresh(t *testing.T) {
	stream := &fakeStream{}
	var refreshes atomic.Int32
	d := realtime.NewDebouncer(stream, func() { refreshes.Add(1) },
		realtime.WithCooldown(500*time.Millisecond),
		realtime.WithDebounceWindow(60*time.Millisecond),
	)
	defer d.Close()
	connected(t, stream, d)

	start := time.Now()
	stream.emit(event())
	time.Sleep(20 * time.Millisecond)
	stream.emit(event())
	time.Sleep(10 * time.Millisecond)
	stream.emit(event())

	// Nothing may fire before the debounce window elapses after the last event.
	assert.Equal(t, int32(0), refreshes.Load())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), refreshes.Load(), "burst must collapse into one refresh")
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestDebouncer_CooldownDiscardsEvents(t *testing.T) {
	stream := &fakeStream{}
	var refreshes atomic.Int32
	d := realtime.NewDebouncer(stream, func() { refreshes.Add(1) },
		realtime.WithCooldown(300*time.Millisecond),
		realtime.WithDebounceWindow(20*time.Millisecond),
	)
	defer d.Close()
	connected(t, stream, d)

	stream.emit(event())
	time.Sleep(80 * time.Millisecond)
	require.Equal(t, int32(1), refreshes.Load())

	// Inside the cooldown window: dropped, no timer armed.
	stream.emit(event())
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), refreshes.Load())

	// Past the cooldown: a fresh refresh goes through.
	time.Sleep(250 * time.Millisecond)
	stream.emit(event())
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(2), refreshes.Load())
}

func TestDebouncer_EventsIgnoredWhileNotConnected(t *testing.T) {
	stream := &fakeStream{}
	var refreshes atomic.Int32
	d := realtime.NewDebouncer(stream, func() { refreshes.Add(1) },
		realtime.WithDebounceWindow(10*time.Millisecond),
	)
	defer d.Close()
	d.Connect() // no SUBSCRIBED status yet

	stream.emit(event())
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), refreshes.Load())
}

func TestDebouncer_CloseCancelsPendingRefresh(t *testing.T) {
	stream := &fakeStream{}
	var refreshes atomic.Int32
	d := realtime.NewDebouncer(stream, func() { refreshes.Add(1) },
		realtime.WithDebounceWindow(50*time.Millisecond),
	)
	connected(t, stream, d)

	stream.emit(event())
	d.Close()

	// The armed timer must not fire into torn-down state.
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(0), refreshes.Load())
	assert.Equal(t, 1, stream.unsubscribeCount())
	assert.Equal(t, realtime.StateDisconnected, d.State())

	// Events delivered after teardown are ignored.
	stream.emit(event())
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), refreshes.Load())

	// Idempotent.
	d.Close()
	assert.Equal(t, 1, stream.unsubscribeCount())
}

func TestDebouncer_CloseWaitsForInFlightRefresh(t *testing.T) {
	// Race the debounce timer against teardown: whatever the interleaving,
	// the refresh callback must never still be running once Close returns.
	for i := 0; i < 2000; i++ {
		stream := &fakeStream{}
		var closeReturned atomic.Bool
		var late atomic.Int32
		d := realtime.NewDebouncer(stream, func() {
			time.Sleep(time.Microsecond)
			if closeReturned.Load() {
				late.Add(1)
			}
		},
			realtime.WithCooldown(0),
			realtime.WithDebounceWindow(time.Duration(i%20)*time.Microsecond),
		)
		connected(t, stream, d)

		stream.emit(event())
		time.Sleep(time.Duration(i%25) * time.Microsecond)
		d.Close()
		closeReturned.Store(true)

		require.Equal(t, int32(0), late.Load(), "refresh callback ran after Close returned (iteration %d)", i)
	}
}

func TestDebouncer_ReconnectBackoffStopsAfterMaxRetries(t *testing.T) {
	stream := &fakeStream{}
	d := realtime.NewDebouncer(stream, func() {},
		realtime.WithRetryBackoff(20*time.Millisecond, 60*time.Millisecond),
		realtime.WithMaxRetries(3),
	)
	defer d.Close()
	d.Connect()
	require.Equal(t, 1, stream.subscribeCount())

	// Three consecutive failures each schedule one retry at a growing delay.
	for attempt := 1; attempt <= 3; attempt++ {
		stream.status(realtime.StatusChannelError)
		assert.Equal(t, realtime.StateDisconnected, d.State())
		time.Sleep(time.Duration(attempt)*20*time.Millisecond + 40*time.Millisecond)
		assert.Equal(t, attempt+1, stream.subscribeCount(), "retry %d should have resubscribed", attempt)
	}

	// The fourth failure exhausts the budget: no further retries.
	stream.status(realtime.StatusTimedOut)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 4, stream.subscribeCount())
	assert.Equal(t, realtime.StateDisconnected, d.State())
}

func TestDebouncer_RetryCounterResetsOnConnect(t *testing.T) {
	stream := &fakeStream{}
	d := realtime.NewDebouncer(stream, func() {},
		realtime.WithRetryBackoff(10*time.Millisecond, 30*time.Millisecond),
		realtime.WithMaxRetries(3),
	)
	defer d.Close()
	d.Connect()

	stream.status(realtime.StatusChannelError)
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, 2, stream.subscribeCount())

	// Successful connect resets the counter; a later failure starts a fresh
	// retry budget instead of continuing the old one.
	stream.status(realtime.StatusSubscribed)
	require.Equal(t, realtime.StateConnected, d.State())

	stream.status(realtime.StatusChannelError)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 3, stream.subscribeCount())
}

func TestParseLifecycle_NoRefreshAfterUnsubscribe(t *testing.T) {
	// Regression guard for leaked timers: schedule a refresh, close, then
	// hammer more events; the callback count must stay frozen.
	stream := &fakeStream{}
	var refreshes atomic.Int32
	d := realtime.NewDebouncer(stream, func() { refreshes.Add(1) },
		realtime.WithCooldown(10*time.Millisecond),
		realtime.WithDebounceWindow(10*time.Millisecond),
	)
	connected(t, stream, d)

	stream.emit(event())
	time.Sleep(40 * time.Millisecond)
	before := refreshes.Load()
	d.Close()

	for i := 0; i < 10; i++ {
		stream.emit(event())
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, before, refreshes.Load())
}
