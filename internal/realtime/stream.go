// Package realtime coalesces row-change notifications into debounced refresh
// signals. An inbound stream of discrete change events feeds a Debouncer,
// which emits a single refresh callback per burst; the two stages are
// decoupled behind the ChangeStream interface so tests and alternative
// transports can drive the same state machine.
package realtime

// EventType mirrors the row-change kinds published by the database.
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Event is one row-change notification.
type Event struct {
	Table string
	Type  EventType
	RowID string
}

// SubscriptionStatus is reported asynchronously by the transport.
type SubscriptionStatus string

const (
	StatusSubscribed   SubscriptionStatus = "SUBSCRIBED"
	StatusChannelError SubscriptionStatus = "CHANNEL_ERROR"
	StatusTimedOut     SubscriptionStatus = "TIMED_OUT"
)

// ChangeStream is a change-notification transport. Subscribe registers the
// two callbacks and returns an unsubscribe function; connection outcomes are
// reported through onStatus, never as hard errors. After unsubscribe returns
// the transport stops invoking both callbacks.
type ChangeStream interface {
	Subscribe(onEvent func(Event), onStatus func(SubscriptionStatus)) (unsubscribe func())
}
