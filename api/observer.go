// Package api
// Author: momentics <momentics@gmail.com>
//
// Diagnostic observer contract for ring buffer events.

package api

// Observer receives ring buffer events together with the cursor values
// at the time of the event. Implementations must be cheap and must not
// block: the engines invoke them on the producer/consumer goroutines,
// after the cursor publish, never between the slot write and the publish.
//
// A nil Observer is valid and means no notifications at all.
type Observer interface {
	// OnPush reports a successful push into slot.
	OnPush(slot, read, write uint64)

	// OnPop reports a successful pop that freed slot.
	OnPop(slot, read, write uint64)

	// OnFull reports a rejected push.
	OnFull(read, write uint64)

	// OnEmpty reports a pop that found nothing.
	OnEmpty(read, write uint64)
}
