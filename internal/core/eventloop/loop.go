// Package eventloop serializes timer callbacks and posted work onto a single
// control flow.
package eventloop

import "time"

// Handle identifies a scheduled timer. The zero Handle is never issued.
type Handle uint64

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// Loop is a single-threaded dispatcher. Callbacks registered through Post and
// Schedule never run concurrently with each other.
type Loop interface {
	Clock
	// Post queues fn to run on the loop.
	Post(fn func())
	// Schedule runs fn after interval, and every interval thereafter when
	// repeating is set.
	Schedule(interval time.Duration, repeating bool, fn func()) Handle
	// Cancel stops a timer. Once Cancel returns on the loop, fn will not run
	// again for that handle. Unknown handles are ignored.
	Cancel(handle Handle)
}
