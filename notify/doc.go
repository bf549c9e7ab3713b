// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify broadcasts change signals to connected observers.

A Notifier keeps the set of live observers. Each one is a Subscriber,
normally the channel-backed kind returned by Subscribe:

	id, events := hub.Subscribe()
	defer hub.Unsubscribe(id)
	for evt := range events {
		// re-fetch state
	}

Notify(kind) snapshots the current observers and hands each the event
without blocking. A full observer queue drops the event (a pending signal
already triggers a re-fetch). An observer that reports ErrClosed, any
other error, or panics is removed.

Events carry only a kind and a timestamp. Observers re-read state through
the HTTP API; the event is never a copy of the new state.
*/
package notify
