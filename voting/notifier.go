// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

// Notifier receives a change signal after a mutation has committed.
// Implementations must not block and must not fail the caller.
type Notifier interface {
	Notify(kind string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

func orNop(n Notifier) Notifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}
