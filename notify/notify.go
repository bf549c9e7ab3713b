// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/quickvote/models"
)

// QueueSize is the per-observer buffer. Events are re-fetch signals, so once
// a few are pending further ones add nothing and are dropped.
const QueueSize = 8

var (
	// ErrDropped means the observer is still connected but its queue is full
	ErrDropped = errors.New("observer queue full")
	// ErrClosed means the observer has gone away
	ErrClosed = errors.New("observer closed")
)

type SubscriberID uint64

// Subscriber is a delivery target. Deliver must not block.
// Close must be idempotent.
type Subscriber interface {
	Deliver(models.LiveEvent) error
	Close()
}

// Notifier fans change signals out to every connected observer.
type Notifier struct {
	subscribers map[SubscriberID]Subscriber
	lastID      SubscriberID
	closed      bool
	mu          sync.RWMutex
	logger      *slog.Logger
	metrics     *notifyMetrics
}

func New(promRegistry prometheus.Registerer, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Notifier{
		subscribers: make(map[SubscriberID]Subscriber),
		logger:      logger,
	}
	if promRegistry != nil {
		n.metrics = newNotifyMetrics(promRegistry)
	}
	return n
}

// channelSubscriber delivers into a buffered channel without ever blocking
type channelSubscriber struct {
	ch     chan models.LiveEvent
	mu     sync.RWMutex
	closed bool
}

func newChannelSubscriber(buffer int) *channelSubscriber {
	return &channelSubscriber{ch: make(chan models.LiveEvent, buffer)}
}

func (c *channelSubscriber) Deliver(evt models.LiveEvent) error {
	// Read lock so Close waits for an in-flight send before closing the channel
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClosed
	}
	select {
	case c.ch <- evt:
		return nil
	default:
		return ErrDropped
	}
}

func (c *channelSubscriber) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.ch)
}

// Subscribe registers a channel-backed observer. The channel is closed on
// Unsubscribe or when the notifier shuts down.
func (n *Notifier) Subscribe() (SubscriberID, <-chan models.LiveEvent) {
	sub := newChannelSubscriber(QueueSize)
	id := n.Register(sub)
	return id, sub.ch
}

// Register adds an arbitrary subscriber. After Close the subscriber is
// closed immediately and 0 is returned.
func (n *Notifier) Register(sub Subscriber) SubscriberID {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		sub.Close()
		return 0
	}
	n.lastID++
	id := n.lastID
	n.subscribers[id] = sub
	count := len(n.subscribers)
	n.mu.Unlock()

	if n.metrics != nil {
		n.metrics.subscribers.Set(float64(count))
	}
	return id
}

// Unsubscribe removes and closes an observer. Unknown ids are ignored.
func (n *Notifier) Unsubscribe(id SubscriberID) {
	n.mu.Lock()
	sub, ok := n.subscribers[id]
	if ok {
		delete(n.subscribers, id)
	}
	count := len(n.subscribers)
	n.mu.Unlock()

	if !ok {
		return
	}
	sub.Close()
	if n.metrics != nil {
		n.metrics.subscribers.Set(float64(count))
	}
}

// Notify pushes kind to every observer connected right now. It never blocks
// on an observer and never reports delivery problems to the caller.
func (n *Notifier) Notify(kind string) {
	evt := models.LiveEvent{Type: kind, Timestamp: time.Now().UTC()}

	type subItem struct {
		id  SubscriberID
		sub Subscriber
	}
	n.mu.RLock()
	subList := make([]subItem, 0, len(n.subscribers))
	for id, sub := range n.subscribers {
		subList = append(subList, subItem{id: id, sub: sub})
	}
	n.mu.RUnlock()

	for _, item := range subList {
		err := deliver(item.sub, evt)
		switch {
		case err == nil:
		case errors.Is(err, ErrDropped):
			if n.metrics != nil {
				n.metrics.dropped.Inc()
			}
		default:
			n.logger.Debug("dropping observer", "subscriber", item.id, "type", kind, "error", err)
			n.Unsubscribe(item.id)
		}
	}

	if n.metrics != nil {
		n.metrics.events.WithLabelValues(kind).Inc()
	}
}

func deliver(sub Subscriber, evt models.LiveEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber deliver panic: %v", r)
		}
	}()
	return sub.Deliver(evt)
}

// Count returns the number of connected observers.
func (n *Notifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subscribers)
}

// Close disconnects every observer. Later registrations are refused.
func (n *Notifier) Close() {
	n.mu.Lock()
	subs := n.subscribers
	n.subscribers = make(map[SubscriberID]Subscriber)
	n.closed = true
	n.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	if n.metrics != nil {
		n.metrics.subscribers.Set(0)
	}
}
