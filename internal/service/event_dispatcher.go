package service

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

const DefaultEventBuffer = 256

type queuedEvent struct {
	eventType string
	message   string
}

// EventDispatcher hands events to the next sink on a background worker so
// Record never waits on I/O. Events are dropped when the buffer is full.
// Call Stop during graceful shutdown to drain the buffer.
type EventDispatcher struct {
	next      EventSink
	log       *logrus.Logger
	onDropped func()

	mu      sync.RWMutex
	queue   chan queuedEvent
	wg      conc.WaitGroup
	stopped atomic.Bool
	dropped atomic.Int64
}

func NewEventDispatcher(next EventSink, buffer int, log *logrus.Logger) *EventDispatcher {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	d := &EventDispatcher{
		next:  next,
		log:   log,
		queue: make(chan queuedEvent, buffer),
	}
	d.wg.Go(d.run)
	return d
}

// OnDropped registers a callback invoked for every dropped event.
func (d *EventDispatcher) OnDropped(fn func()) {
	d.onDropped = fn
}

func (d *EventDispatcher) Record(eventType, message string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped.Load() {
		d.drop(eventType, "dispatcher stopped")
		return
	}

	select {
	case d.queue <- queuedEvent{eventType: eventType, message: message}:
	default:
		d.drop(eventType, "buffer full")
	}
}

// Dropped returns how many events were discarded
func (d *EventDispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Stop delivers everything still buffered and stops the worker.
// Safe to call multiple times.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped.CompareAndSwap(false, true) {
		d.mu.Unlock()
		return
	}
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.log.Info("EventDispatcher stopped")
}

func (d *EventDispatcher) run() {
	for ev := range d.queue {
		d.next.Record(ev.eventType, ev.message)
	}
}

func (d *EventDispatcher) drop(eventType, reason string) {
	d.dropped.Add(1)
	if d.onDropped != nil {
		d.onDropped()
	}
	d.log.WithFields(logrus.Fields{
		"event":  eventType,
		"reason": reason,
	}).Warn("Dropping activity event")
}
