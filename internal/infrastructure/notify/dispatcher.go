package notify

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Event is one named notification addressed to all live sessions of a user.
// Field names follow the relay's /emit contract.
type Event struct {
	OwnerID uint   `json:"userId"`
	Name    string `json:"event"`
	Payload any    `json:"data"`
}

// Sender delivers a single event to the relay. Implementations must be safe
// for concurrent use.
type Sender interface {
	Send(ctx context.Context, e Event) error
}

// Dispatcher routes events to a fixed set of workers using consistent
// hashing on the owner id, so one user's events keep their order. Publish
// never blocks: when the responsible worker's buffer is full the event is
// dropped and counted.
type Dispatcher struct {
	workers []chan Event
	sender  Sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Event, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Event, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish satisfies ports.Notifier. Fire-and-forget: it returns immediately
// whether or not the event could be queued.
func (d *Dispatcher) Publish(ownerID uint, event string, payload any) {
	e := Event{OwnerID: ownerID, Name: event, Payload: payload}
	select {
	case d.workers[d.shardIndex(ownerID)] <- e:
		metrics.NotificationsPublishedTotal.WithLabelValues(event).Inc()
	default:
		metrics.NotificationsDroppedTotal.Inc()
		d.log.Warn().Uint("owner_id", ownerID).Str("event", event).Msg("notification queue full, event dropped")
	}
}

// shardIndex maps an owner id deterministically to a worker index.
func (d *Dispatcher) shardIndex(ownerID uint) int {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%d", ownerID)
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(ctx, e); err != nil {
				metrics.NotificationsFailedTotal.Inc()
				d.log.Warn().Err(err).
					Uint("owner_id", e.OwnerID).
					Str("event", e.Name).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}
