package realtime

import (
	"context"
	"sync"

	"todo/internal/domain/entity"
	"todo/internal/domain/service"
	"todo/internal/errors"
)

// channel is one joined topic shared by every subscriber of a table.
type channel struct {
	topic  string
	schema string
	table  string

	joined  chan struct{} // closed once the first join settles
	joinErr error
	settled sync.Once

	mu       sync.RWMutex
	joinRef  string
	handlers map[uint64]service.ChangeHandler
	nextID   uint64
}

func newChannel(schema, table string) *channel {
	return &channel{
		topic:    "realtime:" + schema + ":" + table,
		schema:   schema,
		table:    table,
		joined:   make(chan struct{}),
		handlers: make(map[uint64]service.ChangeHandler),
	}
}

// settle records the outcome of the first join. Later calls are ignored.
func (ch *channel) settle(err error) {
	ch.settled.Do(func() {
		ch.joinErr = err
		close(ch.joined)
	})
}

// waitJoined blocks until the first join settles and returns its error.
func (ch *channel) waitJoined(ctx context.Context) error {
	select {
	case <-ch.joined:
		return ch.joinErr
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (ch *channel) add(handler service.ChangeHandler) uint64 {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	id := ch.nextID
	ch.nextID++
	ch.handlers[id] = handler

	return id
}

// remove drops a handler and reports how many are left.
func (ch *channel) remove(id uint64) int {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	delete(ch.handlers, id)

	return len(ch.handlers)
}

func (ch *channel) setJoinRef(ref string) {
	ch.mu.Lock()
	ch.joinRef = ref
	ch.mu.Unlock()
}

func (ch *channel) currentJoinRef() string {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	return ch.joinRef
}

// dispatch calls every registered handler outside the lock.
func (ch *channel) dispatch(event entity.ChangeEvent) {
	ch.mu.RLock()
	handlers := make([]service.ChangeHandler, 0, len(ch.handlers))
	for _, h := range ch.handlers {
		handlers = append(handlers, h)
	}
	ch.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
