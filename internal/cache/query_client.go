// Package cache is the client-side query cache. Every remote read goes through
// a QueryClient keyed by Key; mutations invalidate or overwrite entries and
// realtime notifications patch them in place.
//
// Two writers touch the same entries: mutation paths (SetData, Invalidate) and
// realtime patches (Update). Neither is ordered against the other; the last
// applied write wins and the next refetch converges both on server state.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"todo/internal/domain/service"
	"todo/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// defaultFetchTimeout bounds a shared fetch once it no longer follows the
// context of the caller that started it.
const defaultFetchTimeout = time.Minute

// Status is the lifecycle state of one key.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of one key. Data is shared with the cache and
// must not be mutated.
type Snapshot struct {
	Key       Key
	Status    Status
	Data      any
	Err       error
	Stale     bool
	UpdatedAt time.Time
}

// HasData reports whether the snapshot carries a successful result.
func (s Snapshot) HasData() bool {
	return s.Data != nil && !s.UpdatedAt.IsZero()
}

// FetchFunc loads the value of one key from the backend.
type FetchFunc func(ctx context.Context) (any, error)

// Listener observes key changes.
type Listener func(Snapshot)

type entry struct {
	key       Key
	status    Status
	data      any
	err       error
	stale     bool
	gen       uint64 // bumped by every invalidation
	dataGen   uint64 // gen the held data was loaded at
	inflight  int
	updatedAt time.Time
}

func (e *entry) snapshot() Snapshot {
	return Snapshot{
		Key:       e.key,
		Status:    e.status,
		Data:      e.data,
		Err:       e.err,
		Stale:     e.stale,
		UpdatedAt: e.updatedAt,
	}
}

type subscription struct {
	prefix   Key
	listener Listener
}

// QueryClient holds every cached query.
type QueryClient struct {
	mu        sync.Mutex
	entries   map[string]*entry
	listeners map[uint64]subscription
	nextID    uint64
	epoch     uint64 // bumped by Clear; fetches started earlier are discarded

	group        singleflight.Group
	fetchTimeout time.Duration
	now          func() time.Time
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// Params holds dependencies for QueryClient, injected by Fx.
type Params struct {
	fx.In

	Logger  *slog.Logger
	Metrics service.MetricsRecorder `optional:"true"`
}

// NewQueryClient creates an empty cache.
func NewQueryClient(params Params) *QueryClient {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QueryClient{
		entries:   make(map[string]*entry),
		listeners:    make(map[uint64]subscription),
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
		metrics:      metrics,
		logger:       logger,
	}
}

// Fetch returns the cached value of key when it is fresh, and otherwise loads
// it with fetch. Concurrent loads of one key share a single call.
func (qc *QueryClient) Fetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	qc.mu.Lock()
	e, ok := qc.entries[key.String()]
	if ok && e.status == StatusSuccess && !e.stale {
		data := e.data
		qc.mu.Unlock()
		qc.metrics.RecordCacheLookup(key.Collection(), true)

		return data, nil
	}
	qc.mu.Unlock()
	qc.metrics.RecordCacheLookup(key.Collection(), false)

	return qc.Refetch(ctx, key, fetch)
}

// Refetch loads key with fetch regardless of freshness.
//
// Callers only share a fetch started under the same cache epoch and key
// generation, so a read issued after Clear or Invalidate never receives a
// result loaded before it. The shared fetch does not follow any single
// caller's cancellation; each caller stops waiting when its own ctx ends.
func (qc *QueryClient) Refetch(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	flight, epoch, gen := qc.flight(key)
	results := qc.group.DoChan(flight, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), qc.fetchTimeout)
		defer cancel()

		qc.begin(key, epoch)
		data, err := fetch(fetchCtx)
		qc.finish(key, epoch, gen, data, err)

		return data, err
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-results:
		return res.Val, res.Err
	}
}

func (qc *QueryClient) flight(key Key) (id string, epoch, gen uint64) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	if e, ok := qc.entries[key.String()]; ok {
		gen = e.gen
	}

	return fmt.Sprintf("%s@%d.%d", key, qc.epoch, gen), qc.epoch, gen
}

func (qc *QueryClient) begin(key Key, epoch uint64) {
	qc.mu.Lock()
	if qc.epoch != epoch {
		qc.mu.Unlock()

		return
	}
	e := qc.entryLocked(key)
	e.status = StatusLoading
	e.inflight++
	snap := e.snapshot()
	listeners := qc.listenersLocked(key)
	qc.mu.Unlock()

	notify(listeners, snap)
}

func (qc *QueryClient) finish(key Key, epoch, gen uint64, data any, err error) {
	qc.mu.Lock()
	e, ok := qc.entries[key.String()]
	if !ok || qc.epoch != epoch {
		qc.mu.Unlock()
		qc.logger.Debug("Discarding result of a fetch that outlived a cache clear", slog.String("key", key.String()))

		return
	}

	e.inflight--
	if gen < e.dataGen {
		// A result loaded after a later invalidation already landed.
		if e.inflight == 0 && e.status == StatusLoading {
			e.status = StatusSuccess
			if e.err != nil {
				e.status = StatusError
			}
		}
		snap := e.snapshot()
		listeners := qc.listenersLocked(key)
		qc.mu.Unlock()
		notify(listeners, snap)

		return
	}

	if err != nil {
		// The previous data, if any, stays in place.
		e.status = StatusError
		e.err = err
	} else {
		e.status = StatusSuccess
		e.data = data
		e.dataGen = gen
		e.err = nil
		e.updatedAt = qc.now()
		// An invalidation that raced the fetch keeps the entry stale.
		e.stale = e.gen != gen
	}
	if e.inflight > 0 {
		e.status = StatusLoading
	}
	snap := e.snapshot()
	listeners := qc.listenersLocked(key)
	qc.mu.Unlock()

	notify(listeners, snap)
}

// SetData writes data into key directly, as if it had just been fetched.
func (qc *QueryClient) SetData(key Key, data any) {
	qc.mu.Lock()
	e := qc.entryLocked(key)
	e.status = StatusSuccess
	e.data = data
	e.dataGen = e.gen
	e.err = nil
	e.stale = false
	e.updatedAt = qc.now()
	snap := e.snapshot()
	listeners := qc.listenersLocked(key)
	qc.mu.Unlock()

	notify(listeners, snap)
}

// Update replaces the cached data of key with fn(old). It does nothing when
// the key holds no data, or when fn reports no change, and returns whether
// the entry was written.
func (qc *QueryClient) Update(key Key, fn func(old any) (any, bool)) bool {
	qc.mu.Lock()
	e, ok := qc.entries[key.String()]
	if !ok || e.updatedAt.IsZero() {
		qc.mu.Unlock()

		return false
	}

	next, changed := fn(e.data)
	if !changed {
		qc.mu.Unlock()

		return false
	}
	e.data = next
	e.updatedAt = qc.now()
	snap := e.snapshot()
	listeners := qc.listenersLocked(key)
	qc.mu.Unlock()

	notify(listeners, snap)

	return true
}

// Invalidate marks every key under prefix stale so the next read refetches it.
// Keys that hold nothing yet are left alone. It returns the number of keys
// marked and never fails.
func (qc *QueryClient) Invalidate(prefix Key) int {
	type pending struct {
		snap      Snapshot
		listeners []Listener
	}

	qc.mu.Lock()
	var changed []pending
	for _, e := range qc.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		if e.status == StatusIdle && e.updatedAt.IsZero() {
			continue
		}
		e.gen++
		if e.stale {
			continue
		}
		e.stale = true
		changed = append(changed, pending{snap: e.snapshot(), listeners: qc.listenersLocked(e.key)})
	}
	qc.mu.Unlock()

	if len(changed) > 0 {
		qc.metrics.RecordCacheInvalidation(prefix.Collection())
	}
	for _, p := range changed {
		notify(p.listeners, p.snap)
	}

	return len(changed)
}

// Clear drops every entry. Results of fetches that were in flight are discarded
// when they land. Observers receive an idle snapshot for each dropped key.
func (qc *QueryClient) Clear() {
	type pending struct {
		snap      Snapshot
		listeners []Listener
	}

	qc.mu.Lock()
	dropped := make([]pending, 0, len(qc.entries))
	for _, e := range qc.entries {
		dropped = append(dropped, pending{
			snap:      Snapshot{Key: e.key, Status: StatusIdle},
			listeners: qc.listenersLocked(e.key),
		})
	}
	qc.entries = make(map[string]*entry)
	qc.epoch++
	qc.mu.Unlock()

	qc.logger.Debug("Query cache cleared", slog.Int("entries", len(dropped)))

	for _, p := range dropped {
		notify(p.listeners, p.snap)
	}
}

// Peek returns the current state of key without fetching.
func (qc *QueryClient) Peek(key Key) Snapshot {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	e, ok := qc.entries[key.String()]
	if !ok {
		return Snapshot{Key: key, Status: StatusIdle}
	}

	return e.snapshot()
}

// Len returns the number of keys held.
func (qc *QueryClient) Len() int {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	return len(qc.entries)
}

// Subscribe calls listener after every change of a key under prefix. The
// returned func removes the listener and may be called more than once.
func (qc *QueryClient) Subscribe(prefix Key, listener Listener) (unsubscribe func()) {
	qc.mu.Lock()
	id := qc.nextID
	qc.nextID++
	qc.listeners[id] = subscription{prefix: NewKey(prefix...), listener: listener}
	qc.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			qc.mu.Lock()
			delete(qc.listeners, id)
			qc.mu.Unlock()
		})
	}
}

func (qc *QueryClient) entryLocked(key Key) *entry {
	id := key.String()
	e, ok := qc.entries[id]
	if !ok {
		e = &entry{key: NewKey(key...), status: StatusIdle}
		qc.entries[id] = e
	}

	return e
}

func (qc *QueryClient) listenersLocked(key Key) []Listener {
	var out []Listener
	for _, sub := range qc.listeners {
		if key.HasPrefix(sub.prefix) {
			out = append(out, sub.listener)
		}
	}

	return out
}

func notify(listeners []Listener, snap Snapshot) {
	for _, l := range listeners {
		l(snap)
	}
}
