package wlru

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/wlru/internal/arena"
	"github.com/hupe1980/wlru/resource"
)

// entry is the unit of storage. The recency list owns every entry; the key
// index refers to entries by handle only.
type entry[K comparable, V any] struct {
	key    K
	value  V
	weight int64
}

// Cache is a weighted LRU cache. Capacity is the sum of per-entry weights
// rather than the entry count; eviction removes the least recently used
// entries, and only as many as the incoming weight requires.
//
// All methods are safe for concurrent use. Every operation, including Get,
// mutates recency order and therefore serializes through a single critical
// section.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	acct    accountant
	entries map[K]arena.Handle
	order   *arena.List[entry[K, V]]

	rc      *resource.Controller
	onEvict func(key K, value V, weight int64)

	logger      *Logger
	metrics     MetricsCollector
	pressureLog rate.Sometimes

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// New creates a cache bounded by capacity total weight.
func New[K comparable, V any](capacity int64, optFns ...Option) (*Cache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil, optFns...)
}

// NewWithEvict creates a cache that calls onEvict for every entry removed by
// eviction or Clear. The callback runs after the triggering operation has
// completed and outside the cache's critical section, so it may call back
// into the cache. It is not called for Remove, for entries replaced by Put
// on an existing key, or when a Put fails.
func NewWithEvict[K comparable, V any](capacity int64, onEvict func(key K, value V, weight int64), optFns ...Option) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Cache[K, V]{
		acct:        accountant{capacity: capacity},
		entries:     make(map[K]arena.Handle),
		order:       arena.New[entry[K, V]](opts.initialSlots),
		rc:          opts.controller,
		onEvict:     onEvict,
		logger:      opts.logger.WithCapacity(capacity),
		metrics:     opts.metricsCollector,
		pressureLog: rate.Sometimes{Interval: opts.pressureLogInterval},
	}, nil
}

// Get returns the value stored for key and promotes the entry to the most
// recently used position. A Get is a write with respect to ordering even
// though the stored value is unchanged. A miss has no side effects.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	start := time.Now()

	c.mu.Lock()
	var value V
	h, ok := c.entries[key]
	if ok {
		c.order.MoveToBack(h)
		value = c.order.At(h).value
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	c.mu.Unlock()

	c.metrics.RecordGet(ok, time.Since(start))
	return value, ok
}

// Peek returns the value stored for key without updating recency order.
// Peek does not count as a hit or miss.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var value V
	h, ok := c.entries[key]
	if ok {
		value = c.order.At(h).value
	}
	return value, ok
}

// Contains reports whether key is present without updating recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

// Put inserts or replaces the entry for key.
//
// Put returns *ErrInvalidWeight for weight <= 0,
// *ErrWeightExceedsCapacity for weight > capacity, and ErrResourceExhausted
// when a shared budget denies the admission; every rejection leaves the
// cache unchanged, including any existing entry for key. Replacing an
// existing key counts as a full remove plus a fresh insert: the old weight
// is released before the new entry is admitted at the most recent position.
func (c *Cache[K, V]) Put(key K, value V, weight int64) error {
	start := time.Now()

	evicted, err := c.put(key, value, weight)
	if c.onEvict != nil {
		for i := range evicted {
			c.onEvict(evicted[i].key, evicted[i].value, evicted[i].weight)
		}
	}

	c.metrics.RecordPut(len(evicted), time.Since(start), err)
	c.logger.LogPut(weight, len(evicted), err)
	return err
}

func (c *Cache[K, V]) put(key K, value V, weight int64) ([]entry[K, V], error) {
	if weight <= 0 {
		return nil, &ErrInvalidWeight{Weight: weight}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Reject before touching anything: an oversized replacement must not
	// destroy the current value.
	if weight > c.acct.capacity {
		return nil, &ErrWeightExceedsCapacity{Weight: weight, Capacity: c.acct.capacity}
	}

	var oldWeight int64
	h, exists := c.entries[key]
	if exists {
		oldWeight = c.order.At(h).weight
	}

	// Settle the shared budget before anything is unlinked. The net change
	// is the incoming weight minus what the replaced entry and the planned
	// evictions give back; charging that delta up front keeps a denied Put
	// free of observable mutation.
	delta := weight - oldWeight - c.planEvictions(weight, oldWeight, key)
	if delta > 0 && !c.rc.TryAcquire(delta) {
		return nil, ErrResourceExhausted
	}

	if exists {
		old := c.order.Remove(h)
		delete(c.entries, key)
		c.acct.release(old.weight)
	}

	evicted, err := c.makeRoom(weight)
	if err != nil {
		if delta > 0 {
			c.rc.Release(delta)
		}
		return evicted, err
	}
	if len(evicted) > 0 {
		c.pressureLog.Do(func() {
			c.logger.Warn("eviction pressure",
				"evicted", len(evicted),
				"incoming_weight", weight,
				"used", c.acct.used,
			)
		})
	}

	nh := c.order.PushBack(entry[K, V]{key: key, value: value, weight: weight})
	c.entries[key] = nh
	c.acct.admit(weight)
	if delta < 0 {
		c.rc.Release(-delta)
	}

	return evicted, nil
}

// Remove deletes the entry for key and returns whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	start := time.Now()

	c.mu.Lock()
	h, ok := c.entries[key]
	if ok {
		ent := c.order.Remove(h)
		delete(c.entries, key)
		c.acct.release(ent.weight)
		c.rc.Release(ent.weight)
	}
	c.mu.Unlock()

	c.metrics.RecordRemove(ok, time.Since(start))
	c.logger.LogRemove(ok)
	return ok
}

// Size returns the aggregate weight of all entries.
func (c *Cache[K, V]) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acct.used
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the configured capacity.
func (c *Cache[K, V]) Capacity() int64 {
	return c.acct.capacity
}

// Keys returns all keys ordered from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	c.order.Each(func(e entry[K, V]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}

// Clear removes every entry at once. The eviction callback, if any, is
// invoked for each removed entry after the cache is empty again.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	var cleared []entry[K, V]
	if c.onEvict != nil {
		cleared = make([]entry[K, V], 0, c.order.Len())
		c.order.Each(func(e entry[K, V]) bool {
			cleared = append(cleared, e)
			return true
		})
	}
	c.rc.Release(c.acct.used)
	clear(c.entries)
	c.order.Reset()
	c.acct.used = 0
	c.mu.Unlock()

	for i := range cleared {
		c.onEvict(cleared[i].key, cleared[i].value, cleared[i].weight)
	}
}

// Stats returns hit, miss and eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Close drops all entries and returns the cache's weight to the shared
// budget. The cache must not be used after Close; operations on a closed
// cache behave as if the cache were empty.
func (c *Cache[K, V]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rc.Release(c.acct.used)
	clear(c.entries)
	c.order.Reset()
	c.acct.used = 0
	return nil
}
