package wlru

// accountant tracks admitted weight against a fixed capacity. Pure
// bookkeeping with no error paths of its own; callers check wouldExceed
// before admit.
type accountant struct {
	capacity int64
	used     int64
}

func (a *accountant) wouldExceed(weight int64) bool {
	return a.used+weight > a.capacity
}

func (a *accountant) admit(weight int64) {
	a.used += weight
}

func (a *accountant) release(weight int64) {
	a.used -= weight
}

// makeRoom evicts least recently used entries until weight fits, returning
// the evicted entries in eviction order. Eviction order is exactly recency
// order; the strict LRU prefix is the minimal set whose removal frees the
// required capacity. If the list drains and weight still does not fit, the
// incoming weight can never be admitted.
//
// Shared-budget accounting is handled by the caller, which settles the net
// weight change in one step.
//
// Caller must hold c.mu.
func (c *Cache[K, V]) makeRoom(weight int64) ([]entry[K, V], error) {
	var evicted []entry[K, V]

	for c.acct.wouldExceed(weight) {
		ent, ok := c.order.PopFront()
		if !ok {
			return evicted, &ErrWeightExceedsCapacity{Weight: weight, Capacity: c.acct.capacity}
		}

		delete(c.entries, ent.key)
		c.acct.release(ent.weight)
		c.evictions.Add(1)
		evicted = append(evicted, ent)
	}

	return evicted, nil
}

// planEvictions returns the weight makeRoom would reclaim to admit weight,
// without mutating anything. Entries with skip's key are ignored because the
// caller removes the replaced entry before evicting. Planning ahead lets Put
// settle the shared budget before any entry is unlinked, so a denied
// admission leaves the cache untouched.
//
// Caller must hold c.mu.
func (c *Cache[K, V]) planEvictions(weight, replaced int64, skip K) int64 {
	remaining := c.acct.used - replaced

	var freed int64
	c.order.Each(func(e entry[K, V]) bool {
		if remaining-freed+weight <= c.acct.capacity {
			return false
		}
		if e.key == skip {
			return true
		}
		freed += e.weight
		return true
	})

	return freed
}
