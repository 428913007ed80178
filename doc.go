// Package wlru provides a weighted (size-aware) LRU cache.
//
// Capacity is measured as the sum of per-entry weights rather than entry
// count. When an insert needs room, the cache evicts the least recently used
// entries, and only as many of them as the incoming weight requires.
//
// # Quick Start
//
//	cache, err := wlru.New[string, []byte](1 << 20) // 1 MiB of weight
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = cache.Put("block-1", payload, int64(len(payload)))
//	value, ok := cache.Get("block-1")
//
// # Weights
//
// Every entry carries a strictly positive weight chosen by the caller, for
// example the byte length of the value. Put rejects non-positive weights and
// weights larger than the cache capacity; both rejections leave the cache
// unchanged, including the previous entry for that key.
//
// # Recency
//
// Get promotes the entry to the most recently used position, so a Get is a
// write with respect to ordering. Peek and Contains read without promoting.
//
// # Concurrency
//
// All methods are safe for concurrent use. Operations serialize through a
// single critical section; none of them blocks on anything else.
//
// # Shared Budgets
//
// Several caches can charge a common resource.Controller so their combined
// weight honors one process-wide limit:
//
//	rc := resource.NewController(resource.Config{WeightLimit: 1 << 30})
//	blocks, _ := wlru.New[BlockID, []byte](1<<28, wlru.WithResourceController(rc))
//	rows, _ := wlru.New[RowID, Row](1<<27, wlru.WithResourceController(rc))
package wlru
