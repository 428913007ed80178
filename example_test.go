package wlru_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/wlru"
	"github.com/hupe1980/wlru/resource"
)

// Example demonstrates weighted inserts and LRU eviction.
func Example() {
	cache, err := wlru.New[string, string](10)
	if err != nil {
		log.Fatal(err)
	}

	_ = cache.Put("a", "alpha", 3)
	_ = cache.Put("b", "beta", 4)
	_ = cache.Put("c", "gamma", 5) // 3+4+5 > 10, evicts "a"

	if _, ok := cache.Get("a"); !ok {
		fmt.Println("a was evicted")
	}
	fmt.Printf("weight=%d entries=%d\n", cache.Size(), cache.Len())
	// Output:
	// a was evicted
	// weight=9 entries=2
}

// Example_evictionCallback demonstrates observing evicted entries.
func Example_evictionCallback() {
	cache, err := wlru.NewWithEvict[string, int](8, func(key string, value int, weight int64) {
		fmt.Printf("evicted %s (weight %d)\n", key, weight)
	})
	if err != nil {
		log.Fatal(err)
	}

	_ = cache.Put("x", 1, 5)
	_ = cache.Put("y", 2, 5) // evicts "x"
	// Output:
	// evicted x (weight 5)
}

// Example_sharedBudget demonstrates two caches charging one weight budget.
func Example_sharedBudget() {
	rc := resource.NewController(resource.Config{WeightLimit: 10})

	blocks, _ := wlru.New[string, int](10, wlru.WithResourceController(rc))
	rows, _ := wlru.New[string, int](10, wlru.WithResourceController(rc))

	_ = blocks.Put("block", 1, 6)
	err := rows.Put("row", 2, 6) // combined weight would exceed the budget

	fmt.Println(errors.Is(err, wlru.ErrResourceExhausted))
	fmt.Println(rc.Usage())
	// Output:
	// true
	// 6
}

// Example_oversize demonstrates strict rejection of entries that can never fit.
func Example_oversize() {
	cache, _ := wlru.New[string, string](10)

	err := cache.Put("huge", "payload", 15)

	var ew *wlru.ErrWeightExceedsCapacity
	if errors.As(err, &ew) {
		fmt.Printf("rejected: %v\n", ew)
	}
	fmt.Printf("weight=%d\n", cache.Size())
	// Output:
	// rejected: weight 15 exceeds capacity 10
	// weight=0
}
