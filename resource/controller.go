// Package resource provides a shared weight budget for one or more caches.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds budget limits.
type Config struct {
	// WeightLimit is the hard limit for weight admitted across every cache
	// charging this controller. If 0, no hard limit is enforced (only
	// tracking).
	WeightLimit int64
}

// Controller tracks weight reserved by one or more caches against a shared
// budget. All methods are safe for concurrent use; a nil Controller behaves
// as unlimited.
type Controller struct {
	cfg  Config
	sem  *semaphore.Weighted // nil if unlimited
	used atomic.Int64
}

// NewController creates a new budget controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.WeightLimit > 0 {
		c.sem = semaphore.NewWeighted(cfg.WeightLimit)
	}

	return c
}

// Acquire reserves weight. If a hard limit is configured and usage would
// exceed it, this blocks until budget is available or ctx is canceled.
func (c *Controller) Acquire(ctx context.Context, weight int64) error {
	if c == nil || weight <= 0 {
		return nil
	}

	if c.sem != nil {
		if err := c.sem.Acquire(ctx, weight); err != nil {
			return err
		}
	}

	c.used.Add(weight)
	return nil
}

// TryAcquire reserves weight without blocking. Returns true if acquired,
// false if the limit would be exceeded.
func (c *Controller) TryAcquire(weight int64) bool {
	if c == nil || weight <= 0 {
		return true
	}

	if c.sem != nil {
		if !c.sem.TryAcquire(weight) {
			return false
		}
	}

	c.used.Add(weight)
	return true
}

// Release returns reserved weight to the budget.
func (c *Controller) Release(weight int64) {
	if c == nil || weight <= 0 {
		return
	}

	if c.sem != nil {
		c.sem.Release(weight)
	}
	c.used.Add(-weight)
}

// Usage returns the weight currently reserved.
func (c *Controller) Usage() int64 {
	if c == nil {
		return 0
	}
	return c.used.Load()
}

// Limit returns the configured hard limit, 0 if unlimited.
func (c *Controller) Limit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.WeightLimit
}
