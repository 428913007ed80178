package wlru

import (
	"errors"
	"fmt"
)

// ErrResourceExhausted is returned by Put when a shared resource.Controller
// denies admission of the entry's weight. The cache state is unchanged; the
// budget is checked before any entry is removed or evicted.
var ErrResourceExhausted = errors.New("resource budget exhausted")

// ErrInvalidCapacity indicates a non-positive cache capacity. It is fatal to
// construction; no cache is produced.
type ErrInvalidCapacity struct {
	Capacity int64
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Capacity)
}

// ErrInvalidWeight indicates a Put with a non-positive weight. The cache
// state is unchanged.
type ErrInvalidWeight struct {
	Weight int64
}

func (e *ErrInvalidWeight) Error() string {
	return fmt.Sprintf("invalid weight: %d", e.Weight)
}

// ErrWeightExceedsCapacity indicates a Put whose weight can never fit. The
// cache state is unchanged; an existing entry for the key survives.
type ErrWeightExceedsCapacity struct {
	Weight   int64
	Capacity int64
}

func (e *ErrWeightExceedsCapacity) Error() string {
	return fmt.Sprintf("weight %d exceeds capacity %d", e.Weight, e.Capacity)
}
