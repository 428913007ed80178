package wlru

import (
	"log/slog"
	"time"

	"github.com/hupe1980/wlru/resource"
)

type options struct {
	logger              *Logger
	metricsCollector    MetricsCollector
	controller          *resource.Controller
	initialSlots        int
	pressureLogInterval time.Duration
}

// Option configures cache constructor behavior.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:              NoopLogger(),
		metricsCollector:    NoopMetricsCollector{},
		pressureLogInterval: time.Minute,
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := wlru.NewJSONLogger(slog.LevelInfo)
//	cache, _ := wlru.New[string, []byte](capacity, wlru.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &wlru.BasicMetricsCollector{}
//	cache, _ := wlru.New[string, []byte](capacity, wlru.WithMetricsCollector(metrics))
//	// ... use cache ...
//	stats := metrics.GetStats()
//	fmt.Printf("Gets: %d, Hits: %d\n", stats.GetCount, stats.GetHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController charges the cache's admitted weight to a shared
// budget. When the controller denies an admission, Put reports
// ErrResourceExhausted instead of storing the entry.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithInitialSlots pre-allocates recency-list slots for the expected number
// of entries. Purely a performance hint.
func WithInitialSlots(n int) Option {
	return func(o *options) {
		o.initialSlots = n
	}
}

// WithPressureLogInterval sets how often, at most, the cache logs an
// eviction-pressure warning. Defaults to one minute.
func WithPressureLogInterval(d time.Duration) Option {
	return func(o *options) {
		o.pressureLogInterval = d
	}
}
