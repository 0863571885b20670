package picdesk

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/picdesk/section"
)

// DefaultSectionLengths is the section length table used in multi-section
// mode when none is configured. Section 0 holds 7 items, section 1 holds 5,
// and so on.
var DefaultSectionLengths = []int{7, 5, 10, 2, 11, 7, 10, 12, 20, 25, 10, 3, 30, 25, 40}

// Config selects how items are distributed over sections.
//
// A Config is a snapshot: the index copies it and never writes back into it.
// Changes made with SetConfig take effect on the next Load.
type Config struct {
	// SingleSection puts all items into one section.
	SingleSection bool

	// SectionLengths is the desired length of each section in multi-section mode.
	SectionLengths []int

	// Remainder decides what happens to items not covered by SectionLengths.
	Remainder section.RemainderMode
}

// DefaultConfig returns the configuration used by New: single-section mode
// with DefaultSectionLengths ready for multi-section mode.
func DefaultConfig() Config {
	return Config{
		SingleSection:  true,
		SectionLengths: append([]int(nil), DefaultSectionLengths...),
		Remainder:      section.AbsorbRemainder,
	}
}

func (c Config) clone() Config {
	c.SectionLengths = append([]int(nil), c.SectionLengths...)
	return c
}

// Validate reports whether the configuration can be applied.
func (c Config) Validate() error {
	return section.Policy{
		Lengths:       c.SectionLengths,
		SingleSection: c.SingleSection,
		Remainder:     c.Remainder,
	}.Validate()
}

type options struct {
	config           Config
	scanner          Scanner
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Index.
type Option func(*options)

// WithConfig replaces the whole section configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg.clone()
	}
}

// WithSingleSectionMode toggles single-section mode.
func WithSingleSectionMode(single bool) Option {
	return func(o *options) {
		o.config.SingleSection = single
	}
}

// WithSectionLengths configures the section length table used in
// multi-section mode.
//
// Example:
//
//	ix, err := picdesk.New[imagefile.ImageFile](m,
//	    picdesk.WithSingleSectionMode(false),
//	    picdesk.WithSectionLengths(7, 5, 10),
//	)
func WithSectionLengths(lengths ...int) Option {
	return func(o *options) {
		o.config.SectionLengths = append([]int(nil), lengths...)
	}
}

// WithRemainder configures how items not covered by the section lengths are handled.
func WithRemainder(mode section.RemainderMode) Option {
	return func(o *options) {
		o.config.Remainder = mode
	}
}

// WithScanner configures the directory scanner used by LoadFromDirectory.
func WithScanner(s Scanner) Option {
	return func(o *options) {
		o.scanner = s
	}
}

// WithConcurrency bounds the number of sources materialized in parallel
// during Load. Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &picdesk.BasicMetricsCollector{}
//	ix, err := picdesk.New[imagefile.ImageFile](m, picdesk.WithMetricsCollector(metrics))
//	// ... use ix ...
//	stats := metrics.GetStats()
//	fmt.Printf("Loads: %d, dropped: %d\n", stats.LoadCount, stats.LoadDropped)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := picdesk.NewJSONLogger(slog.LevelInfo)
//	ix, err := picdesk.New[imagefile.ImageFile](m, picdesk.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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

func applyOptions(optFns []Option) options {
	o := options{
		config:           DefaultConfig(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
