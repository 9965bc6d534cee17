package layout

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lixenwraith/tilekit/geom"
)

// DefaultCacheSize is the engine capacity used when none is configured
const DefaultCacheSize = 16

// Engine splits rectangles and memoizes results in an LRU cache.
// Safe for concurrent use; concurrent misses on the same key may both solve.
//
// Every call returns its own copy of the rectangles, so callers may modify
// the result without affecting the cache.
type Engine struct {
	cache    *lru.Cache[string, []geom.Geometry]
	capacity int
	logger   *log.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger routes solve traces to logger at debug level
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine holding up to capacity results.
// Non-positive capacity selects DefaultCacheSize.
func NewEngine(capacity int, opts ...Option) *Engine {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes
	cache, _ := lru.New[string, []geom.Geometry](capacity)

	e := &Engine{
		cache:    cache,
		capacity: capacity,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Capacity returns the maximum number of cached results
func (e *Engine) Capacity() int {
	return e.capacity
}

// Len returns the number of cached results
func (e *Engine) Len() int {
	return e.cache.Len()
}

// Purge drops every cached result
func (e *Engine) Purge() {
	e.cache.Purge()
}

// solveFunc is replaced in tests to exercise solver failures
var solveFunc = solve

// Split divides area according to l.
// Panics if the solver rejects the system, which indicates a bug rather than bad input.
func (e *Engine) Split(area geom.Geometry, l Layout) []geom.Geometry {
	rects, err := e.TrySplit(area, l)
	if err != nil {
		panic(err)
	}
	return rects
}

// TrySplit is Split returning solver failures instead of panicking
func (e *Engine) TrySplit(area geom.Geometry, l Layout) ([]geom.Geometry, error) {
	key := cacheKey(area, l)
	if rects, ok := e.cache.Get(key); ok {
		return slices.Clone(rects), nil
	}

	rects, err := solveFunc(area, l)
	if err != nil {
		e.logger.Error("layout solve failed", "area", area, "layout", l, "err", err)
		return nil, err
	}
	if evicted := e.cache.Add(key, rects); evicted {
		e.logger.Debug("layout cache evicted entry", "capacity", e.capacity)
	}
	e.logger.Debug("layout solved", "area", area, "layout", l, "rects", rects)
	return slices.Clone(rects), nil
}

// engineSlot holds a lazily created engine whose capacity can be set once before first use
type engineSlot struct {
	mu     sync.Mutex
	engine *Engine
}

func (s *engineSlot) init(capacity int, opts ...Option) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		return false
	}
	s.engine = NewEngine(capacity, opts...)
	return true
}

func (s *engineSlot) get() *Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		s.engine = NewEngine(DefaultCacheSize)
	}
	return s.engine
}

var defaultSlot engineSlot

// InitCache configures the process default engine used by Layout.Split.
// Returns false, changing nothing, once the default engine exists,
// either from an earlier InitCache or from a first Split.
func InitCache(capacity int, opts ...Option) bool {
	return defaultSlot.init(capacity, opts...)
}

// DefaultEngine returns the process default engine, creating it if needed
func DefaultEngine() *Engine {
	return defaultSlot.get()
}
