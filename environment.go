package envfile

import (
	"os"

	"github.com/Azhovan/envfile/internal/snake"
)

// DataSource names one queryable origin of configuration values.
type DataSource int

const (
	// SourceNone disables a resolution step.
	SourceNone DataSource = iota
	// SourceConfiguration resolves against the store.
	SourceConfiguration
	// SourceProcess resolves against the process environment collaborator.
	SourceProcess
)

// String returns a human-readable name for the source.
func (d DataSource) String() string {
	switch d {
	case SourceConfiguration:
		return "configuration"
	case SourceProcess:
		return "process"
	default:
		return "none"
	}
}

// Strategy is the ordered pair of sources consulted by Query: the primary
// source, then the fallback on a miss.
type Strategy struct {
	Query    DataSource
	Fallback DataSource
}

// NewStrategy builds a strategy. A fallback equal to the query source is
// meaningless (the same source would be consulted twice) and is forced to
// SourceNone.
func NewStrategy(query, fallback DataSource) Strategy {
	if fallback == query {
		fallback = SourceNone
	}
	return Strategy{Query: query, Fallback: fallback}
}

// DefaultStrategy queries the store and falls back to the process
// environment.
func DefaultStrategy() Strategy {
	return Strategy{Query: SourceConfiguration, Fallback: SourceProcess}
}

// LookupFunc is the read-only process environment collaborator. It reports
// the raw value for a key and whether the key is set.
type LookupFunc func(key string) (string, bool)

// Options configures an Environment. The zero value means: '=' delimiter,
// store-then-process strategy, os.LookupEnv collaborator.
type Options struct {
	// Delimiter separates keys from values in the file format.
	Delimiter rune

	// Strategy orders the sources consulted on lookup.
	Strategy Strategy

	// Lookup supplies process environment values. It is never mutated.
	Lookup LookupFunc
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.Strategy == (Strategy{}) {
		o.Strategy = DefaultStrategy()
	}
	if o.Lookup == nil {
		o.Lookup = os.LookupEnv
	}
	return o
}

// Environment owns a store of parsed or explicitly set values plus the
// process environment collaborator, and resolves keys across the two per
// its strategy.
//
// An Environment is a single-owner mutable value. It is not safe for
// concurrent mutation; callers sharing one across goroutines must apply
// their own synchronization.
type Environment struct {
	store *Store
	opts  Options
}

// New creates an Environment with an empty store.
func New(opts Options) *Environment {
	return &Environment{store: NewStore(), opts: opts.withDefaults()}
}

// NewFromStore wraps an existing store. The Environment takes ownership;
// callers must not retain or mutate the store afterwards.
func NewFromStore(store *Store, opts Options) *Environment {
	if store == nil {
		store = NewStore()
	}
	return &Environment{store: store, opts: opts.withDefaults()}
}

// NewFromPairs builds an Environment from raw pairs in order.
func NewFromPairs(pairs []Pair, opts Options) (*Environment, error) {
	store, err := FromPairs(pairs)
	if err != nil {
		return nil, err
	}
	return NewFromStore(store, opts), nil
}

// ParseEnvironment builds an Environment from env-file contents.
func ParseEnvironment(contents string, opts Options) (*Environment, error) {
	opts = opts.withDefaults()
	store, err := Parse(contents, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	return &Environment{store: store, opts: opts}, nil
}

// Len returns the number of store entries.
func (e *Environment) Len() int { return e.store.Len() }

// Keys returns the store's keys in insertion order.
func (e *Environment) Keys() []string { return e.store.Keys() }

// Query resolves a key through the primary source, then the fallback.
// Absence is a normal outcome, never an error.
func (e *Environment) Query(key string) (Value, bool) {
	v, _, ok := e.Resolve(key)
	return v, ok
}

// Resolve is Query plus attribution: it also reports which source answered.
// A miss reports SourceNone.
func (e *Environment) Resolve(key string) (Value, DataSource, bool) {
	if v, ok := e.resolve(e.opts.Strategy.Query, key); ok {
		return v, e.opts.Strategy.Query, true
	}
	if v, ok := e.resolve(e.opts.Strategy.Fallback, key); ok {
		return v, e.opts.Strategy.Fallback, true
	}
	return Value{}, SourceNone, false
}

func (e *Environment) resolve(source DataSource, key string) (Value, bool) {
	switch source {
	case SourceConfiguration:
		return e.store.Get(key)
	case SourceProcess:
		if raw, ok := e.opts.Lookup(key); ok {
			return Infer(raw), true
		}
	}
	return Value{}, false
}

// Member resolves a camelCase name by converting it to SCREAMING_SNAKE_CASE
// first: Member("apiKey") queries "API_KEY". Same resolution path as Query.
func (e *Environment) Member(name string) (Value, bool) {
	return e.Query(snake.Screaming(name))
}

// Set inserts, overwrites or removes a store entry; see Store.Set.
func (e *Environment) Set(key string, value *Value, force bool) {
	e.store.Set(key, value, force)
}

// Remove returns the value the key currently resolves to, which may come
// through the fallback, then force-deletes the key from the store. The
// delete happens even when nothing resolved.
func (e *Environment) Remove(key string) (Value, bool) {
	v, ok := e.Query(key)
	e.store.Set(key, nil, true)
	return v, ok
}

// Serialize renders the store in the file format.
func (e *Environment) Serialize() string {
	return Serialize(e.store, e.opts.Delimiter)
}
