package ngramdist

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Registry maps engine-facing function names to implementations. The zero
// value is not usable; construct with NewRegistry.
type Registry struct {
	mu    sync.RWMutex
	log   zerolog.Logger
	funcs map[string]*Func
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration diagnostics. The default
// discards everything.
func WithLogger(log zerolog.Logger) RegistryOption {
	return func(r *Registry) { r.log = log }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		log:   zerolog.Nop(),
		funcs: make(map[string]*Func),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds f under its name. Registering a name twice is a programming
// error and panics.
func (r *Registry) Register(f *Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[f.name]; ok {
		panic(fmt.Sprintf("ngramdist: function %q already registered", f.name))
	}
	r.funcs[f.name] = f
	r.log.Debug().
		Str("func", f.name).
		Stringer("mode", f.mode).
		Msg("registered similarity function")
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (*Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return f, nil
}

// MustLookup is Lookup panicking on unknown names.
func (r *Registry) MustLookup(name string) *Func {
	f, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry holds the built-in distance functions.
var DefaultRegistry = NewRegistry()

// RegisterFunctions registers the four n-gram distance functions with r.
// The engine calls this once per registry it owns; the built-ins are already
// present in DefaultRegistry.
func RegisterFunctions(r *Registry) {
	r.Register(NgramDistance)
	r.Register(NgramDistanceCaseInsensitive)
	r.Register(NgramDistanceUTF8)
	r.Register(NgramDistanceCaseInsensitiveUTF8)
}

func init() {
	RegisterFunctions(DefaultRegistry)
}

// Lookup returns the built-in function registered under name.
func Lookup(name string) (*Func, error) {
	return DefaultRegistry.Lookup(name)
}
