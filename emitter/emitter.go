// Package emitter renders structural artifacts into target-language source.
package emitter

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pablor21/enumgen/types"
)

// RenderOptions carries the per-run settings a backend may need
type RenderOptions struct {
	// Package is the package name for backends that need one (Go)
	Package string
	// Header is extra text emitted as a comment at the top of every file
	Header string
}

// Backend turns one artifact into the contents of one file
type Backend interface {
	// Name returns the backend identifier used in configuration (e.g. "go", "c")
	Name() string

	// FileName returns the file name, relative to the output directory, for the enum
	FileName(enumName string) string

	// Render produces the complete file contents for a
	Render(a *types.Artifact, opts RenderOptions) ([]byte, error)

	// Formatter returns the name of the formatter that suits this backend's output
	Formatter() string
}

// Declarer is implemented by backends whose files share one namespace, such
// as a Go package or a translation unit including several headers.
// Declarations lists every top-level identifier the file for spec declares.
type Declarer interface {
	Declarations(spec types.EnumSpec) []string
}

// Registry manages registered backends
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// DefaultRegistry returns a registry holding the built-in backends
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewGoBackend())
	r.Register(NewCBackend())
	return r
}

// Register adds a backend, replacing any backend with the same name
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[b.Name()] = b
}

// Get retrieves a backend by name
func (r *Registry) Get(name string) (Backend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("no backend registered for %q", name)
	}
	return b, nil
}

// Names lists the registered backend names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.backends))
	for n := range r.backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
