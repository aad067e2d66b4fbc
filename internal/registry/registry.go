// Package registry keeps the named audio backend factories. Backends register
// themselves in init() functions, so the CLI can pick one by name (--audio)
// without hardcoded dependencies on every device library.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/audio"
)

// ErrUnknownBackend is returned by Create for unregistered names.
var ErrUnknownBackend = errors.New("registry: unknown audio backend")

// Options are passed to backend factories.
type Options struct {
	SampleRate int
	Logger     *log.Logger
}

// Factory opens an audio backend.
type Factory func(opts Options) (audio.Backend, error)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

func init() {
	Register("none", "silent output", func(Options) (audio.Backend, error) {
		return audio.Null{}, nil
	})
}

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	factories[name] = f
	descriptions[name] = description
}

// List returns all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{Name: name, Description: descriptions[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create opens the named backend.
func Create(name string, opts Options) (audio.Backend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	b, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s backend: %w", name, err)
	}
	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
