// File: registry.go
// Title: Scene Directive Registry
// Description: Thread-safe registry mapping directive keywords onto their
//              definitions. Preloaded with the builtin vocabulary and open
//              for extension with renderer-specific directives.
// Version: v0.1.0
// Created: 2025-11-16
// Modified: 2025-11-16
//
// Change History:
// - 2025-11-16 v0.1.0: Initial registry implementation

package registry

import (
	"errors"
	"fmt"
	"sync"

	sllog "github.com/candela-render/scenelang/core/log"
	"github.com/candela-render/scenelang/utils/mapx"
	"github.com/candela-render/scenelang/utils/slicex"
	"github.com/candela-render/scenelang/utils/stringx"
)

// Options configures registry behavior
type Options struct {
	Logger *sllog.Logger
}

// Registry holds the directive vocabulary the statement parser dispatches
// on. Keywords are case-sensitive: the surface grammar does not fold case.
type Registry struct {
	definitions map[string]*Definition
	logger      *sllog.Logger
	mutex       sync.RWMutex
}

// New creates a registry preloaded with the builtin directive vocabulary
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = sllog.GetDefault()
	}

	registry := &Registry{
		definitions: make(map[string]*Definition),
		logger:      opts.Logger.WithField("component", "scene-registry"),
	}

	for _, def := range builtinDefinitions() {
		if err := registry.Register(def); err != nil {
			return nil, fmt.Errorf("failed to register builtin directive: %w", err)
		}
	}

	registry.logger.Info("directive registry initialized", sllog.Fields{
		"keywordCount": len(registry.definitions),
	})

	return registry, nil
}

// Register adds a directive definition to the vocabulary
func (r *Registry) Register(def *Definition) error {
	if def == nil {
		return errors.New("directive definition cannot be nil")
	}

	if stringx.IsBlank(def.Keyword) {
		return errors.New("directive keyword cannot be empty")
	}

	if def.Contexts == 0 {
		return fmt.Errorf("directive %s requires at least one context", def.Keyword)
	}

	switch def.Shape {
	case ShapeTransform:
		if def.FloatArgs < 0 {
			return fmt.Errorf("directive %s requires a non-negative float arity", def.Keyword)
		}
	case ShapeScopeBegin:
		if stringx.IsBlank(def.Closer) {
			return fmt.Errorf("directive %s requires a closing keyword", def.Keyword)
		}
	case ShapeMode:
		if len(def.Modes) == 0 {
			return fmt.Errorf("directive %s requires at least one mode word", def.Keyword)
		}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.definitions[def.Keyword]; exists {
		return fmt.Errorf("directive %s already registered", def.Keyword)
	}

	r.definitions[def.Keyword] = def

	r.logger.Debug("directive registered", sllog.Fields{
		"keyword": def.Keyword,
		"shape":   def.Shape.String(),
	})

	return nil
}

// Lookup returns the definition for a keyword
func (r *Registry) Lookup(keyword string) (*Definition, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	def, exists := r.definitions[keyword]
	return def, exists
}

// Has checks if a keyword is part of the vocabulary
func (r *Registry) Has(keyword string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.definitions[keyword]
	return exists
}

// AllowedIn reports whether a keyword is legal in the given context.
// Unknown keywords are legal nowhere.
func (r *Registry) AllowedIn(keyword string, ctx Context) bool {
	def, exists := r.Lookup(keyword)
	if !exists {
		return false
	}
	return def.Contexts&ctx != 0
}

// Keywords returns all registered keywords in sorted order
func (r *Registry) Keywords() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return slicex.Sort(mapx.Keys(r.definitions))
}

// KeywordsIn returns the keywords legal in the given context in sorted order
func (r *Registry) KeywordsIn(ctx Context) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	keywords := make([]string, 0, len(r.definitions))
	for keyword, def := range r.definitions {
		if def.Contexts&ctx != 0 {
			keywords = append(keywords, keyword)
		}
	}

	return slicex.Sort(keywords)
}

// Definitions returns a copy of the vocabulary table
func (r *Registry) Definitions() map[string]*Definition {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return mapx.Clone(r.definitions)
}
