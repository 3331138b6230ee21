package features

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"omar-backend/config"
	"omar-backend/internal/registry"
	"omar-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

var ErrUnknownModule = errors.New("feature module not registered")

// Module is an optional bundle of routes, such as chat or training.
type Module interface {
	Name() string
	Attach(r gin.IRouter) error
}

// Dependencies are handed to a module factory when it is built.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Sessions *registry.SessionRegistry
}

type Factory func(deps Dependencies) (Module, error)

// AttachResult records the outcome of attaching one module at startup.
type AttachResult struct {
	Name string
	Err  error
}

func (r AttachResult) Attached() bool { return r.Err == nil }

// Catalog holds the factories of modules compiled into the binary.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Register adds a factory. Registering the same name twice is an error.
func (c *Catalog) Register(name string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("feature %q: nil factory", name)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.factories[name]; dup {
		return fmt.Errorf("feature %q already registered", name)
	}
	c.factories[name] = factory
	return nil
}

func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Attach builds and attaches each named module. A failure is reported in the
// result and never stops the remaining modules.
func (c *Catalog) Attach(r gin.IRouter, deps Dependencies, names []string) []AttachResult {
	results := make([]AttachResult, 0, len(names))
	for _, name := range names {
		results = append(results, AttachResult{Name: name, Err: c.attachOne(r, deps, name)})
	}
	return results
}

func (c *Catalog) attachOne(r gin.IRouter, deps Dependencies, name string) (err error) {
	c.mu.RLock()
	factory, ok := c.factories[name]
	c.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownModule)
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%s: panic during attach: %v", name, rec)
		}
	}()

	module, err := factory(deps)
	if err != nil {
		return fmt.Errorf("%s: build: %w", name, err)
	}
	if err := module.Attach(r); err != nil {
		return fmt.Errorf("%s: attach: %w", name, err)
	}
	return nil
}
