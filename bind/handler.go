package bind

import (
	"sort"

	"github.com/delaneyj/uiglue/glue"
	"github.com/delaneyj/uiglue/win"
)

// Handler translates between an observable and a control. Init runs once
// when a view model is attached, Update after every change of the
// observable.
type Handler interface {
	Name() string
	Init(ctrl win.Control, u glue.Untyped, v *View) error
	Update(ctrl win.Control, u glue.Untyped, v *View) error
}

// HandlerFunc is the signature of Init and Update.
type HandlerFunc func(ctrl win.Control, u glue.Untyped, v *View) error

// HandlerFuncs builds a Handler from functions. A nil InitFunc runs
// UpdateFunc instead, a nil UpdateFunc does nothing.
type HandlerFuncs struct {
	HandlerName string
	InitFunc    HandlerFunc
	UpdateFunc  HandlerFunc
}

func (h HandlerFuncs) Name() string {
	return h.HandlerName
}

func (h HandlerFuncs) Init(ctrl win.Control, u glue.Untyped, v *View) error {
	if h.InitFunc != nil {
		return h.InitFunc(ctrl, u, v)
	}
	return h.Update(ctrl, u, v)
}

func (h HandlerFuncs) Update(ctrl win.Control, u glue.Untyped, v *View) error {
	if h.UpdateFunc == nil {
		return nil
	}
	return h.UpdateFunc(ctrl, u, v)
}

// HandlerCache maps handler names to handlers.
type HandlerCache struct {
	handlers map[string]Handler
}

func NewHandlerCache() *HandlerCache {
	return &HandlerCache{handlers: map[string]Handler{}}
}

// Add registers handlers under their names, replacing earlier ones.
func (c *HandlerCache) Add(handlers ...Handler) *HandlerCache {
	for _, h := range handlers {
		c.handlers[h.Name()] = h
	}
	return c
}

// Get returns the handler registered under name.
func (c *HandlerCache) Get(name string) (Handler, bool) {
	h, ok := c.handlers[name]
	return h, ok
}

// Names returns the registered names, sorted.
func (c *HandlerCache) Names() []string {
	names := make([]string, 0, len(c.handlers))
	for name := range c.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy that can be extended without affecting c.
func (c *HandlerCache) Clone() *HandlerCache {
	clone := NewHandlerCache()
	for name, h := range c.handlers {
		clone.handlers[name] = h
	}
	return clone
}
