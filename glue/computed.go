package glue

import "log/slog"

// ComputeFunc produces the value of a Computed. Every observable it reads
// becomes a dependency.
type ComputeFunc[T comparable] func() (T, error)

// NoError adapts a compute function that cannot fail.
func NoError[T comparable](fn func() T) ComputeFunc[T] {
	return func() (T, error) {
		return fn(), nil
	}
}

// OnErrorFunc receives errors raised while a Computed re-evaluates in
// response to a dependency change, where there is no caller to return them to.
type OnErrorFunc func(from Untyped, err error)

type computedConfig struct {
	onError OnErrorFunc
	logger  *slog.Logger
}

// ComputedOption configures a Computed.
type ComputedOption func(*computedConfig)

// WithErrorHandler replaces the default handler, which logs the error.
func WithErrorHandler(fn OnErrorFunc) ComputedOption {
	return func(cfg *computedConfig) {
		cfg.onError = fn
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(logger *slog.Logger) ComputedOption {
	return func(cfg *computedConfig) {
		cfg.logger = logger
	}
}

type dependency struct {
	src Source
	id  SubscriptionID
}

// Computed is an observable whose value is derived from other observables.
// It subscribes to exactly the observables its function read on the last
// successful evaluation, and re-evaluates as soon as one of them changes.
type Computed[T comparable] struct {
	fn       ComputeFunc[T]
	inner    *Observable[T]
	dirty    bool
	disposed bool
	deps     []dependency
	onError  OnErrorFunc
}

// NewComputed evaluates fn once and returns the Computed tracking it. An
// error from the first evaluation is returned as is.
func NewComputed[T comparable](fn ComputeFunc[T], opts ...ComputedOption) (*Computed[T], error) {
	cfg := computedConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.onError == nil {
		logger := cfg.logger
		cfg.onError = func(from Untyped, err error) {
			logger.Error("recomputing value failed", "type", from.Type().String(), "error", err)
		}
	}

	var zero T
	c := &Computed[T]{
		fn:      fn,
		inner:   New(zero),
		dirty:   true,
		onError: cfg.onError,
	}
	if err := c.update(); err != nil {
		return nil, err
	}
	return c, nil
}

// Value returns the computed value, evaluating the function first when a
// dependency changed since the last successful evaluation.
func (c *Computed[T]) Value() (T, error) {
	if c.dirty && !c.disposed {
		if err := c.update(); err != nil {
			var zero T
			return zero, err
		}
	}
	return c.inner.Value(), nil
}

// update runs fn inside its own tracking scope. The dependency subscriptions
// are only swapped once fn has returned a value, so a failing or panicking fn
// leaves the previous ones in place.
func (c *Computed[T]) update() error {
	t := beginTracking()
	v, err := func() (T, error) {
		defer endTracking(t)
		return c.fn()
	}()
	if err != nil {
		return err
	}

	c.release()
	for _, src := range t.deps {
		id := src.SubscribeUntyped(c.dependencyChanged)
		c.deps = append(c.deps, dependency{src: src, id: id})
	}

	// Clean before storing: subscribers of the cache may read c again.
	c.dirty = false
	c.inner.SetValue(v)
	return nil
}

func (c *Computed[T]) dependencyChanged(Untyped) {
	// A notification pass may still hold a subscription Dispose released.
	if c.disposed {
		return
	}
	c.dirty = true
	if err := c.update(); err != nil {
		c.onError(c.Untyped(), err)
	}
}

func (c *Computed[T]) release() {
	for _, dep := range c.deps {
		dep.src.Unsubscribe(dep.id)
	}
	c.deps = c.deps[:0]
}

// Dependencies returns how many observables the last evaluation read.
func (c *Computed[T]) Dependencies() int {
	return len(c.deps)
}

// Dispose drops every dependency subscription. The last value stays readable
// and is never recomputed again.
func (c *Computed[T]) Dispose() {
	c.disposed = true
	c.release()
	c.dirty = false
}

// Subscribe registers fn to receive every new computed value.
func (c *Computed[T]) Subscribe(fn func(T)) SubscriptionID {
	return c.inner.Subscribe(fn)
}

// SubscribeUntyped registers fn to receive the computed value, type erased.
func (c *Computed[T]) SubscribeUntyped(fn func(Untyped)) SubscriptionID {
	return c.inner.SubscribeUntyped(fn)
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (c *Computed[T]) Unsubscribe(id SubscriptionID) {
	c.inner.Unsubscribe(id)
}

// Untyped returns a type erased view of the computed value.
func (c *Computed[T]) Untyped() Untyped {
	return c.inner.Untyped()
}
