package glue

import "reflect"

// cell is the reactive storage behind Observable, Computed and Untyped.
type cell[T comparable] struct {
	value T
	subs  subscribers[T]
}

func (c *cell[T]) get() T {
	track(c)
	return c.value
}

func (c *cell[T]) set(v T) {
	if c.value == v {
		return
	}
	snap := c.subs.snapshot()
	c.value = v
	for _, sub := range snap {
		if sub.typed != nil {
			sub.typed(c.value)
		} else {
			sub.untyped(Untyped{src: c})
		}
	}
}

func (c *cell[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *cell[T]) SubscribeUntyped(fn func(Untyped)) SubscriptionID {
	return c.subs.add(subscriber[T]{untyped: fn})
}

func (c *cell[T]) Unsubscribe(id SubscriptionID) {
	c.subs.remove(id)
}

func (c *cell[T]) ViewModel() (ViewModelRef, bool) {
	vm, ok := any(c.value).(ViewModel)
	if !ok || isNil(vm) {
		return nil, false
	}
	members := vm.Members()
	if members == nil {
		return nil, false
	}
	return members, true
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Observable is a mutable reactive value. Readers inside a Computed become
// dependent on it; subscribers are called whenever a write changes it.
//
// An Observable is used through its pointer. Copy makes an independent
// observable, sharing is done by passing the pointer around.
type Observable[T comparable] struct {
	c *cell[T]
}

// New returns an observable holding v.
func New[T comparable](v T) *Observable[T] {
	return &Observable[T]{c: &cell[T]{value: v}}
}

// Value returns the current value and records a dependency when called while
// a Computed is evaluating.
func (o *Observable[T]) Value() T {
	return o.c.get()
}

// Peek returns the current value without recording a dependency.
func (o *Observable[T]) Peek() T {
	return o.c.value
}

// SetValue stores v and notifies subscribers, unless v equals the current
// value.
func (o *Observable[T]) SetValue(v T) {
	o.c.set(v)
}

// Subscribe registers fn to receive every new value.
func (o *Observable[T]) Subscribe(fn func(T)) SubscriptionID {
	return o.c.subs.add(subscriber[T]{typed: fn})
}

// SubscribeUntyped registers fn to receive the observable, type erased, on
// every change.
func (o *Observable[T]) SubscribeUntyped(fn func(Untyped)) SubscriptionID {
	return o.c.SubscribeUntyped(fn)
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (o *Observable[T]) Unsubscribe(id SubscriptionID) {
	o.c.Unsubscribe(id)
}

// Subscribers returns the number of live subscriptions.
func (o *Observable[T]) Subscribers() int {
	return o.c.subs.len()
}

// Copy returns a new observable seeded with the current value. Subscriptions
// are not carried over.
func (o *Observable[T]) Copy() *Observable[T] {
	return New(o.c.value)
}

// Untyped returns a type erased view of the same observable.
func (o *Observable[T]) Untyped() Untyped {
	return Untyped{src: o.c}
}
