package glue

import (
	"fmt"
	"reflect"
)

// Source is the capability set every observable exposes once its value type
// has been erased.
type Source interface {
	Type() reflect.Type
	SubscribeUntyped(fn func(Untyped)) SubscriptionID
	Unsubscribe(id SubscriptionID)
	ViewModel() (ViewModelRef, bool)
}

// Untyped is a type erased handle to an observable. It is what crosses into
// binding handlers, which check the runtime type with Is before committing to
// it with As.
type Untyped struct {
	src Source
}

// Valid reports whether u refers to an observable.
func (u Untyped) Valid() bool {
	return u.src != nil
}

// Type returns the type of the observed value.
func (u Untyped) Type() reflect.Type {
	return u.src.Type()
}

// SubscribeUntyped registers fn to be called with u on every change.
func (u Untyped) SubscribeUntyped(fn func(Untyped)) SubscriptionID {
	return u.src.SubscribeUntyped(fn)
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (u Untyped) Unsubscribe(id SubscriptionID) {
	u.src.Unsubscribe(id)
}

// Source returns the capability set behind u.
func (u Untyped) Source() Source {
	return u.src
}

// IsViewModel reports whether the observed value is a nested view model.
func (u Untyped) IsViewModel() bool {
	if u.src == nil {
		return false
	}
	_, ok := u.src.ViewModel()
	return ok
}

// AsViewModel returns the member map of the observed value, which must be a
// ViewModel.
func (u Untyped) AsViewModel() (ViewModelRef, error) {
	if u.src == nil {
		return nil, &TypeMismatchError{Want: "view model", Got: "nothing"}
	}
	ref, ok := u.src.ViewModel()
	if !ok {
		return nil, &TypeMismatchError{Want: "view model", Got: u.src.Type().String()}
	}
	return ref, nil
}

// Is reports whether u observes a value of type T. Inside a Computed this
// counts as a read of u, since code branching on the type has to rerun when
// the observable changes.
func Is[T comparable](u Untyped) bool {
	if u.src == nil {
		return false
	}
	track(u.src)
	return u.src.Type() == reflect.TypeFor[T]()
}

// As returns a typed handle sharing the observable behind u.
func As[T comparable](u Untyped) (*Observable[T], error) {
	if u.src == nil {
		return nil, &TypeMismatchError{Want: reflect.TypeFor[T]().String(), Got: "nothing"}
	}
	if !Is[T](u) {
		return nil, &TypeMismatchError{
			Want: reflect.TypeFor[T]().String(),
			Got:  u.src.Type().String(),
		}
	}
	c, ok := u.src.(*cell[T])
	if !ok {
		return nil, fmt.Errorf("observable of %s has foreign source %T: %w", u.src.Type(), u.src, ErrTypeMismatch)
	}
	return &Observable[T]{c: c}, nil
}

// ValueOf reads the value behind u as a T.
func ValueOf[T comparable](u Untyped) (T, error) {
	o, err := As[T](u)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.Value(), nil
}
