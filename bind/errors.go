package bind

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedValue is returned for binding values that cannot be
	// resolved, such as resource: and file: references.
	ErrUnsupportedValue = errors.New("unsupported binding value")
	// ErrNoViewModel is returned when a command runs before a view model
	// is attached.
	ErrNoViewModel = errors.New("no view model attached")
	// ErrNotInstalled is returned when bindings are applied to a window
	// that has no installed declarations.
	ErrNotInstalled = errors.New("window has no binding declarations")
	// ErrCapability is returned when a handler is bound to a control that
	// lacks what the handler needs, like text on a slider.
	ErrCapability = errors.New("control does not support binding")
)

// BindingError reports which declaration failed.
type BindingError struct {
	Target  int
	Handler string
	Err     error
}

func (e *BindingError) Error() string {
	if e.Target == ThisView {
		return fmt.Sprintf("binding %q on view: %v", e.Handler, e.Err)
	}
	return fmt.Sprintf("binding %q on control %d: %v", e.Handler, e.Target, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

func capabilityError(handler string, want string, ctrl any) error {
	return fmt.Errorf("%s needs a %s, got %T: %w", handler, want, ctrl, ErrCapability)
}
