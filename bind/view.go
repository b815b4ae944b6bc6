package bind

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/delaneyj/uiglue/glue"
	"github.com/delaneyj/uiglue/win"
)

// ThisView targets the window the bindings are declared on instead of one of
// its controls.
const ThisView = -1

// Declaration binds the value to the target through the named handler.
type Declaration struct {
	Target  int
	Handler string
	Value   any
}

type commandKey struct {
	code win.EventCode
	ctrl win.Handle
}

type subscription struct {
	u  glue.Untyped
	id glue.SubscriptionID
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the logger for skipped declarations and failed updates.
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		v.logger = logger
	}
}

// View holds the binding declarations of one window and, once a view model
// is attached, the subscriptions and command routes that keep the window and
// the view model in sync.
type View struct {
	wnd      win.Window
	handlers *HandlerCache
	decls    []Declaration
	menu     map[int]string
	logger   *slog.Logger

	vm      glue.ViewModelRef
	subs    []subscription
	raw     map[commandKey][]func(win.Control) error
	named   map[commandKey][]func() (string, error)
	lastErr error
}

// NewView returns a view for w resolving handler names through handlers.
func NewView(w win.Window, handlers *HandlerCache, opts ...Option) *View {
	v := &View{
		wnd:      w,
		handlers: handlers,
		menu:     map[int]string{},
		logger:   slog.Default(),
		raw:      map[commandKey][]func(win.Control) error{},
		named:    map[commandKey][]func() (string, error){},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Window returns the window the view belongs to.
func (v *View) Window() win.Window {
	return v.wnd
}

// ViewModel returns the attached view model, or nil.
func (v *View) ViewModel() glue.ViewModelRef {
	return v.vm
}

// AddDeclaration adds a binding, applied the next time a view model is
// attached.
func (v *View) AddDeclaration(d Declaration) {
	v.decls = append(v.decls, d)
}

// Declarations returns the number of declared bindings.
func (v *View) Declarations() int {
	return len(v.decls)
}

// AddMenuCommand routes the menu item id to the named view model command.
func (v *View) AddMenuCommand(id int, command string) {
	v.menu[id] = command
}

// AddCommandHandler calls fn whenever ctrl raises code. Two way handlers use
// it to write control state back into their observable.
func (v *View) AddCommandHandler(code win.EventCode, ctrl win.Control, fn func(win.Control) error) {
	key := commandKey{code: code, ctrl: ctrl.Handle()}
	v.raw[key] = append(v.raw[key], fn)
}

// AddCommand runs the named view model command whenever ctrl raises code.
func (v *View) AddCommand(code win.EventCode, ctrl win.Control, command string) {
	v.AddCommandFunc(code, ctrl, func() (string, error) {
		return command, nil
	})
}

// AddCommandFunc runs the view model command whose name name returns at the
// time ctrl raises code.
func (v *View) AddCommandFunc(code win.EventCode, ctrl win.Control, name func() (string, error)) {
	key := commandKey{code: code, ctrl: ctrl.Handle()}
	v.named[key] = append(v.named[key], name)
}

// RunCommand runs a command of the attached view model.
func (v *View) RunCommand(name string) error {
	if v.vm == nil {
		return fmt.Errorf("command %q: %w", name, ErrNoViewModel)
	}
	return v.vm.RunCommand(name, v.wnd.Handle())
}

// Err returns the last error raised by a binding update. Updates run inside
// observable notifications where nobody can receive an error.
func (v *View) Err() error {
	return v.lastErr
}

// AttachViewModel applies every declaration against vm. A view model that is
// already attached is detached first. If any declaration fails, vm is
// detached again and the error returned.
func (v *View) AttachViewModel(vm glue.ViewModelRef) error {
	v.DetachViewModel()
	v.vm = vm
	if err := v.applyBindings(); err != nil {
		v.DetachViewModel()
		return err
	}
	return nil
}

// DetachViewModel drops all subscriptions and command routes created for
// the attached view model.
func (v *View) DetachViewModel() {
	for _, sub := range v.subs {
		sub.u.Unsubscribe(sub.id)
	}
	v.subs = nil
	clear(v.raw)
	clear(v.named)
	v.vm = nil
}

// Bindings returns the number of live binding subscriptions.
func (v *View) Bindings() int {
	return len(v.subs)
}

func (v *View) applyBindings() error {
	for _, d := range v.decls {
		if err := v.apply(d); err != nil {
			return &BindingError{Target: d.Target, Handler: d.Handler, Err: err}
		}
	}
	return nil
}

func (v *View) apply(d Declaration) error {
	h, ok := v.handlers.Get(d.Handler)
	if !ok {
		v.logger.Debug("skipping binding with unknown handler", "handler", d.Handler, "target", d.Target)
		return nil
	}

	ctrl, err := v.target(d.Target)
	if err != nil {
		return err
	}

	u, err := resolve(d.Value, v.vm)
	if err != nil {
		return err
	}

	if err := h.Init(ctrl, u, v); err != nil {
		return err
	}

	id := u.SubscribeUntyped(func(u glue.Untyped) {
		if err := h.Update(ctrl, u, v); err != nil {
			v.fail(&BindingError{Target: d.Target, Handler: d.Handler, Err: err})
		}
	})
	v.subs = append(v.subs, subscription{u: u, id: id})
	return nil
}

func (v *View) target(id int) (win.Control, error) {
	if id == ThisView {
		return v.wnd, nil
	}
	return v.wnd.Lookup(id)
}

func (v *View) fail(err error) {
	v.lastErr = err
	v.logger.Error("binding update failed", "error", err)
}

// Dispatch routes a control or menu event. Control events run the raw
// handlers first, then the named view model commands. It reports whether
// anything was routed.
func (v *View) Dispatch(ev win.Event) (bool, error) {
	if ev.Code == win.EventMenu {
		command, ok := v.menu[ev.ID]
		if !ok || v.vm == nil {
			return false, nil
		}
		return true, v.RunCommand(command)
	}
	if ev.Control == nil {
		return false, nil
	}

	key := commandKey{code: ev.Code, ctrl: ev.Control.Handle()}
	raw, named := v.raw[key], v.named[key]
	if len(raw) == 0 && len(named) == 0 {
		return false, nil
	}

	var errs []error
	for _, fn := range raw {
		if err := fn(ev.Control); err != nil {
			errs = append(errs, err)
		}
	}
	for _, name := range named {
		command, err := name()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := v.RunCommand(command); err != nil {
			errs = append(errs, err)
		}
	}
	return true, errors.Join(errs...)
}

// hook is installed on the window by Decl.Install.
func (v *View) hook(msg win.MessageID, payload any) (any, bool, error) {
	switch msg {
	case win.Command:
		ev, ok := payload.(win.Event)
		if !ok {
			return nil, false, nil
		}
		handled, err := v.Dispatch(ev)
		return nil, handled, err

	case ApplyBindingsMessage:
		vm, ok := payload.(glue.ViewModelRef)
		if !ok {
			return nil, true, fmt.Errorf("apply bindings payload %T: %w", payload, glue.ErrTypeMismatch)
		}
		return v, true, v.AttachViewModel(vm)

	case DetachViewModelMessage:
		v.DetachViewModel()
		return v, true, nil

	case win.Destroy:
		v.DetachViewModel()
		return nil, false, nil
	}
	return nil, false, nil
}
