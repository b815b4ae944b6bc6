package bind

import (
	"fmt"

	"github.com/delaneyj/uiglue/glue"
	"github.com/delaneyj/uiglue/win"
)

var (
	// ApplyBindingsMessage hands a glue.ViewModelRef to the view installed
	// on a window.
	ApplyBindingsMessage = win.RegisterMessage("uiglue.bind.ApplyBindings")
	// DetachViewModelMessage releases the view model held by a window.
	DetachViewModelMessage = win.RegisterMessage("uiglue.bind.DetachViewModel")
)

// Decl collects binding declarations for a window:
//
//	bind.Declare(wnd, bind.DefaultHandlers()).
//		Control(NameLabel, "text", "Name:").
//		Control(NameEdit, "value", "bind: name").
//		Install()
type Decl struct {
	view *View
}

// Declare starts declaring bindings for w.
func Declare(w win.Window, handlers *HandlerCache, opts ...Option) *Decl {
	return &Decl{view: NewView(w, handlers, opts...)}
}

// Control binds value to the child control with the given id.
func (d *Decl) Control(id int, handler string, value any) *Decl {
	d.view.AddDeclaration(Declaration{Target: id, Handler: handler, Value: value})
	return d
}

// View binds value to the window itself.
func (d *Decl) View(handler string, value any) *Decl {
	d.view.AddDeclaration(Declaration{Target: ThisView, Handler: handler, Value: value})
	return d
}

// MenuCommand routes a menu item to a view model command.
func (d *Decl) MenuCommand(id int, command string) *Decl {
	d.view.AddMenuCommand(id, command)
	return d
}

// Install hands the view to the window. From here on the view is reached
// only through messages sent to the window, and lives as long as the window
// does.
func (d *Decl) Install() *View {
	d.view.wnd.Subclass(d.view.hook)
	return d.view
}

// ApplyBindings attaches vm to the bindings installed on w.
func ApplyBindings(w win.Window, vm glue.ViewModel) error {
	return ApplyBindingsRef(w, vm.Members())
}

// ApplyBindingsRef attaches a view model reference to the bindings installed
// on w.
func ApplyBindingsRef(w win.Window, ref glue.ViewModelRef) error {
	result, err := w.Send(ApplyBindingsMessage, ref)
	if err != nil {
		return err
	}
	if _, ok := result.(*View); !ok {
		return fmt.Errorf("window %#x: %w", uintptr(w.Handle()), ErrNotInstalled)
	}
	return nil
}

// DetachViewModel releases the view model attached to w.
func DetachViewModel(w win.Window) error {
	result, err := w.Send(DetachViewModelMessage, nil)
	if err != nil {
		return err
	}
	if _, ok := result.(*View); !ok {
		return fmt.Errorf("window %#x: %w", uintptr(w.Handle()), ErrNotInstalled)
	}
	return nil
}
