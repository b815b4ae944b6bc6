// Package headless implements the win contract in memory. Controls hold
// their state in fields, user input is simulated by methods such as
// Button.Click, and messages are delivered synchronously to the hooks
// installed on a window.
package headless

import (
	"errors"
	"fmt"

	"github.com/delaneyj/uiglue/win"
)

// ErrDestroyed is returned when a message is sent to a destroyed window.
var ErrDestroyed = errors.New("window destroyed")

type describer interface {
	win.Control
	describe() line
}

// Window is a top level or child window.
type Window struct {
	base
	controls  []describer
	byID      map[int]describer
	hooks     []win.Hook
	destroyed bool
}

// NewWindow returns a top level window.
func NewWindow(title string) *Window {
	w := &Window{
		base: newBase(nil, 0),
		byID: map[int]describer{},
	}
	w.text = title
	return w
}

func (w *Window) add(ctrl describer) {
	if _, ok := w.byID[ctrl.ID()]; ok {
		panic(fmt.Sprintf("headless: duplicate control id %d", ctrl.ID()))
	}
	w.controls = append(w.controls, ctrl)
	w.byID[ctrl.ID()] = ctrl
}

// AddStatic creates a label.
func (w *Window) AddStatic(id int) *Static {
	s := &Static{base: newBase(w, id)}
	w.add(s)
	return s
}

// AddEdit creates a text box.
func (w *Window) AddEdit(id int) *Edit {
	e := &Edit{base: newBase(w, id)}
	w.add(e)
	return e
}

// AddButton creates a push button.
func (w *Window) AddButton(id int) *Button {
	b := &Button{base: newBase(w, id)}
	w.add(b)
	return b
}

// AddCheckbox creates a check box; triState enables the indeterminate
// state.
func (w *Window) AddCheckbox(id int, triState bool) *Checkbox {
	c := &Checkbox{base: newBase(w, id), triState: triState}
	w.add(c)
	return c
}

// AddSlider creates a slider with the given bounds.
func (w *Window) AddSlider(id, min, max int) *Slider {
	s := &Slider{base: newBase(w, id), min: min, max: max, pos: min}
	w.add(s)
	return s
}

// AddWindow creates a child window, such as a nested dialog.
func (w *Window) AddWindow(id int) *Window {
	child := &Window{
		base: newBase(w, id),
		byID: map[int]describer{},
	}
	w.add(child)
	return child
}

// Lookup returns the direct child with the given id.
func (w *Window) Lookup(id int) (win.Control, error) {
	ctrl, ok := w.byID[id]
	if !ok {
		return nil, win.NoControlError(id)
	}
	return ctrl, nil
}

// Subclass installs h ahead of the existing hooks.
func (w *Window) Subclass(h win.Hook) {
	w.hooks = append(w.hooks, h)
}

// Hooks returns the number of installed hooks.
func (w *Window) Hooks() int {
	return len(w.hooks)
}

// Send delivers msg to the hooks, newest first.
func (w *Window) Send(msg win.MessageID, payload any) (any, error) {
	if w.destroyed {
		return nil, ErrDestroyed
	}
	for i := len(w.hooks) - 1; i >= 0; i-- {
		result, handled, err := w.hooks[i](msg, payload)
		if handled || err != nil {
			return result, err
		}
	}
	return nil, nil
}

// Menu raises the menu command with the given id.
func (w *Window) Menu(id int) error {
	_, err := w.Send(win.Command, win.Event{Code: win.EventMenu, ID: id})
	return err
}

// Destroy destroys the child windows, then sends win.Destroy to w. Hooks are
// dropped afterwards and further messages fail with ErrDestroyed.
func (w *Window) Destroy() error {
	if w.destroyed {
		return nil
	}
	var errs []error
	for _, ctrl := range w.controls {
		if child, ok := ctrl.(*Window); ok {
			errs = append(errs, child.Destroy())
		}
	}
	_, err := w.Send(win.Destroy, nil)
	errs = append(errs, err)
	w.destroyed = true
	w.hooks = nil
	return errors.Join(errs...)
}

// Destroyed reports whether Destroy was called.
func (w *Window) Destroyed() bool {
	return w.destroyed
}

func (w *Window) describe() line {
	return line{Kind: "window", ID: w.id, Text: w.text, Visible: w.visible}
}

var _ win.Window = (*Window)(nil)
