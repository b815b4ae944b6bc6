// Package win is the contract between the binding layer and a native
// windowing toolkit: handles, controls and their capabilities, and
// synchronous message delivery to a window.
package win

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Handle identifies a native window or control.
type Handle uintptr

// MessageID identifies a window message.
type MessageID uint64

// RegisterMessage returns the id of the message called name. The same name
// always yields the same id, so unrelated packages agree on it without
// coordinating, and namespaced names keep them apart.
func RegisterMessage(name string) MessageID {
	return MessageID(xxhash.Sum64String(name))
}

var (
	// Command carries an Event raised by a control or a menu.
	Command = RegisterMessage("uiglue.win.Command")
	// Destroy is sent once when a window is being destroyed.
	Destroy = RegisterMessage("uiglue.win.Destroy")
)

// ErrNoControl is returned by Lookup when no control has the requested id.
var ErrNoControl = errors.New("no such control")

// NoControlError wraps ErrNoControl with the id that was looked up.
func NoControlError(id int) error {
	return fmt.Errorf("control %d: %w", id, ErrNoControl)
}

// EventCode is the kind of notification a control raises.
type EventCode int

const (
	EventMenu EventCode = iota
	EventClicked
	EventChanged
	EventScroll
)

func (c EventCode) String() string {
	switch c {
	case EventMenu:
		return "menu"
	case EventClicked:
		return "clicked"
	case EventChanged:
		return "changed"
	case EventScroll:
		return "scroll"
	default:
		return fmt.Sprintf("event(%d)", int(c))
	}
}

// Event is the payload of a Command message. Menu events have no Control,
// only an ID.
type Event struct {
	Code    EventCode
	Control Control
	ID      int
}

// Hook sees every message sent to the window it is installed on. Hooks that
// do not handle a message return handled false so the next one sees it.
type Hook func(msg MessageID, payload any) (result any, handled bool, err error)

// Control is a child of a window.
type Control interface {
	Handle() Handle
	ID() int
}

// TextControl is a control showing text: labels, edits, buttons, windows.
type TextControl interface {
	Control
	Text() string
	SetText(text string)
}

// VisibilityControl can be shown and hidden.
type VisibilityControl interface {
	Control
	Visible() bool
	SetVisible(visible bool)
}

// CheckState is the state of a check box.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

func (s CheckState) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	default:
		return "indeterminate"
	}
}

// CheckControl is a check box.
type CheckControl interface {
	Control
	CheckState() CheckState
	SetCheckState(state CheckState)
}

// RangeControl is a slider or other control with a position in a range.
type RangeControl interface {
	Control
	Pos() int
	SetPos(pos int)
	SetMin(min int)
	SetMax(max int)
}

// Window is a top level window, a dialog, or a child window hosting a
// nested view.
type Window interface {
	TextControl
	// Lookup returns the child control with the given id, or an error
	// wrapping ErrNoControl.
	Lookup(id int) (Control, error)
	// Send delivers msg to the installed hooks, newest first, and returns
	// the result of the first one that handles it.
	Send(msg MessageID, payload any) (any, error)
	// Subclass installs h ahead of the hooks already installed.
	Subclass(h Hook)
}
