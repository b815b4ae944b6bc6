package headless

import (
	"fmt"
	"sync/atomic"

	"github.com/delaneyj/uiglue/win"
)

var lastHandle atomic.Uintptr

func nextHandle() win.Handle {
	return win.Handle(lastHandle.Add(1))
}

type base struct {
	id      int
	handle  win.Handle
	text    string
	visible bool
	parent  *Window
}

func newBase(parent *Window, id int) base {
	return base{id: id, handle: nextHandle(), visible: true, parent: parent}
}

func (b *base) Handle() win.Handle      { return b.handle }
func (b *base) ID() int                 { return b.id }
func (b *base) Text() string            { return b.text }
func (b *base) SetText(text string)     { b.text = text }
func (b *base) Visible() bool           { return b.visible }
func (b *base) SetVisible(visible bool) { b.visible = visible }

// raise delivers ev to the parent window the way a native control notifies
// its parent.
func (b *base) raise(code win.EventCode, ctrl win.Control) error {
	if b.parent == nil {
		return nil
	}
	_, err := b.parent.Send(win.Command, win.Event{Code: code, Control: ctrl, ID: b.id})
	return err
}

// Static is a read only label.
type Static struct {
	base
}

func (s *Static) describe() line {
	return line{Kind: "static", ID: s.id, Text: s.text, Visible: s.visible}
}

// Edit is a single line text box.
type Edit struct {
	base
}

// Type replaces the text as if the user typed it and notifies the parent.
func (e *Edit) Type(text string) error {
	if e.text == text {
		return nil
	}
	e.text = text
	return e.raise(win.EventChanged, e)
}

func (e *Edit) describe() line {
	return line{Kind: "edit", ID: e.id, Text: e.text, Visible: e.visible}
}

// Button is a push button.
type Button struct {
	base
}

// Click presses the button.
func (b *Button) Click() error {
	return b.raise(win.EventClicked, b)
}

func (b *Button) describe() line {
	return line{Kind: "button", ID: b.id, Text: b.text, Visible: b.visible}
}

// Checkbox is a two or three state check box.
type Checkbox struct {
	base
	state    win.CheckState
	triState bool
}

func (c *Checkbox) CheckState() win.CheckState         { return c.state }
func (c *Checkbox) SetCheckState(state win.CheckState) { c.state = state }

// Click advances the state the way an auto check box does and notifies the
// parent.
func (c *Checkbox) Click() error {
	switch {
	case c.state == win.Unchecked:
		c.state = win.Checked
	case c.state == win.Checked && c.triState:
		c.state = win.Indeterminate
	default:
		c.state = win.Unchecked
	}
	return c.raise(win.EventClicked, c)
}

func (c *Checkbox) describe() line {
	return line{Kind: "checkbox", ID: c.id, Text: c.text, Visible: c.visible, Detail: c.state.String()}
}

// Slider is a track bar.
type Slider struct {
	base
	min, max, pos int
}

func (s *Slider) Pos() int { return s.pos }

func (s *Slider) SetPos(pos int) {
	s.pos = s.clamp(pos)
}

func (s *Slider) SetMin(min int) {
	s.min = min
	s.pos = s.clamp(s.pos)
}

func (s *Slider) SetMax(max int) {
	s.max = max
	s.pos = s.clamp(s.pos)
}

// Range returns the bounds of the slider.
func (s *Slider) Range() (min, max int) {
	return s.min, s.max
}

func (s *Slider) clamp(pos int) int {
	if pos < s.min {
		return s.min
	}
	if s.max > s.min && pos > s.max {
		return s.max
	}
	return pos
}

// Drag moves the thumb as the user would and notifies the parent.
func (s *Slider) Drag(pos int) error {
	pos = s.clamp(pos)
	if pos == s.pos {
		return nil
	}
	s.pos = pos
	return s.raise(win.EventScroll, s)
}

func (s *Slider) describe() line {
	return line{
		Kind:    "slider",
		ID:      s.id,
		Visible: s.visible,
		Detail:  fmt.Sprintf("%d [%d..%d]", s.pos, s.min, s.max),
	}
}

var (
	_ win.TextControl       = (*Static)(nil)
	_ win.TextControl       = (*Edit)(nil)
	_ win.TextControl       = (*Button)(nil)
	_ win.CheckControl      = (*Checkbox)(nil)
	_ win.VisibilityControl = (*Checkbox)(nil)
	_ win.RangeControl      = (*Slider)(nil)
	_ win.VisibilityControl = (*Slider)(nil)
)
