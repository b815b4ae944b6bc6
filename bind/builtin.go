package bind

import (
	"github.com/delaneyj/uiglue/glue"
	"github.com/delaneyj/uiglue/win"
)

// DefaultHandlers returns a cache holding the builtin handlers: text, title,
// value, visible, hidden, checked, click, min, max and with.
func DefaultHandlers() *HandlerCache {
	return NewHandlerCache().Add(
		Text,
		Title,
		Value,
		Visible,
		Hidden,
		Checked,
		Click,
		Min,
		Max,
		With,
	)
}

var (
	// Text shows a string observable as the text of a control.
	Text = HandlerFuncs{
		HandlerName: "text",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			return setText("text", ctrl, u, false)
		},
	}

	// Title shows a string observable as the caption of a window; bind it
	// with Decl.View.
	Title = HandlerFuncs{
		HandlerName: "title",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			return setText("title", ctrl, u, false)
		},
	}

	// Value binds two ways: a string to the text of an edit, an int to the
	// position of a slider.
	Value = HandlerFuncs{
		HandlerName: "value",
		InitFunc:    initValue,
		UpdateFunc:  updateValue,
	}

	// Visible shows the control while a bool observable is true.
	Visible = HandlerFuncs{
		HandlerName: "visible",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			return setVisible("visible", ctrl, u, true)
		},
	}

	// Hidden hides the control while a bool observable is true.
	Hidden = HandlerFuncs{
		HandlerName: "hidden",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			return setVisible("hidden", ctrl, u, false)
		},
	}

	// Checked binds a check box two ways to a bool, or to an int holding 0
	// for unchecked, 1 for checked and anything else for indeterminate.
	Checked = HandlerFuncs{
		HandlerName: "checked",
		InitFunc:    initChecked,
		UpdateFunc:  updateChecked,
	}

	// Click runs the view model command named by a string observable when
	// the control is clicked. The name is read at click time.
	Click = HandlerFuncs{
		HandlerName: "click",
		InitFunc: func(ctrl win.Control, u glue.Untyped, v *View) error {
			if _, err := glue.ValueOf[string](u); err != nil {
				return err
			}
			v.AddCommandFunc(win.EventClicked, ctrl, func() (string, error) {
				return glue.ValueOf[string](u)
			})
			return nil
		},
		UpdateFunc: func(_ win.Control, u glue.Untyped, _ *View) error {
			_, err := glue.ValueOf[string](u)
			return err
		},
	}

	// Min sets the lower bound of a slider from an int observable.
	Min = HandlerFuncs{
		HandlerName: "min",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			rc, n, err := rangeInt("min", ctrl, u)
			if err != nil {
				return err
			}
			rc.SetMin(n)
			return nil
		},
	}

	// Max sets the upper bound of a slider from an int observable.
	Max = HandlerFuncs{
		HandlerName: "max",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			rc, n, err := rangeInt("max", ctrl, u)
			if err != nil {
				return err
			}
			rc.SetMax(n)
			return nil
		},
	}

	// With applies the bindings declared on a child window to the nested
	// view model held by the observable.
	With = HandlerFuncs{
		HandlerName: "with",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *View) error {
			child, ok := ctrl.(win.Window)
			if !ok {
				return capabilityError("with", "child window", ctrl)
			}
			vm, err := u.AsViewModel()
			if err != nil {
				return err
			}
			return ApplyBindingsRef(child, vm)
		},
	}
)

func setText(handler string, ctrl win.Control, u glue.Untyped, checkFirst bool) error {
	tc, ok := ctrl.(win.TextControl)
	if !ok {
		return capabilityError(handler, "text control", ctrl)
	}
	text, err := glue.ValueOf[string](u)
	if err != nil {
		return err
	}
	if checkFirst && tc.Text() == text {
		return nil
	}
	tc.SetText(text)
	return nil
}

func initValue(ctrl win.Control, u glue.Untyped, v *View) error {
	if glue.Is[int](u) {
		if err := updateValue(ctrl, u, v); err != nil {
			return err
		}
		v.AddCommandHandler(win.EventScroll, ctrl, func(c win.Control) error {
			o, err := glue.As[int](u)
			if err != nil {
				return err
			}
			o.SetValue(c.(win.RangeControl).Pos())
			return nil
		})
		return nil
	}

	if err := setText("value", ctrl, u, false); err != nil {
		return err
	}
	v.AddCommandHandler(win.EventChanged, ctrl, func(c win.Control) error {
		o, err := glue.As[string](u)
		if err != nil {
			return err
		}
		o.SetValue(c.(win.TextControl).Text())
		return nil
	})
	return nil
}

func updateValue(ctrl win.Control, u glue.Untyped, _ *View) error {
	if !glue.Is[int](u) {
		return setText("value", ctrl, u, true)
	}
	rc, ok := ctrl.(win.RangeControl)
	if !ok {
		return capabilityError("value", "range control", ctrl)
	}
	pos, err := glue.ValueOf[int](u)
	if err != nil {
		return err
	}
	if rc.Pos() != pos {
		rc.SetPos(pos)
	}
	return nil
}

func setVisible(handler string, ctrl win.Control, u glue.Untyped, showWhen bool) error {
	vc, ok := ctrl.(win.VisibilityControl)
	if !ok {
		return capabilityError(handler, "visibility control", ctrl)
	}
	b, err := glue.ValueOf[bool](u)
	if err != nil {
		return err
	}
	vc.SetVisible(b == showWhen)
	return nil
}

func initChecked(ctrl win.Control, u glue.Untyped, v *View) error {
	if err := updateChecked(ctrl, u, v); err != nil {
		return err
	}
	v.AddCommandHandler(win.EventClicked, ctrl, func(c win.Control) error {
		state := c.(win.CheckControl).CheckState()
		if glue.Is[int](u) {
			o, err := glue.As[int](u)
			if err != nil {
				return err
			}
			o.SetValue(int(state))
			return nil
		}
		o, err := glue.As[bool](u)
		if err != nil {
			return err
		}
		o.SetValue(state == win.Checked)
		return nil
	})
	return nil
}

func updateChecked(ctrl win.Control, u glue.Untyped, _ *View) error {
	cc, ok := ctrl.(win.CheckControl)
	if !ok {
		return capabilityError("checked", "check box", ctrl)
	}
	if glue.Is[int](u) {
		n, err := glue.ValueOf[int](u)
		if err != nil {
			return err
		}
		switch n {
		case 0:
			cc.SetCheckState(win.Unchecked)
		case 1:
			cc.SetCheckState(win.Checked)
		default:
			cc.SetCheckState(win.Indeterminate)
		}
		return nil
	}
	b, err := glue.ValueOf[bool](u)
	if err != nil {
		return err
	}
	if b {
		cc.SetCheckState(win.Checked)
	} else {
		cc.SetCheckState(win.Unchecked)
	}
	return nil
}

func rangeInt(handler string, ctrl win.Control, u glue.Untyped) (win.RangeControl, int, error) {
	rc, ok := ctrl.(win.RangeControl)
	if !ok {
		return nil, 0, capabilityError(handler, "range control", ctrl)
	}
	n, err := glue.ValueOf[int](u)
	if err != nil {
		return nil, 0, err
	}
	return rc, n, nil
}
