package main

import (
	"fmt"
	"io"

	"github.com/delaneyj/uiglue/bind"
	"github.com/delaneyj/uiglue/examples/hello"
	"github.com/delaneyj/uiglue/win"
	"github.com/delaneyj/uiglue/win/headless"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

// shell records message boxes instead of showing them.
type shell struct {
	windows map[win.Handle]*headless.Window
	tbl     table.Writer
}

func newShell(out io.Writer) *shell {
	tbl := table.NewWriter()
	tbl.SetTitle("Message boxes")
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"view", "caption", "text"})
	return &shell{windows: map[win.Handle]*headless.Window{}, tbl: tbl}
}

func (s *shell) MessageBox(view win.Handle, text, caption string) error {
	s.tbl.AppendRow(table.Row{fmt.Sprintf("%#x", uintptr(view)), caption, text})
	return nil
}

func (s *shell) Close(view win.Handle) error {
	w, ok := s.windows[view]
	if !ok {
		return fmt.Errorf("close %#x: %w", uintptr(view), win.ErrNoControl)
	}
	return w.Destroy()
}

func runHello(out io.Writer, cmd *cli.Command) error {
	w := hello.NewMainView(bindOptions(cmd)...)
	sh := newShell(out)
	sh.windows[w.Handle()] = w

	vm, err := hello.NewViewModel(sh)
	if err != nil {
		return err
	}
	if err := bind.ApplyBindings(w, vm); err != nil {
		return err
	}

	edit, err := lookup[*headless.Edit](w, hello.NameEdit)
	if err != nil {
		return err
	}
	if err := edit.Type(cmd.String(nameKey)); err != nil {
		return err
	}
	if cmd.Bool(shoutKey) {
		check, err := lookup[*headless.Checkbox](w, hello.ShoutCheckbox)
		if err != nil {
			return err
		}
		if err := check.Click(); err != nil {
			return err
		}
	}
	if cmd.Bool(modalKey) {
		button, err := lookup[*headless.Button](w, hello.ModalButton)
		if err != nil {
			return err
		}
		if err := button.Click(); err != nil {
			return err
		}
	}

	headless.WriteSnapshot(out, w)
	if sh.tbl.Length() > 0 {
		sh.tbl.Render()
	}
	return w.Destroy()
}

func lookup[T win.Control](w win.Window, id int) (T, error) {
	var zero T
	ctrl, err := w.Lookup(id)
	if err != nil {
		return zero, err
	}
	c, ok := ctrl.(T)
	if !ok {
		return zero, fmt.Errorf("control %d is a %T, not a %T", id, ctrl, zero)
	}
	return c, nil
}
