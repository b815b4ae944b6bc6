package main

import (
	"io"

	"github.com/delaneyj/uiglue/bind"
	"github.com/delaneyj/uiglue/examples/dialog"
	"github.com/delaneyj/uiglue/win/headless"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func runDialog(out io.Writer, cmd *cli.Command) error {
	w := dialog.NewMainView(bindOptions(cmd)...)
	vm, err := dialog.NewMainViewModel()
	if err != nil {
		return err
	}
	if err := bind.ApplyBindings(w, vm); err != nil {
		return err
	}

	sub, err := lookup[*headless.Window](w, dialog.IDSubDialog)
	if err != nil {
		return err
	}
	red, err := lookup[*headless.Slider](sub, dialog.IDRedSlider)
	if err != nil {
		return err
	}
	if err := red.Drag(int(cmd.Int(redKey))); err != nil {
		return err
	}

	headless.WriteSnapshot(out, w)

	slider := vm.Slider.Value()
	tbl := table.NewWriter()
	tbl.SetTitle("Shares")
	tbl.SetOutputMirror(out)
	tbl.AppendHeader(table.Row{"channel", "per 10k", "share"})
	for _, ch := range []struct {
		name  string
		value int
	}{
		{"red", slider.RedPer10k.Value()},
		{"green", slider.GreenPer10k.Value()},
		{"blue", slider.BluePer10k.Value()},
	} {
		tbl.AppendRow(table.Row{ch.name, ch.value, dialog.FormatPercentage(ch.value)})
	}
	tbl.AppendFooter(table.Row{"total", slider.RedPer10k.Value() + slider.GreenPer10k.Value() + slider.BluePer10k.Value()})
	tbl.Render()
	return w.Destroy()
}
