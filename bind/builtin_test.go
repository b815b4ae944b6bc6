package bind_test

import (
	"testing"

	"github.com/delaneyj/uiglue/bind"
	"github.com/delaneyj/uiglue/glue"
	"github.com/delaneyj/uiglue/win"
	"github.com/delaneyj/uiglue/win/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	w := headless.NewWindow("untitled")
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		View("title", "bind: name").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	assert.Equal(t, "Ada", w.Text())
	vm.Name.SetValue("Grace")
	assert.Equal(t, "Grace", w.Text())
}

func TestValueEditTwoWay(t *testing.T) {
	w := headless.NewWindow("edit")
	edit := w.AddEdit(idEdit)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idEdit, "value", "bind: name").
		Install()

	vm := newFormViewModel()
	var seen []string
	vm.Name.Subscribe(func(s string) {
		seen = append(seen, s)
	})
	require.NoError(t, bind.ApplyBindings(w, vm))
	assert.Equal(t, "Ada", edit.Text())

	require.NoError(t, edit.Type("Bob"))
	assert.Equal(t, "Bob", vm.Name.Value())
	assert.Equal(t, "Bob", edit.Text())

	vm.Name.SetValue("Cy")
	assert.Equal(t, "Cy", edit.Text())
	assert.Equal(t, []string{"Bob", "Cy"}, seen)
}

func TestValueSliderTwoWay(t *testing.T) {
	w := headless.NewWindow("slider")
	slider := w.AddSlider(idSlider, 0, 10)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idSlider, "min", 0).
		Control(idSlider, "max", 100).
		Control(idSlider, "value", "bind: level").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	min, max := slider.Range()
	assert.Equal(t, 0, min)
	assert.Equal(t, 100, max)
	assert.Equal(t, 42, slider.Pos())

	require.NoError(t, slider.Drag(60))
	assert.Equal(t, 60, vm.Level.Value())

	vm.Level.SetValue(7)
	assert.Equal(t, 7, slider.Pos())
}

func TestRangeFromObservable(t *testing.T) {
	w := headless.NewWindow("range")
	slider := w.AddSlider(idSlider, 0, 10)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idSlider, "max", "bind: level").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	_, max := slider.Range()
	assert.Equal(t, 42, max)

	vm.Level.SetValue(50)
	_, max = slider.Range()
	assert.Equal(t, 50, max)
}

func TestVisibleAndHidden(t *testing.T) {
	w := headless.NewWindow("visibility")
	shown := w.AddStatic(idLabel)
	hidden := w.AddEdit(idEdit)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idLabel, "visible", "bind: shout").
		Control(idEdit, "hidden", "bind: shout").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	assert.False(t, shown.Visible())
	assert.True(t, hidden.Visible())

	vm.Shout.SetValue(true)
	assert.True(t, shown.Visible())
	assert.False(t, hidden.Visible())
}

func TestCheckedBool(t *testing.T) {
	w := headless.NewWindow("checked")
	check := w.AddCheckbox(idCheck, false)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idCheck, "checked", "bind: shout").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	assert.Equal(t, win.Unchecked, check.CheckState())

	require.NoError(t, check.Click())
	assert.True(t, vm.Shout.Value())

	vm.Shout.SetValue(false)
	assert.Equal(t, win.Unchecked, check.CheckState())
}

func TestCheckedTriState(t *testing.T) {
	w := headless.NewWindow("tristate")
	check := w.AddCheckbox(idCheck, true)
	state := glue.New(2)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idCheck, "checked", state).
		Install()

	require.NoError(t, bind.ApplyBindingsRef(w, glue.NewMembers()))
	assert.Equal(t, win.Indeterminate, check.CheckState())

	require.NoError(t, check.Click())
	assert.Equal(t, 0, state.Value())
	require.NoError(t, check.Click())
	assert.Equal(t, 1, state.Value())
	require.NoError(t, check.Click())
	assert.Equal(t, int(win.Indeterminate), state.Value())

	state.SetValue(1)
	assert.Equal(t, win.Checked, check.CheckState())
}

func TestClickRunsCommand(t *testing.T) {
	w := headless.NewWindow("click")
	button := w.AddButton(idButton)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idButton, "text", "Run").
		Control(idButton, "click", "bind: action").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	assert.Equal(t, "Run", button.Text())

	require.NoError(t, button.Click())
	assert.Equal(t, []string{"run"}, vm.ran)
	assert.Equal(t, []win.Handle{w.Handle()}, vm.views)

	vm.Action.SetValue("other")
	require.NoError(t, button.Click())
	assert.Equal(t, []string{"run", "other"}, vm.ran)

	vm.Action.SetValue("fail")
	assert.ErrorIs(t, button.Click(), errCommand)

	vm.Action.SetValue("missing")
	assert.ErrorIs(t, button.Click(), glue.ErrMemberNotFound)
}

func TestClickLiteralCommand(t *testing.T) {
	w := headless.NewWindow("literal")
	button := w.AddButton(idButton)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idButton, "click", "run").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	require.NoError(t, button.Click())
	assert.Equal(t, []string{"run"}, vm.ran)
}

func TestClickBindingsShareControl(t *testing.T) {
	w := headless.NewWindow("shared")
	button := w.AddButton(idButton)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idButton, "click", "bind: action").
		Control(idButton, "click", "other").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	require.NoError(t, button.Click())
	assert.Equal(t, []string{"run", "other"}, vm.ran)

	vm.Action.SetValue("other")
	require.NoError(t, button.Click())
	assert.Equal(t, []string{"run", "other", "other", "other"}, vm.ran)
}

func TestClickNeedsString(t *testing.T) {
	w := headless.NewWindow("typed")
	w.AddButton(idButton)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idButton, "click", glue.New(3).Untyped()).
		Install()

	err := bind.ApplyBindings(w, newFormViewModel())
	assert.ErrorIs(t, err, glue.ErrTypeMismatch)
}

type childViewModel struct {
	Label   *glue.Observable[string]
	members *glue.Members
}

func newChildViewModel(label string) *childViewModel {
	vm := &childViewModel{Label: glue.New(label)}
	vm.members = glue.NewMembers().Property("label", vm.Label)
	return vm
}

func (vm *childViewModel) Members() *glue.Members {
	return vm.members
}

type parentViewModel struct {
	Child   *glue.Observable[*childViewModel]
	members *glue.Members
}

func (vm *parentViewModel) Members() *glue.Members {
	return vm.members
}

func TestWithNestedViewModel(t *testing.T) {
	w := headless.NewWindow("parent")
	child := w.AddWindow(idChild)
	label := child.AddStatic(idLabel)

	bind.Declare(child, bind.DefaultHandlers(), quiet()).
		Control(idLabel, "text", "bind: label").
		Install()
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idChild, "with", "bind: child").
		Install()

	first := newChildViewModel("first")
	parent := &parentViewModel{Child: glue.New(first)}
	parent.members = glue.NewMembers().Property("child", parent.Child)

	require.NoError(t, bind.ApplyBindings(w, parent))
	assert.Equal(t, "first", label.Text())
	first.Label.SetValue("first again")
	assert.Equal(t, "first again", label.Text())

	second := newChildViewModel("second")
	parent.Child.SetValue(second)
	assert.Equal(t, "second", label.Text())
	assert.Equal(t, 0, first.Label.Subscribers())
}

func TestWithNeedsViewModel(t *testing.T) {
	w := headless.NewWindow("parent")
	child := w.AddWindow(idChild)
	bind.Declare(child, bind.DefaultHandlers(), quiet()).Install()
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idChild, "with", "bind: name").
		Install()

	err := bind.ApplyBindings(w, newFormViewModel())
	assert.ErrorIs(t, err, glue.ErrTypeMismatch)
}

func TestWithNeedsChildWindow(t *testing.T) {
	w := headless.NewWindow("parent")
	w.AddStatic(idLabel)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idLabel, "with", "bind: name").
		Install()

	err := bind.ApplyBindings(w, newFormViewModel())
	assert.ErrorIs(t, err, bind.ErrCapability)
}
