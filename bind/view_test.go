package bind_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/delaneyj/uiglue/bind"
	"github.com/delaneyj/uiglue/glue"
	"github.com/delaneyj/uiglue/win"
	"github.com/delaneyj/uiglue/win/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idLabel = iota + 1
	idEdit
	idCheck
	idSlider
	idButton
	idChild
	idMissing = 99
	idMenuRun = 100
)

var errCommand = errors.New("command failed")

type formViewModel struct {
	Name    *glue.Observable[string]
	Shout   *glue.Observable[bool]
	Level   *glue.Observable[int]
	Action  *glue.Observable[string]
	ran     []string
	views   []win.Handle
	members *glue.Members
}

func newFormViewModel() *formViewModel {
	vm := &formViewModel{
		Name:   glue.New("Ada"),
		Shout:  glue.New(false),
		Level:  glue.New(42),
		Action: glue.New("run"),
	}
	vm.members = glue.NewMembers().
		Property("name", vm.Name).
		Property("shout", vm.Shout).
		Property("level", vm.Level).
		Property("action", vm.Action).
		Command("run", vm.command("run")).
		Command("other", vm.command("other")).
		Command("fail", func(win.Handle) error { return errCommand })
	return vm
}

func (vm *formViewModel) command(name string) glue.CommandFunc {
	return func(view win.Handle) error {
		vm.ran = append(vm.ran, name)
		vm.views = append(vm.views, view)
		return nil
	}
}

func (vm *formViewModel) Members() *glue.Members {
	return vm.members
}

func quiet() bind.Option {
	return bind.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestApplyBindingsLiteralAndBound(t *testing.T) {
	w := headless.NewWindow("form")
	label := w.AddStatic(idLabel)
	edit := w.AddEdit(idEdit)
	v := bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idLabel, "text", "Name:").
		Control(idEdit, "text", "bind: name").
		Install()
	assert.Equal(t, 2, v.Declarations())
	assert.Nil(t, v.ViewModel())

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	assert.NotNil(t, v.ViewModel())
	assert.Equal(t, "Name:", label.Text())
	assert.Equal(t, "Ada", edit.Text())
	assert.Equal(t, 2, v.Bindings())

	vm.Name.SetValue("Grace")
	assert.Equal(t, "Grace", edit.Text())
	assert.NoError(t, v.Err())
}

func TestDeclaredObservablesAndScalars(t *testing.T) {
	w := headless.NewWindow("direct")
	label := w.AddStatic(idLabel)
	check := w.AddCheckbox(idCheck, true)
	slider := w.AddSlider(idSlider, 0, 10)
	direct := glue.New("direct")
	upper, err := glue.NewComputed(glue.NoError(func() bool {
		return direct.Value() == "DIRECT"
	}))
	require.NoError(t, err)

	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idLabel, "text", direct).
		Control(idCheck, "checked", upper).
		Control(idCheck, "visible", true).
		Control(idSlider, "max", 1000).
		Control(idSlider, "value", 500).
		Install()
	require.NoError(t, bind.ApplyBindingsRef(w, glue.NewMembers()))

	assert.Equal(t, "direct", label.Text())
	assert.Equal(t, win.Unchecked, check.CheckState())
	assert.Equal(t, 500, slider.Pos())

	direct.SetValue("DIRECT")
	assert.Equal(t, "DIRECT", label.Text())
	assert.Equal(t, win.Checked, check.CheckState())
}

func TestUnknownHandlerIsSkipped(t *testing.T) {
	w := headless.NewWindow("skip")
	label := w.AddStatic(idLabel)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := bind.Declare(w, bind.DefaultHandlers(), bind.WithLogger(logger)).
		Control(idMissing, "bogus", "bind: nothing").
		Control(idLabel, "text", "shown").
		Install()

	require.NoError(t, bind.ApplyBindings(w, newFormViewModel()))
	assert.Equal(t, "shown", label.Text())
	assert.Equal(t, 1, v.Bindings())
	assert.Contains(t, logs.String(), "handler=bogus")
}

func TestMissingControl(t *testing.T) {
	w := headless.NewWindow("missing")
	v := bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idMissing, "text", "bind: name").
		Install()

	vm := newFormViewModel()
	err := bind.ApplyBindings(w, vm)
	require.Error(t, err)
	assert.ErrorIs(t, err, win.ErrNoControl)

	var bindErr *bind.BindingError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, idMissing, bindErr.Target)
	assert.Equal(t, "text", bindErr.Handler)
	assert.Nil(t, v.ViewModel())
	assert.Equal(t, 0, vm.Name.Subscribers())
}

func TestFailedApplyReleasesEarlierBindings(t *testing.T) {
	w := headless.NewWindow("partial")
	w.AddEdit(idEdit)
	v := bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idEdit, "value", "bind: name").
		Control(idEdit, "text", "bind: missing").
		Install()

	vm := newFormViewModel()
	err := bind.ApplyBindings(w, vm)
	assert.ErrorIs(t, err, glue.ErrMemberNotFound)
	assert.Equal(t, 0, v.Bindings())
	assert.Equal(t, 0, vm.Name.Subscribers())
}

func TestBindingValueErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler string
		value   any
		target  error
	}{
		{"resource", "text", "resource: IDS_TITLE", bind.ErrUnsupportedValue},
		{"file", "text", "file: title.txt", bind.ErrUnsupportedValue},
		{"struct", "text", struct{}{}, bind.ErrUnsupportedValue},
		{"empty observable", "text", glue.Untyped{}, bind.ErrUnsupportedValue},
		{"not a property", "text", "bind: run", glue.ErrNotProperty},
		{"wrong type", "text", "bind: level", glue.ErrTypeMismatch},
		{"wrong control", "checked", "bind: shout", bind.ErrCapability},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := headless.NewWindow(tt.name)
			w.AddStatic(idLabel)
			bind.Declare(w, bind.DefaultHandlers(), quiet()).
				Control(idLabel, tt.handler, tt.value).
				Install()
			err := bind.ApplyBindings(w, newFormViewModel())
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestBindingErrorMessage(t *testing.T) {
	err := &bind.BindingError{Target: 3, Handler: "text", Err: glue.ErrNotProperty}
	assert.Equal(t, `binding "text" on control 3: view model member is not a property`, err.Error())
	err.Target = bind.ThisView
	assert.Contains(t, err.Error(), "on view")
}

func TestNotInstalled(t *testing.T) {
	w := headless.NewWindow("bare")
	err := bind.ApplyBindings(w, newFormViewModel())
	assert.ErrorIs(t, err, bind.ErrNotInstalled)
	assert.ErrorIs(t, bind.DetachViewModel(w), bind.ErrNotInstalled)
}

func TestDetachViewModel(t *testing.T) {
	w := headless.NewWindow("detach")
	edit := w.AddEdit(idEdit)
	button := w.AddButton(idButton)
	v := bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idEdit, "value", "bind: name").
		Control(idButton, "click", "bind: action").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	require.NoError(t, bind.DetachViewModel(w))
	assert.Nil(t, v.ViewModel())
	assert.Equal(t, 0, v.Bindings())
	assert.Equal(t, 0, vm.Name.Subscribers())

	vm.Name.SetValue("ignored")
	assert.Equal(t, "Ada", edit.Text())
	require.NoError(t, edit.Type("typed"))
	assert.Equal(t, "ignored", vm.Name.Value())
	require.NoError(t, button.Click())
	assert.Empty(t, vm.ran)
}

func TestReattachReplacesViewModel(t *testing.T) {
	w := headless.NewWindow("reattach")
	edit := w.AddEdit(idEdit)
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idEdit, "value", "bind: name").
		Install()

	first, second := newFormViewModel(), newFormViewModel()
	second.Name.SetValue("Second")
	require.NoError(t, bind.ApplyBindings(w, first))
	require.NoError(t, bind.ApplyBindings(w, second))
	assert.Equal(t, 0, first.Name.Subscribers())
	assert.Equal(t, "Second", edit.Text())

	require.NoError(t, edit.Type("typed"))
	assert.Equal(t, "typed", second.Name.Value())
	assert.Equal(t, "Ada", first.Name.Value())
}

func TestUpdateErrorIsRecorded(t *testing.T) {
	errRejected := errors.New("rejected")
	strict := bind.HandlerFuncs{
		HandlerName: "strict",
		UpdateFunc: func(ctrl win.Control, u glue.Untyped, _ *bind.View) error {
			s, err := glue.ValueOf[string](u)
			if err != nil {
				return err
			}
			if s == "" {
				return errRejected
			}
			ctrl.(win.TextControl).SetText(s)
			return nil
		},
	}

	w := headless.NewWindow("strict")
	label := w.AddStatic(idLabel)
	var logs bytes.Buffer
	v := bind.Declare(w, bind.DefaultHandlers().Clone().Add(strict),
		bind.WithLogger(slog.New(slog.NewTextHandler(&logs, nil)))).
		Control(idLabel, "strict", "bind: name").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	require.NoError(t, v.Err())

	vm.Name.SetValue("")
	assert.ErrorIs(t, v.Err(), errRejected)
	var bindErr *bind.BindingError
	require.ErrorAs(t, v.Err(), &bindErr)
	assert.Equal(t, "strict", bindErr.Handler)
	assert.Equal(t, "Ada", label.Text())
	assert.Contains(t, logs.String(), "binding update failed")
}

func TestMenuCommands(t *testing.T) {
	w := headless.NewWindow("menu")
	bind.Declare(w, bind.DefaultHandlers(), quiet()).
		MenuCommand(idMenuRun, "run").
		MenuCommand(idMenuRun+1, "fail").
		Install()

	require.NoError(t, w.Menu(idMenuRun))

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	require.NoError(t, w.Menu(idMenuRun))
	require.NoError(t, w.Menu(idMenuRun+2))
	assert.Equal(t, []string{"run"}, vm.ran)
	assert.Equal(t, []win.Handle{w.Handle()}, vm.views)

	assert.ErrorIs(t, w.Menu(idMenuRun+1), errCommand)
}

func TestRunCommandWithoutViewModel(t *testing.T) {
	w := headless.NewWindow("idle")
	v := bind.Declare(w, bind.DefaultHandlers(), quiet()).Install()
	assert.ErrorIs(t, v.RunCommand("run"), bind.ErrNoViewModel)
	assert.Same(t, w, v.Window())
}

func TestDestroyReleasesViewModel(t *testing.T) {
	w := headless.NewWindow("destroy")
	w.AddEdit(idEdit)
	v := bind.Declare(w, bind.DefaultHandlers(), quiet()).
		Control(idEdit, "value", "bind: name").
		Install()

	vm := newFormViewModel()
	require.NoError(t, bind.ApplyBindings(w, vm))
	require.Equal(t, 1, vm.Name.Subscribers())

	require.NoError(t, w.Destroy())
	assert.Equal(t, 0, vm.Name.Subscribers())
	assert.Nil(t, v.ViewModel())
}

func TestApplyBindingsRejectsBadPayload(t *testing.T) {
	w := headless.NewWindow("payload")
	bind.Declare(w, bind.DefaultHandlers(), quiet()).Install()
	_, err := w.Send(bind.ApplyBindingsMessage, "not a view model")
	assert.ErrorIs(t, err, glue.ErrTypeMismatch)
}
