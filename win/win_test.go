package win_test

import (
	"testing"

	"github.com/delaneyj/uiglue/win"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMessage(t *testing.T) {
	a := win.RegisterMessage("test.A")
	assert.Equal(t, a, win.RegisterMessage("test.A"))
	assert.NotEqual(t, a, win.RegisterMessage("test.B"))
	assert.NotEqual(t, win.Command, win.Destroy)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "clicked", win.EventClicked.String())
	assert.Equal(t, "event(42)", win.EventCode(42).String())
	assert.Equal(t, "indeterminate", win.Indeterminate.String())
	assert.ErrorIs(t, win.NoControlError(3), win.ErrNoControl)
}
