package glue

import (
	"fmt"

	"github.com/delaneyj/uiglue/win"
)

// Property is anything that can be exposed as a bindable view model member.
// Observable and Computed both are.
type Property interface {
	Untyped() Untyped
}

// CommandFunc handles a named view model command. view is the window the
// command was raised in.
type CommandFunc func(view win.Handle) error

// ViewModelRef runs commands and resolves properties of a view model by name.
type ViewModelRef interface {
	RunCommand(name string, view win.Handle) error
	Observable(name string) (Untyped, error)
}

// ViewModel is implemented by values that expose a member map. A ViewModel
// held in an observable can be bound as a nested view model.
type ViewModel interface {
	Members() *Members
}

type member struct {
	name     string
	command  CommandFunc
	property Property
}

// Members is the name to member map of a view model, built when the view
// model is constructed:
//
//	vm.members = glue.NewMembers().
//		Property("name", vm.Name).
//		Command("sayHello", vm.sayHello)
type Members struct {
	entries []member
}

func NewMembers() *Members {
	return &Members{}
}

// Property registers p under name, replacing any member with that name.
func (m *Members) Property(name string, p Property) *Members {
	m.put(member{name: name, property: p})
	return m
}

// Command registers fn under name, replacing any member with that name.
func (m *Members) Command(name string, fn CommandFunc) *Members {
	m.put(member{name: name, command: fn})
	return m
}

func (m *Members) put(mem member) {
	for i := range m.entries {
		if m.entries[i].name == mem.name {
			m.entries[i] = mem
			return
		}
	}
	m.entries = append(m.entries, mem)
}

func (m *Members) lookup(name string) (member, error) {
	for _, mem := range m.entries {
		if mem.name == name {
			return mem, nil
		}
	}
	return member{}, fmt.Errorf("%q: %w", name, ErrMemberNotFound)
}

// Names lists the registered members in registration order.
func (m *Members) Names() []string {
	names := make([]string, len(m.entries))
	for i, mem := range m.entries {
		names[i] = mem.name
	}
	return names
}

// RunCommand runs the command registered under name.
func (m *Members) RunCommand(name string, view win.Handle) error {
	mem, err := m.lookup(name)
	if err != nil {
		return err
	}
	if mem.command == nil {
		return fmt.Errorf("%q: %w", name, ErrNotCommand)
	}
	return mem.command(view)
}

// Observable returns the property registered under name.
func (m *Members) Observable(name string) (Untyped, error) {
	mem, err := m.lookup(name)
	if err != nil {
		return Untyped{}, err
	}
	if mem.property == nil {
		return Untyped{}, fmt.Errorf("%q: %w", name, ErrNotProperty)
	}
	return mem.property.Untyped(), nil
}
