package bind

import (
	"fmt"
	"strings"

	"github.com/delaneyj/uiglue/glue"
)

// ValueKind classifies a string binding value by its prefix.
type ValueKind int

const (
	Literal ValueKind = iota
	Bind
	Resource
	File
)

func (k ValueKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Bind:
		return "bind"
	case Resource:
		return "resource"
	case File:
		return "file"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

var prefixes = []struct {
	kind   ValueKind
	prefix string
}{
	{Bind, "bind:"},
	{Resource, "resource:"},
	{File, "file:"},
	{Literal, "literal:"},
}

// Classify splits a declared value into its kind and payload. Prefixed
// payloads are trimmed; anything without a known prefix is a literal and is
// returned untouched.
//
//	Classify("bind: name")      // Bind, "name"
//	Classify("literal: bind:")  // Literal, "bind:"
//	Classify("Name:")           // Literal, "Name:"
func Classify(s string) (ValueKind, string) {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p.prefix) {
			return p.kind, strings.TrimSpace(s[len(p.prefix):])
		}
	}
	return Literal, s
}

// resolve turns a declared value into the observable a handler binds to.
func resolve(value any, vm glue.ViewModelRef) (glue.Untyped, error) {
	switch v := value.(type) {
	case glue.Untyped:
		if !v.Valid() {
			return glue.Untyped{}, fmt.Errorf("empty observable: %w", ErrUnsupportedValue)
		}
		return v, nil
	case glue.Property:
		return v.Untyped(), nil
	case string:
		kind, payload := Classify(v)
		switch kind {
		case Literal:
			return glue.New(payload).Untyped(), nil
		case Bind:
			if vm == nil {
				return glue.Untyped{}, ErrNoViewModel
			}
			return vm.Observable(payload)
		default:
			return glue.Untyped{}, fmt.Errorf("%s value %q: %w", kind, payload, ErrUnsupportedValue)
		}
	case int:
		return glue.New(v).Untyped(), nil
	case bool:
		return glue.New(v).Untyped(), nil
	case float64:
		return glue.New(v).Untyped(), nil
	default:
		return glue.Untyped{}, fmt.Errorf("value of type %T: %w", value, ErrUnsupportedValue)
	}
}
