package headless

import "strings"

//go:generate qtc -file=snapshot.qtpl

// line is one control in a snapshot.
type line struct {
	Depth   int
	Kind    string
	ID      int
	Text    string
	Visible bool
	Detail  string
}

func (l line) Indent() string {
	return strings.Repeat("  ", l.Depth)
}

func (w *Window) lines() []line {
	var out []line
	w.collect(&out, 0)
	return out
}

func (w *Window) collect(out *[]line, depth int) {
	l := w.describe()
	l.Depth = depth
	*out = append(*out, l)
	for _, ctrl := range w.controls {
		if child, ok := ctrl.(*Window); ok {
			child.collect(out, depth+1)
			continue
		}
		l := ctrl.describe()
		l.Depth = depth + 1
		*out = append(*out, l)
	}
}
