package glue

import mapset "github.com/deckarep/golang-set/v2"

// tracker records the sources read while a computation runs.
type tracker struct {
	seen mapset.Set[Source]
	deps []Source
}

// trackers is the stack of active trackers, innermost last. Only the innermost
// tracker records reads, so a Computed evaluated while another one is being
// evaluated records into its own scope and the outer one sees only the inner
// Computed's cache.
//
// Like every other part of this package the stack belongs to the goroutine
// running the UI loop.
var trackers []*tracker

func beginTracking() *tracker {
	t := &tracker{seen: mapset.NewThreadUnsafeSet[Source]()}
	trackers = append(trackers, t)
	return t
}

func endTracking(t *tracker) {
	last := len(trackers) - 1
	if last < 0 || trackers[last] != t {
		panic("glue: dependency tracker stack out of order")
	}
	trackers[last] = nil
	trackers = trackers[:last]
}

// IsTracking reports whether a dependency tracker is active.
func IsTracking() bool {
	return len(trackers) > 0
}

func track(src Source) {
	if len(trackers) == 0 {
		return
	}
	t := trackers[len(trackers)-1]
	if t.seen.Add(src) {
		t.deps = append(t.deps, src)
	}
}

// Untracked runs fn with dependency tracking paused, so reads inside fn do not
// become dependencies of the computation currently being evaluated.
func Untracked(fn func()) {
	saved := trackers
	trackers = nil
	defer func() {
		trackers = saved
	}()
	fn()
}
