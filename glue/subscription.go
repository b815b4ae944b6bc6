package glue

import "sync/atomic"

// SubscriptionID identifies one subscriber of one observable. Ids are unique
// across the process.
type SubscriptionID int64

var lastSubscriptionID atomic.Int64

func nextSubscriptionID() SubscriptionID {
	return SubscriptionID(lastSubscriptionID.Add(1))
}

// subscriber is either a typed or an untyped callback, never both.
type subscriber[T comparable] struct {
	id      SubscriptionID
	typed   func(T)
	untyped func(Untyped)
}

// subscribers keeps callbacks in insertion order so notification is FIFO.
type subscribers[T comparable] struct {
	entries []subscriber[T]
}

func (s *subscribers[T]) add(sub subscriber[T]) SubscriptionID {
	sub.id = nextSubscriptionID()
	s.entries = append(s.entries, sub)
	return sub.id
}

func (s *subscribers[T]) remove(id SubscriptionID) {
	for i, sub := range s.entries {
		if sub.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// snapshot copies the table so callbacks can subscribe and unsubscribe while a
// notification pass is running.
func (s *subscribers[T]) snapshot() []subscriber[T] {
	if len(s.entries) == 0 {
		return nil
	}
	snap := make([]subscriber[T], len(s.entries))
	copy(snap, s.entries)
	return snap
}

func (s *subscribers[T]) len() int {
	return len(s.entries)
}
