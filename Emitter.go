package Go_Collections

import "github.com/alphadose/haxmap"

// Event names a lifecycle notification.
type Event string

const (
	EventInsert Event = "insert"
	EventRemove Event = "remove"
	EventAdd    Event = "add"
	EventEject  Event = "eject"
	EventDrain  Event = "drain"
)

// Listener receives the element affected by an Event.
type Listener[T any] func(T)

// Emitter dispatches events to registered listeners synchronously, in the order
// the listeners were registered. The zero value is ready to use.
// Listeners run after the mutation completed, so they observe the container in
// its post-mutation state.
type Emitter[T any] struct {
	ls *haxmap.Map[Event, []Listener[T]]
}

// On registers l for e.
func (u *Emitter[T]) On(e Event, l Listener[T]) {
	if l == nil {
		return
	}
	if u.ls == nil {
		u.ls = haxmap.New[Event, []Listener[T]]()
	}
	old, _ := u.ls.Get(e)
	u.ls.Set(e, append(old[:len(old):len(old)], l))
}

// Off removes all listeners of e.
func (u *Emitter[T]) Off(e Event) {
	if u.ls != nil {
		u.ls.Del(e)
	}
}

// Listeners counts the listeners registered for e.
func (u *Emitter[T]) Listeners(e Event) int {
	if u.ls == nil {
		return 0
	}
	old, _ := u.ls.Get(e)
	return len(old)
}

// Emit calls every listener of e with v.
func (u *Emitter[T]) Emit(e Event, v T) {
	if u.ls == nil {
		return
	}
	if ls, ok := u.ls.Get(e); ok {
		for _, l := range ls {
			l(v)
		}
	}
}
