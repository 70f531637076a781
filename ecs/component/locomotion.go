package component

// LocomotionState classifies the character's current motion intent.
type LocomotionState int

const (
	LocomotionIdle LocomotionState = iota
	LocomotionForward
	LocomotionBack
	LocomotionLeft
	LocomotionRight
	LocomotionRun
	LocomotionJump
)

var locomotionNames = [...]string{
	LocomotionIdle:    "idle",
	LocomotionForward: "forward",
	LocomotionBack:    "back",
	LocomotionLeft:    "left",
	LocomotionRight:   "right",
	LocomotionRun:     "run",
	LocomotionJump:    "jump",
}

func (s LocomotionState) String() string {
	if s < 0 || int(s) >= len(locomotionNames) {
		return "unknown"
	}
	return locomotionNames[s]
}

// StateListener receives the new state after a transition.
type StateListener func(state LocomotionState)

// Subscription identifies a registered listener.
type Subscription uint64

// StateNotifier is the only way outside code can observe transitions.
type StateNotifier interface {
	Subscribe(fn StateListener) Subscription
	Unsubscribe(id Subscription) bool
}

type stateListener struct {
	id Subscription
	fn StateListener
}

// Locomotion holds the active state and its ordered listener list.
// The zero value is Idle with no listeners.
type Locomotion struct {
	State LocomotionState

	listeners []stateListener
	nextID    Subscription
}

var _ StateNotifier = (*Locomotion)(nil)

// Subscribe registers fn. Listeners run in registration order.
func (l *Locomotion) Subscribe(fn StateListener) Subscription {
	if l == nil || fn == nil {
		return 0
	}
	l.nextID++
	l.listeners = append(l.listeners, stateListener{id: l.nextID, fn: fn})
	return l.nextID
}

// Unsubscribe removes a listener. It reports whether id was registered.
func (l *Locomotion) Unsubscribe(id Subscription) bool {
	if l == nil || id == 0 {
		return false
	}
	for i, sub := range l.listeners {
		if sub.id != id {
			continue
		}
		next := make([]stateListener, 0, len(l.listeners)-1)
		next = append(next, l.listeners[:i]...)
		l.listeners = append(next, l.listeners[i+1:]...)
		return true
	}
	return false
}

// Listeners returns the number of registered listeners.
func (l *Locomotion) Listeners() int {
	if l == nil {
		return 0
	}
	return len(l.listeners)
}

// Transition moves to state and notifies listeners synchronously. Same-state
// transitions are silent and report false.
func (l *Locomotion) Transition(state LocomotionState) bool {
	if l == nil || l.State == state {
		return false
	}
	l.State = state
	// listeners may subscribe or unsubscribe while being notified
	snapshot := l.listeners
	for _, sub := range snapshot {
		sub.fn(state)
	}
	return true
}

var LocomotionComponent = NewComponent[Locomotion]()
