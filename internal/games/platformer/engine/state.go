package engine

// Status is the outcome of a level.
type Status uint8

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is Won or Lost.
func (s Status) Terminal() bool {
	return s != StatusRunning
}

// Contact is what the player ran into.
type Contact uint8

const (
	ContactWall Contact = iota
	ContactLava
	ContactCoin
)

func tileContact(t Tile) Contact {
	if t == TileLava {
		return ContactLava
	}
	return ContactWall
}

func contactOf(a Actor) Contact {
	switch a.Kind() {
	case KindLava:
		return ContactLava
	case KindCoin:
		return ContactCoin
	default:
		return ContactWall
	}
}

// EventKind identifies a state change reported through Events.
type EventKind uint8

const (
	EventCoinCollected EventKind = iota
	EventLost
	EventWon
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event records a state change caused by a touch.
type Event struct {
	Kind EventKind
	Pos  Vec // Where the player was when it happened
}

// Status returns the current outcome.
func (l *Level) Status() Status { return l.status }

// FinishDelay returns the remaining post-terminal time.
// Only meaningful once the status is terminal.
func (l *Level) FinishDelay() float64 { return l.finishDelay }

// IsFinished reports whether the level is over and its terminal
// animation has fully played.
func (l *Level) IsFinished() bool {
	return l.status.Terminal() && l.finishDelay < 0
}

// Events returns the events recorded since the last call and clears them.
func (l *Level) Events() []Event {
	events := l.events
	l.events = nil
	return events
}

// touched applies the state transition for a player contact.
// Terminal states never transition again.
func (l *Level) touched(c Contact, actor Actor) {
	switch c {
	case ContactLava:
		if l.status.Terminal() {
			return
		}
		l.status = StatusLost
		l.finishDelay = l.params.FinishDelay
		l.emit(EventLost)

	case ContactCoin:
		if actor == nil {
			return
		}
		if _, gone := l.removed[actor]; gone {
			return
		}
		l.removed[actor] = struct{}{}
		l.emit(EventCoinCollected)

		if l.status == StatusRunning && l.CoinsLeft() == 0 {
			l.status = StatusWon
			l.finishDelay = l.params.FinishDelay
			l.emit(EventWon)
		}
	}
}

func (l *Level) emit(kind EventKind) {
	l.events = append(l.events, Event{Kind: kind, Pos: l.Player().pos})
}
