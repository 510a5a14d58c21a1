package window

type Kind uint8

const (
	Closed Kind = iota + 1
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	}
	return "unknown"
}

// Event is a window event. Key holds the platform key code, which for letters
// is the upper case ASCII value with both raylib and GLFW.
type Event struct {
	Kind Kind
	Key  int32
}

type Window interface {
	PollEvent() (Event, bool)
	Display()
	Close()
}

// Queue is a FIFO of events filled by a backend between polls.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = q.events[:0:0]
	}
	return ev, true
}

func (q *Queue) Len() int {
	return len(q.events)
}
