package events

type Level uint8

const (
	Debug Level = iota
	Info
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Error:
		return "E"
	default:
		return "X"
	}
}

// Event is one diagnostic from a regeneration run. Stage names the
// pipeline phase that produced it (load, transform, commit).
type Event struct {
	Level   Level
	Stage   string
	Message string
	Err     error
}

type Handler interface {
	Handle(event Event)
}
