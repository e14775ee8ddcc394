package components

// Status is the lifecycle state of a rocket. The only legal transitions are
// Alive→Dead and Alive→Succeeded.
type Status uint8

const (
	StatusAlive Status = iota
	StatusDead
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	case StatusSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// Alive reports whether the rocket is still flying.
func (s Status) Alive() bool {
	return s == StatusAlive
}
