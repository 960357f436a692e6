package session

import "github.com/san-kum/lifesim/internal/life"

// State is the session lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Command is a discrete control message from a front-end.
type Command interface {
	commandName() string
}

type (
	StartCmd     struct{}
	StopCmd      struct{}
	ResetCmd     struct{}
	TargetCmd    struct{ N int }
	ColorModeCmd struct{ On bool }
)

func (StartCmd) commandName() string     { return "start" }
func (StopCmd) commandName() string      { return "stop" }
func (ResetCmd) commandName() string     { return "reset" }
func (TargetCmd) commandName() string    { return "set iteration target" }
func (ColorModeCmd) commandName() string { return "set color mode" }

// Observer is notified after every generation the session produces.
type Observer interface {
	OnGeneration(snap life.Snapshot, iteration int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(snap life.Snapshot, iteration int)

func (f ObserverFunc) OnGeneration(snap life.Snapshot, iteration int) { f(snap, iteration) }
