// Package session drives a life grid generation by generation.
//
// A [Session] is an explicit state machine with three states:
//
//	Idle ──Start──▶ Running ──Stop / target reached──▶ Stopped
//	  ▲                                                   │
//	  └──────────────────────Reset────────────────────────┘
//
// An external scheduler (a terminal tick, a window frame or [Session.Run])
// calls [Session.Step] once per tick. Commands arrive either as direct method
// calls or as [Command] messages passed to [Session.Dispatch]; a command that
// is not valid in the current state is rejected with a [*Rejection] and leaves
// the session untouched.
//
// # Thread Safety
//
// A Session is NOT safe for concurrent use. Commands and steps must come from
// one goroutine; grid snapshots handed to observers may be read anywhere.
package session
