// Package control defines lightweight command messages used by the UI and
// the keyboard to request actions from the counter. Commands are applied
// synchronously, so the state change is visible before Dispatch returns.
package control

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdIncrement CommandType = iota
	CmdDecrement
	CmdReset
	CmdToggleAuto
	CmdSetInterval
)

func (t CommandType) String() string {
	switch t {
	case CmdIncrement:
		return "increment"
	case CmdDecrement:
		return "decrement"
	case CmdReset:
		return "reset"
	case CmdToggleAuto:
		return "toggle-auto"
	case CmdSetInterval:
		return "set-interval"
	}
	return "unknown"
}

// Target is the state holder a command acts on.
type Target interface {
	Increment()
	Decrement()
	Reset()
	ToggleAuto()
	SetInterval(ms int64)
}

// Command is the message sent from the UI to the AppManager.
type Command struct {
	Type     CommandType
	Interval int64 // milliseconds, only for CmdSetInterval
}

// Dispatch applies cmd to t. Unknown command types are ignored.
func Dispatch(t Target, cmd Command) {
	switch cmd.Type {
	case CmdIncrement:
		t.Increment()
	case CmdDecrement:
		t.Decrement()
	case CmdReset:
		t.Reset()
	case CmdToggleAuto:
		t.ToggleAuto()
	case CmdSetInterval:
		t.SetInterval(cmd.Interval)
	}
}

// CommandForRune maps a typed key to its command.
func CommandForRune(r rune) (Command, bool) {
	switch r {
	case '+', '=':
		return Command{Type: CmdIncrement}, true
	case '-', '_':
		return Command{Type: CmdDecrement}, true
	case 'r', 'R':
		return Command{Type: CmdReset}, true
	case 'a', 'A':
		return Command{Type: CmdToggleAuto}, true
	}
	return Command{}, false
}
