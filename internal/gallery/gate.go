package gallery

import "errors"

// GateState is the access gate's position in its two-state machine.
type GateState string

const (
	AwaitingPIN GateState = "awaiting_pin"
	Granted     GateState = "granted"
)

// ErrPINNotRecognized is returned for a PIN that resolves to no project.
// The gate applies no lockout or attempt counting; retries are unlimited.
var ErrPINNotRecognized = errors.New("pin not recognized")

// Gate maps a submitted PIN to a project and, on success, points the
// store's cursor at it so toggle operations are scoped correctly.
type Gate struct {
	store *Store
	state GateState
}

// NewGate creates a gate in the awaiting-PIN state.
func NewGate(store *Store) *Gate {
	return &Gate{store: store, state: AwaitingPIN}
}

// Submit resolves a PIN. On a match the gate transitions to Granted, the
// store cursor moves to the resolved project and its first folder, and the
// project is returned. On a miss the gate stays in AwaitingPIN and the
// cursor is untouched.
func (g *Gate) Submit(pin string) (*Project, error) {
	project := g.store.AccessProjectByPin(pin)
	if project == nil {
		return nil, ErrPINNotRecognized
	}
	g.store.SetCurrentProject(project)
	g.state = Granted
	return project, nil
}

// State reports the gate's current state.
func (g *Gate) State() GateState {
	return g.state
}
