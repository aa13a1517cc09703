package transaction

// Phase names the protocol step a failure happened in, so the surrounding
// UI can pick the matching recovery affordance.
type Phase string

const (
	PhaseIntent   Phase = "intent"
	PhaseCharge   Phase = "charge"
	PhaseFinalize Phase = "finalize"
)

func (p Phase) String() string {
	return string(p)
}

type StateKind string

const (
	StateInit             StateKind = "init"
	StateIntentRequested  StateKind = "intent_requested"
	StateIntentReady      StateKind = "intent_ready"
	StateChargeConfirming StateKind = "charge_confirming"
	StateChargeConfirmed  StateKind = "charge_confirmed"
	StateFinalizing       StateKind = "finalizing"
	StateCompleted        StateKind = "completed"
	StateFailed           StateKind = "failed"
	StateCancelled        StateKind = "cancelled"
)

func (k StateKind) String() string {
	return string(k)
}

// State is the single tagged value tracking where a transaction attempt is.
// The failure phase and reason are only meaningful when kind is StateFailed.
type State struct {
	kind       StateKind
	failPhase  Phase
	failReason string
}

func initialState() State {
	return State{kind: StateInit}
}

func (s State) Kind() StateKind {
	return s.kind
}

func (s State) IsTerminal() bool {
	switch s.kind {
	case StateCompleted, StateCancelled:
		return true
	default:
		return false
	}
}

func (s State) IsFailed() bool {
	return s.kind == StateFailed
}

// FailurePhase reports the phase a failed transaction broke in.
func (s State) FailurePhase() Phase {
	return s.failPhase
}

func (s State) FailureReason() string {
	return s.failReason
}

// MoneyMoved reports whether the gateway has confirmed a charge. Past this
// point a failure must never be retried as a fresh charge.
func (s State) MoneyMoved() bool {
	switch s.kind {
	case StateChargeConfirmed, StateFinalizing, StateCompleted:
		return true
	case StateFailed:
		return s.failPhase == PhaseFinalize
	default:
		return false
	}
}
