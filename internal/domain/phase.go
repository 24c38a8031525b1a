package domain

// Phase is the per-round phase of an active game session
type Phase string

const (
	PhaseSubmitting Phase = "submitting"
	PhaseJudging    Phase = "judging"
	PhaseResults    Phase = "results"
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from the current phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	switch p {
	case PhaseSubmitting:
		return target == PhaseJudging
	case PhaseJudging:
		return target == PhaseResults
	case PhaseResults:
		return target == PhaseSubmitting
	}
	return false
}
