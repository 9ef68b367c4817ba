package game

// Phase represents the lifecycle stage of a session. Exactly one phase is
// active at a time and gates which commands are legal.
type Phase string

const (
	// PhasePlay is the normal state: the current player may play cards or draw.
	PhasePlay Phase = "play"
	// PhaseNopeWindow is the timed interrupt window after an interruptible play.
	PhaseNopeWindow Phase = "nope_window"
	// PhaseInsertKitten awaits the defusing player's reinsertion depth.
	PhaseInsertKitten Phase = "insert_kitten"
	// PhaseFavorResponse awaits the favor target's card choice.
	PhaseFavorResponse Phase = "favor_response"
	// PhaseEnded is terminal; the session persists for final state display only.
	PhaseEnded Phase = "ended"
)
