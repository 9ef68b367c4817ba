package game

import "errors"

// Command validation errors. These are reported only to the offending sender
// and never mutate session state.
var (
	// ErrOutOfTurn is returned for a turn-owned command from a non-current seat.
	ErrOutOfTurn = errors.New("not your turn")
	// ErrWrongPhase is returned for a command that is illegal in the current phase.
	ErrWrongPhase = errors.New("cannot do that right now")
	// ErrInvalidCard is returned when the card is not in hand, or a combo lacks
	// two matching cards.
	ErrInvalidCard = errors.New("card not in hand")
	// ErrComboNeedsPair is returned when a combo is declared with fewer than two
	// matching cards in hand.
	ErrComboNeedsPair = errors.New("need 2 matching cards for combo")
	// ErrIllegalCardPlay is returned for a direct play of defuse or exploding.
	ErrIllegalCardPlay = errors.New("that card cannot be played")
	// ErrNoNopeCard is returned for a suppression vote without a nope card in hand.
	ErrNoNopeCard = errors.New("no nope card")
	// ErrGameOver is returned for any game command after the match ended.
	ErrGameOver = errors.New("game is over")
)
