package game

import (
	"time"

	"kittens_server/internal/domain"
)

// nopeWindow lives only while phase == nope_window. Vote parity decides the
// outcome: odd suppresses the pending action, even lets it execute.
type nopeWindow struct {
	deadline time.Time
	votes    int
	timer    *time.Timer
	gen      uint64
}

// openNopeWindow stores the pending action and arms the deadline timer.
// Callers hold mu.
func (s *Session) openNopeWindow(action *PendingAction) {
	if s.window != nil && s.window.timer != nil {
		s.window.timer.Stop()
	}
	s.phase = PhaseNopeWindow
	s.pending = action
	s.windowGen++
	w := &nopeWindow{
		deadline: time.Now().Add(s.nopeWindow),
		gen:      s.windowGen,
	}
	s.window = w
	s.broadcastState()
	s.notifier.Broadcast(Event{Type: EventNopeWindowOpen, Payload: NopeWindowOpenPayload{
		Card:    action.Card,
		Player:  action.ActorName,
		IsCombo: action.IsCombo,
		EndsAt:  w.deadline.UnixMilli(),
	}})
	gen := w.gen
	w.timer = time.AfterFunc(s.nopeWindow, func() { s.resolveNope(gen) })
}

// PlayNope casts a suppression vote: discards the voter's nope card, toggles
// the parity and atomically replaces the deadline timer with the shorter
// re-open window.
func (s *Session) PlayNope(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return ErrGameOver
	}
	if s.phase != PhaseNopeWindow || s.window == nil {
		return ErrWrongPhase
	}

	player := s.players[seat]
	if !player.removeOne(domain.CardNope) {
		return ErrNoNopeCard
	}
	s.discard = append(s.discard, domain.CardNope)

	w := s.window
	w.votes++
	verdict := "YEPED - action back on!"
	if w.votes%2 == 1 {
		verdict = "NOPED"
	}
	s.logf("%s plays Nope! (%s)", player.Name, verdict)

	// Replace the deadline while holding mu so a fired-but-blocked callback
	// sees a stale generation and no-ops.
	if w.timer != nil {
		w.timer.Stop()
	}
	s.windowGen++
	w.gen = s.windowGen
	w.deadline = time.Now().Add(s.nopeExtend)
	gen := w.gen
	w.timer = time.AfterFunc(s.nopeExtend, func() { s.resolveNope(gen) })

	s.broadcastState()
	s.notifier.Broadcast(Event{Type: EventNopePlayed, Payload: NopePlayedPayload{
		Player:    player.Name,
		NopeCount: w.votes,
		EndsAt:    w.deadline.UnixMilli(),
	}})
	return nil
}

// resolveNope runs when the deadline expires. A stale callback that lost a
// cancel race is rejected by the generation check, so each window resolves at
// most once.
func (s *Session) resolveNope(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window == nil || s.window.gen != gen {
		return
	}

	action := s.pending
	suppressed := s.window.votes%2 == 1
	s.phase = PhasePlay
	s.pending = nil
	s.window = nil

	if suppressed {
		// The card has no effect; the actor's turn continues unchanged and
		// they still owe their draw.
		s.logf("%s's %s was Noped! They must still draw.", action.ActorName, action.Card.DisplayName())
		s.broadcastState()
		s.notifyTurn()
		return
	}
	s.executeAction(action)
}
