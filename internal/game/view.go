package game

import "kittens_server/internal/domain"

// PlayerView is a seat as seen by one viewer; Hand is set only for the
// viewer's own seat.
type PlayerView struct {
	Name      string        `json:"name"`
	Alive     bool          `json:"alive"`
	CardCount int           `json:"card_count"`
	Hand      []domain.Card `json:"hand,omitempty"`
}

// NopeWindowView exposes interrupt-window timing and the vote count.
type NopeWindowView struct {
	EndsAt    int64 `json:"ends_at"`
	NopeCount int   `json:"nope_count"`
}

// PendingActionView summarizes the action awaiting its window or response.
type PendingActionView struct {
	Card   domain.Card `json:"card"`
	Player string      `json:"player"`
}

// StateView is the full snapshot projected for a single viewer seat.
type StateView struct {
	MyIndex       int                `json:"my_index"`
	CurrentPlayer int                `json:"current_player"`
	TurnsLeft     int                `json:"turns_left"`
	DeckCount     int                `json:"deck_count"`
	DiscardTop    *domain.Card       `json:"discard_top"`
	Log           []string           `json:"log"`
	Phase         Phase              `json:"phase"`
	NopeWindow    *NopeWindowView    `json:"nope_window,omitempty"`
	PendingAction *PendingActionView `json:"pending_action,omitempty"`
	Players       []PlayerView       `json:"players"`
}

// Snapshot builds the client view for the given seat.
func (s *Session) Snapshot(viewer int) StateView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(viewer)
}

func (s *Session) snapshotLocked(viewer int) StateView {
	view := StateView{
		MyIndex:       viewer,
		CurrentPlayer: s.current,
		TurnsLeft:     s.turnsLeft,
		DeckCount:     s.deck.Len(),
		Phase:         s.phase,
	}

	if len(s.discard) > 0 {
		top := s.discard[len(s.discard)-1]
		view.DiscardTop = &top
	}

	tail := s.log
	if len(tail) > logTail {
		tail = tail[len(tail)-logTail:]
	}
	view.Log = append([]string(nil), tail...)

	if s.window != nil {
		view.NopeWindow = &NopeWindowView{
			EndsAt:    s.window.deadline.UnixMilli(),
			NopeCount: s.window.votes,
		}
	}
	if s.pending != nil {
		view.PendingAction = &PendingActionView{
			Card:   s.pending.Card,
			Player: s.pending.ActorName,
		}
	}

	view.Players = make([]PlayerView, len(s.players))
	for i, p := range s.players {
		pv := PlayerView{Name: p.Name, Alive: p.Alive, CardCount: len(p.Hand)}
		if i == viewer {
			pv.Hand = append([]domain.Card(nil), p.Hand...)
		}
		view.Players[i] = pv
	}
	return view
}
