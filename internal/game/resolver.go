package game

import "kittens_server/internal/domain"

// executeAction applies a resolved (non-suppressed) action's card effect.
// Each card has its own turn-consumption semantics: attack passes the stacked
// debt on, skip consumes one unit, shuffle/future/favor/combo leave the turn
// running. Callers hold mu.
func (s *Session) executeAction(action *PendingAction) {
	actor := s.players[action.Actor]

	switch action.Card {
	case domain.CardAttack:
		s.applyAttack(action.Actor)

	case domain.CardSkip:
		s.logf("%s skips a turn.", actor.Name)
		s.finishOneTurn()

	case domain.CardShuffle:
		s.deck.Shuffle()
		s.logf("%s shuffles the deck!", actor.Name)
		s.broadcastState()
		s.notifyTurn()

	case domain.CardFuture:
		s.logf("%s peeks at the top 3 cards.", actor.Name)
		s.notifier.SendTo(action.Actor, Event{Type: EventSeeFuture, Payload: SeeFuturePayload{Cards: s.deck.PeekTop(3)}})
		s.broadcastState()
		s.notifyTurn()

	case domain.CardFavor:
		if !s.validTarget(action.Target) {
			s.logf("%s plays Favor (no valid target).", actor.Name)
			s.notifyTurn()
			return
		}
		target := s.players[action.Target]
		s.logf("%s demands a Favor from %s!", actor.Name, target.Name)
		s.phase = PhaseFavorResponse
		s.pending = action
		s.broadcastState()
		s.notifier.SendTo(action.Target, Event{Type: EventGiveCardPrompt, Payload: GiveCardPromptPayload{
			From:      actor.Name,
			FromIndex: action.Actor,
		}})

	default:
		if action.Card.IsCat() && action.IsCombo {
			s.stealRandom(action)
		}
	}
}

// stealRandom resolves a cat pair: one uniformly random card moves from the
// target's hand to the actor's, revealed to the actor only.
func (s *Session) stealRandom(action *PendingAction) {
	actor := s.players[action.Actor]
	if !s.validTarget(action.Target) {
		s.logf("%s plays a pair (no valid target).", actor.Name)
	} else {
		target := s.players[action.Target]
		i := s.rng.Intn(len(target.Hand))
		stolen := target.Hand[i]
		target.Hand = append(target.Hand[:i], target.Hand[i+1:]...)
		actor.Hand = append(actor.Hand, stolen)
		s.logf("%s steals a card from %s!", actor.Name, target.Name)
		s.notifier.SendTo(action.Actor, Event{Type: EventStoleCard, Payload: StoleCardPayload{Card: stolen, From: target.Name}})
	}
	s.broadcastState()
	s.notifyTurn()
}

// validTarget treats a missing, eliminated or empty-handed target as a soft
// fizzle, not a hard error.
func (s *Session) validTarget(seat int) bool {
	if seat < 0 || seat >= len(s.players) {
		return false
	}
	t := s.players[seat]
	return t.Alive && len(t.Hand) > 0
}
