package game

// Turn accounting. turnsLeft counts the turn-units the current player still
// owes before the cursor advances; it never goes negative across commands.

// nextAlive returns the first alive seat strictly after from, wrapping and
// skipping eliminated seats.
func (s *Session) nextAlive(from int) int {
	next := (from + 1) % len(s.players)
	for tries := 0; !s.players[next].Alive && tries < len(s.players); tries++ {
		next = (next + 1) % len(s.players)
	}
	return next
}

// finishOneTurn consumes one turn-unit. When the debt reaches zero the cursor
// moves to the next alive seat owing a single turn. Callers hold mu.
func (s *Session) finishOneTurn() {
	s.turnsLeft--
	if s.turnsLeft <= 0 {
		s.current = s.nextAlive(s.current)
		s.turnsLeft = 1
		s.turnCount++
	}
	s.phase = PhasePlay
	s.broadcastState()
	s.notifyTurn()
}

// applyAttack ends the actor's turn without drawing and passes the
// accumulated debt plus one to the next alive seat. An attacked player who
// attacks back keeps stacking: prior turnsLeft k hands the next player k+1.
func (s *Session) applyAttack(actor int) {
	turnsToPass := s.turnsLeft + 1
	next := s.nextAlive(actor)
	s.logf("%s Attacks! %s must take %d turn(s).", s.players[actor].Name, s.players[next].Name, turnsToPass)
	s.current = next
	s.turnsLeft = turnsToPass
	s.turnCount++
	s.phase = PhasePlay
	s.broadcastState()
	s.notifyTurn()
}

// eliminate removes the exploded seat from play, moving its hand to discard
// so card conservation holds. Ends the match when a single seat remains,
// otherwise force-ends the eliminated seat's outstanding turn-units.
// Callers hold mu.
func (s *Session) eliminate(seat int) {
	player := s.players[seat]
	player.Alive = false
	s.discard = append(s.discard, player.Hand...)
	player.Hand = nil
	s.logf("%s explodes! Out of the game.", player.Name)
	s.broadcastState()

	var last *Player
	alive := 0
	for _, p := range s.players {
		if p.Alive {
			alive++
			last = p
		}
	}
	if alive == 1 {
		s.endGame(last.Name)
		return
	}
	s.turnsLeft = 0
	s.finishOneTurn()
}

func (s *Session) endGame(winner string) {
	s.logf("%s is the last cat standing!", winner)
	s.phase = PhaseEnded
	s.winner = winner
	s.broadcastState()
	s.notifier.Broadcast(Event{Type: EventGameOver, Payload: GameOverPayload{Winner: winner}})
}
