package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"kittens_server/internal/domain"
)

const (
	// DefaultNopeWindow is the initial interrupt window after a play.
	DefaultNopeWindow = 5 * time.Second
	// DefaultNopeExtend is the shorter re-open window after each vote.
	DefaultNopeExtend = 3 * time.Second

	logTail  = 50
	logBound = 100
)

// PendingAction is a declared interruptible play awaiting its window.
type PendingAction struct {
	Card      domain.Card
	Actor     int
	ActorName string
	Target    int // seat index, -1 when absent
	IsCombo   bool
}

// Options tune a session. Zero values pick the defaults; Rand is only
// injected by tests that need a rigged deck.
type Options struct {
	NopeWindow time.Duration
	NopeExtend time.Duration
	Rand       *rand.Rand
}

// Session is the authoritative state machine for one match. Every command and
// the interrupt-window timer callback serialize on mu; sessions share nothing,
// so distinct rooms run fully in parallel.
type Session struct {
	mu       sync.Mutex
	rng      *rand.Rand
	notifier Notifier

	nopeWindow time.Duration
	nopeExtend time.Duration

	players   []*Player
	deck      *Deck
	discard   []domain.Card
	current   int
	turnsLeft int
	phase     Phase
	pending   *PendingAction
	window    *nopeWindow
	windowGen uint64
	winner    string
	turnCount int
	log       []string
}

// NewSession deals a match for the given seat names (join order = seat index)
// and announces the opening state. Requires 2..5 players.
func NewSession(names []string, notifier Notifier, opts Options) *Session {
	if opts.NopeWindow <= 0 {
		opts.NopeWindow = DefaultNopeWindow
	}
	if opts.NopeExtend <= 0 {
		opts.NopeExtend = DefaultNopeExtend
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		rng:        opts.Rand,
		notifier:   notifier,
		nopeWindow: opts.NopeWindow,
		nopeExtend: opts.NopeExtend,
		phase:      PhasePlay,
		turnsLeft:  1,
	}
	s.setup(names)

	s.mu.Lock()
	s.logf("Game started with %d players! Good luck...", len(names))
	s.broadcastState()
	s.notifyTurn()
	s.mu.Unlock()
	return s
}

// setup deals one defuse plus four base cards per player, then mixes
// (players-1) exploding and max(0, 6-players) defuse tokens into the rest.
// This guarantees one exploding token per non-winning elimination and scales
// defuse availability inversely with player count.
func (s *Session) setup(names []string) {
	deck := NewDeck(domain.BaseDeck(), s.rng)
	deck.Shuffle()

	for _, name := range names {
		p := &Player{Name: name, Alive: true, Hand: []domain.Card{domain.CardDefuse}}
		s.players = append(s.players, p)
	}
	for i := 0; i < 4; i++ {
		for _, p := range s.players {
			card, _ := deck.DrawTop()
			p.Hand = append(p.Hand, card)
		}
	}

	n := len(names)
	extraDefuses := 6 - n
	if extraDefuses < 0 {
		extraDefuses = 0
	}
	for i := 0; i < n-1; i++ {
		deck.Push(domain.CardExploding)
	}
	for i := 0; i < extraDefuses; i++ {
		deck.Push(domain.CardDefuse)
	}
	deck.Shuffle()
	s.deck = deck
}

// Stop cancels any in-flight interrupt-window timer. Called on room teardown.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window != nil && s.window.timer != nil {
		s.window.timer.Stop()
	}
	s.window = nil
	s.windowGen++
}

// PlayCard declares a card play by the given seat. Interruptible cards open a
// nope window; a single cat card is discarded with no effect.
func (s *Session) PlayCard(seat int, card domain.Card, isCombo bool, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return ErrGameOver
	}
	if seat != s.current {
		return ErrOutOfTurn
	}
	if s.phase != PhasePlay {
		return ErrWrongPhase
	}
	if !card.Valid() {
		return ErrInvalidCard
	}

	player := s.players[seat]

	if isCombo {
		if player.count(card) < 2 {
			return ErrComboNeedsPair
		}
		player.removeOne(card)
		player.removeOne(card)
		s.discard = append(s.discard, card, card)
	} else {
		if !player.holds(card) {
			return ErrInvalidCard
		}
		if card == domain.CardDefuse || card == domain.CardExploding {
			return ErrIllegalCardPlay
		}
		player.removeOne(card)
		s.discard = append(s.discard, card)
	}

	if card.IsCat() && !isCombo {
		s.logf("%s plays %s (no effect alone).", player.Name, card.DisplayName())
		s.broadcastState()
		return nil
	}

	action := &PendingAction{
		Card:      card,
		Actor:     seat,
		ActorName: player.Name,
		Target:    target,
		IsCombo:   isCombo,
	}
	combo := ""
	if isCombo {
		combo = " (pair combo!)"
	}
	s.logf("%s plays %s%s.", player.Name, card.DisplayName(), combo)
	s.openNopeWindow(action)
	return nil
}

// DrawCard draws the top card for the current player, ending one turn-unit
// unless an exploding token forces the insert sub-phase or an elimination.
func (s *Session) DrawCard(seat int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return ErrGameOver
	}
	if seat != s.current {
		return ErrOutOfTurn
	}
	if s.phase != PhasePlay {
		return ErrWrongPhase
	}

	player := s.players[seat]

	card, ok := s.deck.DrawTop()
	if !ok {
		s.logf("The deck is empty!")
		s.finishOneTurn()
		return nil
	}

	if card != domain.CardExploding {
		player.Hand = append(player.Hand, card)
		s.logf("%s draws a card.", player.Name)
		s.broadcastState()
		s.finishOneTurn()
		return nil
	}

	s.notifier.Broadcast(Event{Type: EventExplosion, Payload: ExplosionPayload{Player: player.Name}})
	s.logf("%s drew an EXPLODING KITTEN!!!", player.Name)

	if player.holds(domain.CardDefuse) {
		player.removeOne(domain.CardDefuse)
		s.discard = append(s.discard, domain.CardDefuse)
		s.logf("%s uses a Defuse! Insert the kitten back.", player.Name)
		s.phase = PhaseInsertKitten
		s.broadcastState()
		s.notifier.SendTo(seat, Event{Type: EventInsertKitten, Payload: InsertKittenPayload{DeckSize: s.deck.Len()}})
		return nil
	}

	// The spent token goes to discard so card conservation holds.
	s.discard = append(s.discard, domain.CardExploding)
	s.eliminate(seat)
	return nil
}

// InsertKitten reinserts the defused exploding token at the requested depth
// (clamped to the deck size) and ends the turn-unit.
func (s *Session) InsertKitten(seat int, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return ErrGameOver
	}
	if s.phase != PhaseInsertKitten {
		return ErrWrongPhase
	}
	if seat != s.current {
		return ErrOutOfTurn
	}

	s.deck.InsertAtDepth(domain.CardExploding, position)
	s.logf("%s inserts the Exploding Kitten back.", s.players[seat].Name)
	s.finishOneTurn()
	return nil
}

// GiveCard completes a favor: the stored target hands the chosen card to the
// actor. A favor does not consume a turn-unit.
func (s *Session) GiveCard(seat int, card domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseEnded {
		return ErrGameOver
	}
	if s.phase != PhaseFavorResponse {
		return ErrWrongPhase
	}
	if s.pending == nil || seat != s.pending.Target {
		return ErrOutOfTurn
	}

	giver := s.players[seat]
	if !giver.removeOne(card) {
		return ErrInvalidCard
	}

	actor := s.pending.Actor
	s.players[actor].Hand = append(s.players[actor].Hand, card)
	s.logf("%s gives %s to %s.", giver.Name, card.DisplayName(), s.players[actor].Name)
	s.notifier.SendTo(actor, Event{Type: EventReceivedCard, Payload: ReceivedCardPayload{Card: card, From: giver.Name}})

	s.phase = PhasePlay
	s.pending = nil
	s.broadcastState()
	s.notifyTurn()
	return nil
}

// Ended reports whether the match reached its terminal phase.
func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseEnded
}

// Winner returns the winning player's name, or "" while the match runs.
func (s *Session) Winner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner
}

// TurnCount returns how many times the turn cursor advanced.
func (s *Session) TurnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turnCount
}

// PlayerNames returns seat names in join order.
func (s *Session) PlayerNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.players))
	for i, p := range s.players {
		names[i] = p.Name
	}
	return names
}

func (s *Session) logf(format string, args ...any) {
	s.log = append(s.log, fmt.Sprintf(format, args...))
	if len(s.log) > logBound {
		s.log = s.log[len(s.log)-logBound:]
	}
}

// broadcastState projects the full state once per seat, revealing a hand only
// to its owner. Callers hold mu.
func (s *Session) broadcastState() {
	for seat := range s.players {
		s.notifier.SendTo(seat, Event{Type: EventGameState, Payload: s.snapshotLocked(seat)})
	}
}

func (s *Session) notifyTurn() {
	cur := s.current
	s.notifier.Broadcast(Event{Type: EventTurnChange, Payload: TurnChangePayload{
		PlayerIndex: cur,
		Player:      s.players[cur].Name,
		TurnsLeft:   s.turnsLeft,
	}})
	s.notifier.SendTo(cur, Event{Type: EventYourTurn})
}
