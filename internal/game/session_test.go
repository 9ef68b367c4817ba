package game

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"kittens_server/internal/domain"
)

// recorder captures session events for assertions.
type recorder struct {
	mu     sync.Mutex
	all    []Event
	bySeat map[int][]Event
}

func newRecorder() *recorder {
	return &recorder{bySeat: make(map[int][]Event)}
}

func (r *recorder) Broadcast(evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, evt)
}

func (r *recorder) SendTo(seat int, evt Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySeat[seat] = append(r.bySeat[seat], evt)
}

func (r *recorder) lastTo(seat int, typ string) (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	evts := r.bySeat[seat]
	for i := len(evts) - 1; i >= 0; i-- {
		if evts[i].Type == typ {
			return evts[i], true
		}
	}
	return Event{}, false
}

func (r *recorder) countBroadcast(typ string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, evt := range r.all {
		if evt.Type == typ {
			n++
		}
	}
	return n
}

func newTestSession(names ...string) (*Session, *recorder) {
	rec := newRecorder()
	s := NewSession(names, rec, Options{
		// Long windows: tests resolve deterministically via resolveWindow.
		NopeWindow: time.Hour,
		NopeExtend: time.Hour,
		Rand:       rand.New(rand.NewSource(42)),
	})
	return s, rec
}

// rigDeck replaces the deck, bottom-to-top order.
func rigDeck(s *Session, cards ...domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck = NewDeck(cards, s.rng)
}

// rigHand replaces a seat's hand.
func rigHand(s *Session, seat int, cards ...domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[seat].Hand = append([]domain.Card(nil), cards...)
}

// resolveWindow fires the pending interrupt window as if its deadline expired.
func resolveWindow(s *Session) {
	s.mu.Lock()
	if s.window == nil {
		s.mu.Unlock()
		return
	}
	s.window.timer.Stop()
	gen := s.window.gen
	s.mu.Unlock()
	s.resolveNope(gen)
}

func snap(s *Session, seat int) StateView {
	return s.Snapshot(seat)
}

// totalCards counts deck + discard + all hands.
func totalCards(s *Session) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.deck.Len() + len(s.discard)
	for _, p := range s.players {
		n += len(p.Hand)
	}
	return n
}

func TestSetupDeal(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		names := []string{"a", "b", "c", "d", "e"}[:n]
		s, _ := newTestSession(names...)

		extraDefuses := 6 - n
		if extraDefuses < 0 {
			extraDefuses = 0
		}
		want := 46 + n + (n - 1) + extraDefuses

		if got := totalCards(s); got != want {
			t.Fatalf("players=%d: total cards = %d; want %d", n, got, want)
		}

		view := snap(s, 0)
		if len(view.Players[0].Hand) != 5 {
			t.Fatalf("players=%d: hand size = %d; want 5", n, len(view.Players[0].Hand))
		}
		if indexOf(view.Players[0].Hand, domain.CardDefuse) == -1 {
			t.Fatalf("players=%d: dealt hand missing defuse", n)
		}
		if view.CurrentPlayer != 0 || view.TurnsLeft != 1 || view.Phase != PhasePlay {
			t.Fatalf("players=%d: opening state = seat %d, turns %d, phase %s", n, view.CurrentPlayer, view.TurnsLeft, view.Phase)
		}
	}
}

// Scenario A: a plain draw grows the hand by one and passes the turn.
func TestDrawPassesTurn(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigDeck(s, domain.CardExploding, domain.CardSkip)
	before := len(snap(s, 0).Players[0].Hand)

	if err := s.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}

	view := snap(s, 0)
	if len(view.Players[0].Hand) != before+1 {
		t.Fatalf("hand size = %d; want %d", len(view.Players[0].Hand), before+1)
	}
	if view.CurrentPlayer != 1 || view.TurnsLeft != 1 {
		t.Fatalf("turn = seat %d with %d left; want seat 1 with 1", view.CurrentPlayer, view.TurnsLeft)
	}
}

func TestDrawGates(t *testing.T) {
	s, _ := newTestSession("ann", "bob")

	if err := s.DrawCard(1); err != ErrOutOfTurn {
		t.Fatalf("off-turn draw err = %v; want ErrOutOfTurn", err)
	}

	rigHand(s, 0, domain.CardSkip)
	if err := s.PlayCard(0, domain.CardSkip, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if err := s.DrawCard(0); err != ErrWrongPhase {
		t.Fatalf("draw in nope_window err = %v; want ErrWrongPhase", err)
	}
}

func TestEmptyDeckDrawConsumesTurn(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigDeck(s)

	if err := s.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}
	view := snap(s, 0)
	if view.CurrentPlayer != 1 || view.Phase != PhasePlay {
		t.Fatalf("after empty draw: seat %d phase %s; want seat 1 play", view.CurrentPlayer, view.Phase)
	}
}

func TestPlayCardValidation(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardDefuse, domain.CardTacocat)

	if err := s.PlayCard(1, domain.CardSkip, false, -1); err != ErrOutOfTurn {
		t.Fatalf("off-turn play err = %v; want ErrOutOfTurn", err)
	}
	if err := s.PlayCard(0, domain.CardDefuse, false, -1); err != ErrIllegalCardPlay {
		t.Fatalf("defuse play err = %v; want ErrIllegalCardPlay", err)
	}
	if err := s.PlayCard(0, domain.CardSkip, false, -1); err != ErrInvalidCard {
		t.Fatalf("unheld card err = %v; want ErrInvalidCard", err)
	}
	if err := s.PlayCard(0, domain.CardTacocat, true, 1); err != ErrComboNeedsPair {
		t.Fatalf("single-cat combo err = %v; want ErrComboNeedsPair", err)
	}
	if err := s.PlayCard(0, "gopher", false, -1); err != ErrInvalidCard {
		t.Fatalf("unknown token err = %v; want ErrInvalidCard", err)
	}
}

func TestSingleCatDiscardsWithoutWindow(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardTacocat)

	if err := s.PlayCard(0, domain.CardTacocat, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	view := snap(s, 0)
	if view.Phase != PhasePlay {
		t.Fatalf("phase = %s; want play (no window for a lone cat)", view.Phase)
	}
	if view.DiscardTop == nil || *view.DiscardTop != domain.CardTacocat {
		t.Fatalf("discard top = %v; want tacocat", view.DiscardTop)
	}
	if view.CurrentPlayer != 0 {
		t.Fatalf("turn moved to seat %d; want to stay at 0", view.CurrentPlayer)
	}
}

// Scenario B: an unvoted attack with turnsLeft=1 passes 2 turns on.
func TestAttackPassesStackedTurns(t *testing.T) {
	s, _ := newTestSession("ann", "bob", "cid")
	rigHand(s, 0, domain.CardAttack)

	if err := s.PlayCard(0, domain.CardAttack, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if got := snap(s, 0).Phase; got != PhaseNopeWindow {
		t.Fatalf("phase = %s; want nope_window", got)
	}
	resolveWindow(s)

	view := snap(s, 0)
	if view.CurrentPlayer != 1 || view.TurnsLeft != 2 {
		t.Fatalf("after attack: seat %d owes %d; want seat 1 owing 2", view.CurrentPlayer, view.TurnsLeft)
	}

	// An attacked player attacking back hands on the accumulated debt plus one.
	rigHand(s, 1, domain.CardAttack)
	if err := s.PlayCard(1, domain.CardAttack, false, -1); err != nil {
		t.Fatalf("counter attack: %v", err)
	}
	resolveWindow(s)
	view = snap(s, 0)
	if view.CurrentPlayer != 2 || view.TurnsLeft != 3 {
		t.Fatalf("after counter attack: seat %d owes %d; want seat 2 owing 3", view.CurrentPlayer, view.TurnsLeft)
	}
}

func TestSkipConsumesOneTurn(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardSkip, domain.CardSkip)
	s.mu.Lock()
	s.turnsLeft = 2
	s.mu.Unlock()

	if err := s.PlayCard(0, domain.CardSkip, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	resolveWindow(s)

	view := snap(s, 0)
	if view.CurrentPlayer != 0 || view.TurnsLeft != 1 {
		t.Fatalf("after skip with debt 2: seat %d owes %d; want seat 0 owing 1", view.CurrentPlayer, view.TurnsLeft)
	}
}

// Scenario C: one vote suppresses the action and leaves the turn untouched.
func TestNopeSuppressesAction(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardSkip)
	rigHand(s, 1, domain.CardNope)

	if err := s.PlayCard(0, domain.CardSkip, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if err := s.PlayNope(1); err != nil {
		t.Fatalf("PlayNope: %v", err)
	}
	resolveWindow(s)

	view := snap(s, 1)
	if view.CurrentPlayer != 0 || view.TurnsLeft != 1 || view.Phase != PhasePlay {
		t.Fatalf("after noped skip: seat %d owes %d phase %s; want seat 0 owing 1 in play", view.CurrentPlayer, view.TurnsLeft, view.Phase)
	}
	if len(view.Players[1].Hand) != 0 {
		t.Fatalf("voter still holds %v; nope should be discarded", view.Players[1].Hand)
	}
}

func TestNopeParity(t *testing.T) {
	for votes := 0; votes <= 3; votes++ {
		s, _ := newTestSession("ann", "bob")
		rigHand(s, 0, domain.CardSkip)
		rigHand(s, 1, domain.CardNope, domain.CardNope, domain.CardNope, domain.CardNope)

		if err := s.PlayCard(0, domain.CardSkip, false, -1); err != nil {
			t.Fatalf("votes=%d PlayCard: %v", votes, err)
		}
		for i := 0; i < votes; i++ {
			if err := s.PlayNope(1); err != nil {
				t.Fatalf("votes=%d PlayNope #%d: %v", votes, i+1, err)
			}
		}
		resolveWindow(s)

		suppressed := votes%2 == 1
		cur := snap(s, 0).CurrentPlayer
		if suppressed && cur != 0 {
			t.Fatalf("votes=%d: skip executed (seat %d); odd votes must suppress", votes, cur)
		}
		if !suppressed && cur != 1 {
			t.Fatalf("votes=%d: skip suppressed (seat %d); even votes must execute", votes, cur)
		}
	}
}

func TestNopeRequiresWindowAndCard(t *testing.T) {
	s, _ := newTestSession("ann", "bob")

	if err := s.PlayNope(1); err != ErrWrongPhase {
		t.Fatalf("nope outside window err = %v; want ErrWrongPhase", err)
	}

	rigHand(s, 0, domain.CardSkip)
	rigHand(s, 1)
	if err := s.PlayCard(0, domain.CardSkip, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if err := s.PlayNope(1); err != ErrNoNopeCard {
		t.Fatalf("nope without card err = %v; want ErrNoNopeCard", err)
	}
}

func TestVoteExtendsDeadline(t *testing.T) {
	s, rec := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardSkip)
	rigHand(s, 1, domain.CardNope)

	if err := s.PlayCard(0, domain.CardSkip, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	open, ok := rec.lastTo(0, EventGameState)
	if !ok {
		t.Fatal("no state after window open")
	}
	first := open.Payload.(StateView).NopeWindow.EndsAt

	time.Sleep(10 * time.Millisecond)
	if err := s.PlayNope(1); err != nil {
		t.Fatalf("PlayNope: %v", err)
	}
	after, _ := rec.lastTo(0, EventGameState)
	second := after.Payload.(StateView).NopeWindow.EndsAt
	if second == first {
		t.Fatal("vote did not reset the deadline")
	}
	if got := after.Payload.(StateView).NopeWindow.NopeCount; got != 1 {
		t.Fatalf("vote count = %d; want 1", got)
	}
}

// A real deadline expiry races a vote; the window must resolve exactly once.
func TestWindowResolvesOnce(t *testing.T) {
	rec := newRecorder()
	s := NewSession([]string{"ann", "bob"}, rec, Options{
		NopeWindow: 30 * time.Millisecond,
		NopeExtend: 30 * time.Millisecond,
		Rand:       rand.New(rand.NewSource(7)),
	})
	rigHand(s, 0, domain.CardAttack)

	if err := s.PlayCard(0, domain.CardAttack, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for snap(s, 0).Phase == PhaseNopeWindow {
		if time.Now().After(deadline) {
			t.Fatal("window never resolved")
		}
		time.Sleep(5 * time.Millisecond)
	}
	// A stale callback firing later must not resolve again.
	time.Sleep(60 * time.Millisecond)

	view := snap(s, 0)
	if view.CurrentPlayer != 1 || view.TurnsLeft != 2 {
		t.Fatalf("attack resolved to seat %d owing %d; want seat 1 owing 2", view.CurrentPlayer, view.TurnsLeft)
	}
}

// Scenario D: defuse transitions to the insert sub-phase; insert at depth 0
// puts the kitten right back on top.
func TestDefuseAndInsert(t *testing.T) {
	s, rec := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardDefuse)
	rigDeck(s, domain.CardSkip, domain.CardExploding)

	if err := s.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}
	view := snap(s, 0)
	if view.Phase != PhaseInsertKitten {
		t.Fatalf("phase = %s; want insert_kitten", view.Phase)
	}
	if !view.Players[0].Alive {
		t.Fatal("defused player was eliminated")
	}
	if _, ok := rec.lastTo(0, EventInsertKitten); !ok {
		t.Fatal("no insert_kitten prompt sent to drawer")
	}

	if err := s.InsertKitten(1, 0); err != ErrOutOfTurn {
		t.Fatalf("foreign insert err = %v; want ErrOutOfTurn", err)
	}
	if err := s.InsertKitten(0, 0); err != nil {
		t.Fatalf("InsertKitten: %v", err)
	}

	view = snap(s, 0)
	if view.CurrentPlayer != 1 || view.Phase != PhasePlay {
		t.Fatalf("after insert: seat %d phase %s; want seat 1 play", view.CurrentPlayer, view.Phase)
	}

	// Depth 0 means the very next draw finds the kitten again.
	rigHand(s, 1)
	if err := s.DrawCard(1); err != nil {
		t.Fatalf("second draw: %v", err)
	}
	if got := snap(s, 1).Players[1].Alive; got {
		t.Fatal("seat 1 survived a kitten with no defuse")
	}
}

func TestExplosionWithoutDefuseEliminates(t *testing.T) {
	s, _ := newTestSession("ann", "bob", "cid")
	rigHand(s, 0, domain.CardSkip, domain.CardTacocat)
	rigDeck(s, domain.CardNope, domain.CardExploding)
	total := totalCards(s)

	if err := s.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}

	view := snap(s, 1)
	if view.Players[0].Alive || view.Players[0].CardCount != 0 {
		t.Fatalf("exploded seat: alive=%v cards=%d; want dead with 0", view.Players[0].Alive, view.Players[0].CardCount)
	}
	if view.CurrentPlayer != 1 || view.TurnsLeft != 1 || view.Phase != PhasePlay {
		t.Fatalf("after elimination: seat %d owes %d phase %s", view.CurrentPlayer, view.TurnsLeft, view.Phase)
	}
	if got := totalCards(s); got != total {
		t.Fatalf("conservation broken: %d -> %d", total, got)
	}
}

func TestLastAliveWins(t *testing.T) {
	s, rec := newTestSession("ann", "bob")
	rigHand(s, 0)
	rigDeck(s, domain.CardExploding)

	if err := s.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}

	if !s.Ended() {
		t.Fatal("game did not end with one player alive")
	}
	if s.Winner() != "bob" {
		t.Fatalf("winner = %q; want bob", s.Winner())
	}
	if rec.countBroadcast(EventGameOver) != 1 {
		t.Fatalf("game_over broadcast %d times; want 1", rec.countBroadcast(EventGameOver))
	}
	if err := s.DrawCard(1); err != ErrGameOver {
		t.Fatalf("post-game draw err = %v; want ErrGameOver", err)
	}
	if err := s.PlayCard(1, domain.CardSkip, false, -1); err != ErrGameOver {
		t.Fatalf("post-game play err = %v; want ErrGameOver", err)
	}
}

func TestEliminationSkipsDeadSeats(t *testing.T) {
	s, _ := newTestSession("ann", "bob", "cid")
	s.mu.Lock()
	s.players[1].Alive = false
	s.players[1].Hand = nil
	s.mu.Unlock()
	rigDeck(s, domain.CardNope, domain.CardSkip)

	if err := s.DrawCard(0); err != nil {
		t.Fatalf("DrawCard: %v", err)
	}
	if got := snap(s, 0).CurrentPlayer; got != 2 {
		t.Fatalf("cursor landed on seat %d; want 2 (seat 1 is dead)", got)
	}
}

func TestFavorExchange(t *testing.T) {
	s, rec := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardFavor)
	rigHand(s, 1, domain.CardMelon)

	if err := s.PlayCard(0, domain.CardFavor, false, 1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	resolveWindow(s)

	view := snap(s, 1)
	if view.Phase != PhaseFavorResponse {
		t.Fatalf("phase = %s; want favor_response", view.Phase)
	}
	if _, ok := rec.lastTo(1, EventGiveCardPrompt); !ok {
		t.Fatal("target never prompted")
	}

	if err := s.GiveCard(0, domain.CardMelon); err != ErrOutOfTurn {
		t.Fatalf("actor self-give err = %v; want ErrOutOfTurn", err)
	}
	if err := s.GiveCard(1, domain.CardNope); err != ErrInvalidCard {
		t.Fatalf("unheld give err = %v; want ErrInvalidCard", err)
	}
	if err := s.GiveCard(1, domain.CardMelon); err != nil {
		t.Fatalf("GiveCard: %v", err)
	}

	view = snap(s, 0)
	if view.Phase != PhasePlay || view.CurrentPlayer != 0 {
		t.Fatalf("after favor: phase %s seat %d; favor must not consume the turn", view.Phase, view.CurrentPlayer)
	}
	if indexOf(view.Players[0].Hand, domain.CardMelon) == -1 {
		t.Fatal("actor never received the card")
	}
	if _, ok := rec.lastTo(0, EventReceivedCard); !ok {
		t.Fatal("actor not told which card arrived")
	}
}

func TestFavorFizzlesOnEmptyTarget(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardFavor)
	rigHand(s, 1)

	if err := s.PlayCard(0, domain.CardFavor, false, 1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	resolveWindow(s)

	view := snap(s, 0)
	if view.Phase != PhasePlay || view.CurrentPlayer != 0 {
		t.Fatalf("fizzled favor: phase %s seat %d; want play/0", view.Phase, view.CurrentPlayer)
	}
}

func TestCatComboSteals(t *testing.T) {
	s, rec := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardPotato, domain.CardPotato)
	rigHand(s, 1, domain.CardShuffle)

	if err := s.PlayCard(0, domain.CardPotato, true, 1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	resolveWindow(s)

	view := snap(s, 0)
	if view.Players[1].CardCount != 0 {
		t.Fatalf("target still holds %d cards", view.Players[1].CardCount)
	}
	if indexOf(view.Players[0].Hand, domain.CardShuffle) == -1 {
		t.Fatalf("stolen card missing from actor hand: %v", view.Players[0].Hand)
	}
	evt, ok := rec.lastTo(0, EventStoleCard)
	if !ok {
		t.Fatal("actor not told what was stolen")
	}
	if got := evt.Payload.(StoleCardPayload).Card; got != domain.CardShuffle {
		t.Fatalf("stole_card = %q; want shuffle", got)
	}
	if view.CurrentPlayer != 0 {
		t.Fatal("combo consumed the turn")
	}
}

func TestShuffleKeepsTurn(t *testing.T) {
	s, _ := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardShuffle)

	if err := s.PlayCard(0, domain.CardShuffle, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	resolveWindow(s)

	view := snap(s, 0)
	if view.CurrentPlayer != 0 || view.Phase != PhasePlay {
		t.Fatalf("after shuffle: seat %d phase %s; want 0/play", view.CurrentPlayer, view.Phase)
	}
}

func TestSeeFutureRevealsDrawOrder(t *testing.T) {
	s, rec := newTestSession("ann", "bob")
	rigHand(s, 0, domain.CardFuture)
	rigDeck(s, domain.CardMelon, domain.CardAttack, domain.CardNope, domain.CardSkip)

	if err := s.PlayCard(0, domain.CardFuture, false, -1); err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	resolveWindow(s)

	evt, ok := rec.lastTo(0, EventSeeFuture)
	if !ok {
		t.Fatal("actor never saw the future")
	}
	cards := evt.Payload.(SeeFuturePayload).Cards
	want := []domain.Card{domain.CardSkip, domain.CardNope, domain.CardAttack}
	if len(cards) != 3 || cards[0] != want[0] || cards[1] != want[1] || cards[2] != want[2] {
		t.Fatalf("see_future = %v; want %v", cards, want)
	}
	if _, ok := rec.lastTo(1, EventSeeFuture); ok {
		t.Fatal("see_future leaked to another seat")
	}
	if got := snap(s, 0).CurrentPlayer; got != 0 {
		t.Fatal("see the future consumed the turn")
	}
}

func TestConservationAcrossSequence(t *testing.T) {
	s, _ := newTestSession("ann", "bob", "cid")
	total := totalCards(s)

	check := func(step string) {
		t.Helper()
		if got := totalCards(s); got != total {
			t.Fatalf("%s: total cards %d; want %d", step, got, total)
		}
	}

	rigHand(s, 0, domain.CardAttack, domain.CardDefuse)
	rigHand(s, 1, domain.CardNope, domain.CardBeard)
	rigHand(s, 2, domain.CardFavor, domain.CardSkip)
	total = totalCards(s)

	if err := s.PlayCard(0, domain.CardAttack, false, -1); err != nil {
		t.Fatal(err)
	}
	check("attack played")
	if err := s.PlayNope(1); err != nil {
		t.Fatal(err)
	}
	check("nope voted")
	resolveWindow(s)
	check("window resolved")
	if err := s.DrawCard(0); err != nil {
		t.Fatal(err)
	}
	check("draw")
}
