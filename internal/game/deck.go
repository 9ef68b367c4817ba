package game

import (
	"math/rand"

	"kittens_server/internal/domain"
)

// Deck is an ordered stack of card tokens. The top of the deck is the end of
// the slice.
type Deck struct {
	cards []domain.Card
	rng   *rand.Rand
}

// NewDeck wraps the given cards as a deck. The slice is owned by the deck
// afterwards.
func NewDeck(cards []domain.Card, rng *rand.Rand) *Deck {
	return &Deck{cards: cards, rng: rng}
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Shuffle permutes the deck uniformly at random.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// DrawTop removes and returns the top card. ok is false if the deck is empty.
func (d *Deck) DrawTop() (card domain.Card, ok bool) {
	if len(d.cards) == 0 {
		return "", false
	}
	card = d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// InsertAtDepth inserts a card so that exactly depth cards remain above it.
// Depth is clamped to [0, len].
func (d *Deck) InsertAtDepth(card domain.Card, depth int) {
	if depth < 0 {
		depth = 0
	}
	if depth > len(d.cards) {
		depth = len(d.cards)
	}
	at := len(d.cards) - depth
	d.cards = append(d.cards, "")
	copy(d.cards[at+1:], d.cards[at:])
	d.cards[at] = card
}

// PeekTop returns up to n cards in will-be-drawn order (nearest draw first)
// without removing them.
func (d *Deck) PeekTop(n int) []domain.Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	out := make([]domain.Card, n)
	for i := 0; i < n; i++ {
		out[i] = d.cards[len(d.cards)-1-i]
	}
	return out
}

// Push places a card on top of the deck.
func (d *Deck) Push(card domain.Card) {
	d.cards = append(d.cards, card)
}
