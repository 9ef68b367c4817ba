package domain

// Card is a card token. Cards carry no per-instance identity; two cards of
// the same type are interchangeable.
type Card string

const (
	CardExploding Card = "exploding"
	CardDefuse    Card = "defuse"
	CardNope      Card = "nope"
	CardAttack    Card = "attack"
	CardSkip      Card = "skip"
	CardFavor     Card = "favor"
	CardShuffle   Card = "shuffle"
	CardFuture    Card = "future"

	// Cat cards have no effect alone; a matching pair steals a random card.
	CardTacocat Card = "tacocat"
	CardPotato  Card = "potato"
	CardBeard   Card = "beard"
	CardRainbow Card = "rainbow"
	CardMelon   Card = "melon"
)

var catCards = map[Card]bool{
	CardTacocat: true,
	CardPotato:  true,
	CardBeard:   true,
	CardRainbow: true,
	CardMelon:   true,
}

// IsCat reports whether the card is one of the five combo cat variants.
func (c Card) IsCat() bool {
	return catCards[c]
}

// Valid reports whether the token names a known card type.
func (c Card) Valid() bool {
	switch c {
	case CardExploding, CardDefuse, CardNope, CardAttack, CardSkip,
		CardFavor, CardShuffle, CardFuture:
		return true
	}
	return c.IsCat()
}

var cardNames = map[Card]string{
	CardExploding: "Exploding Kitten",
	CardDefuse:    "Defuse",
	CardNope:      "Nope",
	CardAttack:    "Attack",
	CardSkip:      "Skip",
	CardFavor:     "Favor",
	CardShuffle:   "Shuffle",
	CardFuture:    "See the Future",
	CardTacocat:   "Taco Cat",
	CardPotato:    "Hairy Potato Cat",
	CardBeard:     "Beard Cat",
	CardRainbow:   "Rainbow Cat",
	CardMelon:     "Cattermelon",
}

// DisplayName returns the human readable card name used in the game log.
func (c Card) DisplayName() string {
	if name, ok := cardNames[c]; ok {
		return name
	}
	return string(c)
}

// baseDeckCounts holds the multiplicities of the base deck before exploding
// and defuse tokens are mixed in.
var baseDeckCounts = []struct {
	card  Card
	count int
}{
	{CardNope, 5},
	{CardAttack, 4},
	{CardSkip, 4},
	{CardFavor, 4},
	{CardShuffle, 4},
	{CardFuture, 5},
	{CardTacocat, 4},
	{CardPotato, 4},
	{CardBeard, 4},
	{CardRainbow, 4},
	{CardMelon, 4},
}

// BaseDeck returns a fresh unshuffled base deck. It contains no exploding or
// defuse tokens; those are added during session setup.
func BaseDeck() []Card {
	deck := make([]Card, 0, 46)
	for _, e := range baseDeckCounts {
		for i := 0; i < e.count; i++ {
			deck = append(deck, e.card)
		}
	}
	return deck
}
