package game

import "kittens_server/internal/domain"

// Player is the per-seat state. Owned exclusively by the session and mutated
// only through validated commands.
type Player struct {
	Name  string
	Alive bool
	Hand  []domain.Card
}

func (p *Player) holds(card domain.Card) bool {
	return indexOf(p.Hand, card) != -1
}

func (p *Player) count(card domain.Card) int {
	n := 0
	for _, c := range p.Hand {
		if c == card {
			n++
		}
	}
	return n
}

// removeOne removes a single copy of card from the hand. Reports false if the
// card is not held.
func (p *Player) removeOne(card domain.Card) bool {
	i := indexOf(p.Hand, card)
	if i == -1 {
		return false
	}
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return true
}

func indexOf(hand []domain.Card, card domain.Card) int {
	for i, c := range hand {
		if c == card {
			return i
		}
	}
	return -1
}
