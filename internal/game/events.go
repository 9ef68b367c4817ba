package game

import "kittens_server/internal/domain"

// Event types emitted by a session. Recipient-only events are delivered via
// Notifier.SendTo; the rest are broadcast to every seat.
const (
	EventGameState      = "game_state"
	EventTurnChange     = "turn_change"
	EventYourTurn       = "your_turn"
	EventExplosion      = "explosion"
	EventInsertKitten   = "insert_kitten"
	EventSeeFuture      = "see_future"
	EventGiveCardPrompt = "give_card"
	EventStoleCard      = "stole_card"
	EventReceivedCard   = "received_card"
	EventNopeWindowOpen = "nope_window_open"
	EventNopePlayed     = "nope_played"
	EventGameOver       = "game_over"
)

// Event is a single outbound notification. Payload is a JSON-marshalable
// struct from this package.
type Event struct {
	Type    string
	Payload any
}

// Notifier delivers session events to connected seats. Implementations must
// not block: the session calls these while holding its own lock.
type Notifier interface {
	Broadcast(evt Event)
	SendTo(seat int, evt Event)
}

// TurnChangePayload announces whose turn it is and how many turn-units they owe.
type TurnChangePayload struct {
	PlayerIndex int    `json:"player_index"`
	Player      string `json:"player"`
	TurnsLeft   int    `json:"turns_left"`
}

// ExplosionPayload announces a drawn exploding kitten.
type ExplosionPayload struct {
	Player string `json:"player"`
}

// InsertKittenPayload prompts the defusing player for a reinsertion depth.
type InsertKittenPayload struct {
	DeckSize int `json:"deck_size"`
}

// SeeFuturePayload reveals the top of the deck to the actor only, in draw order.
type SeeFuturePayload struct {
	Cards []domain.Card `json:"cards"`
}

// GiveCardPromptPayload asks the favor target to choose a card to hand over.
type GiveCardPromptPayload struct {
	From      string `json:"from"`
	FromIndex int    `json:"from_index"`
}

// StoleCardPayload tells a combo actor which card they stole.
type StoleCardPayload struct {
	Card domain.Card `json:"card"`
	From string      `json:"from"`
}

// ReceivedCardPayload tells a favor actor which card they were given.
type ReceivedCardPayload struct {
	Card domain.Card `json:"card"`
	From string      `json:"from"`
}

// NopeWindowOpenPayload announces an interrupt window and its deadline
// (unix milliseconds; the client countdown is display only, the server
// deadline is authoritative).
type NopeWindowOpenPayload struct {
	Card    domain.Card `json:"card"`
	Player  string      `json:"player"`
	IsCombo bool        `json:"is_combo"`
	EndsAt  int64       `json:"ends_at"`
}

// NopePlayedPayload announces a suppression vote and the extended deadline.
type NopePlayedPayload struct {
	Player    string `json:"player"`
	NopeCount int    `json:"nope_count"`
	EndsAt    int64  `json:"ends_at"`
}

// GameOverPayload announces the winner.
type GameOverPayload struct {
	Winner string `json:"winner"`
}
