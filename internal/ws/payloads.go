package ws

import (
	"encoding/json"

	"kittens_server/internal/domain"
)

// Message is the outbound wire envelope.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// inbound defers payload decoding until the type is known.
type inbound struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// client → server
type JoinRoomPayload struct {
	Code string `json:"code"`
}

type PlayCardPayload struct {
	Card    domain.Card `json:"card"`
	IsCombo bool        `json:"is_combo"`
	Target  *int        `json:"target,omitempty"`
}

type InsertKittenPayload struct {
	Position int `json:"position"`
}

type GiveCardPayload struct {
	Card domain.Card `json:"card"`
}

// server → client
type RoomCreatedPayload struct {
	Code        string `json:"code"`
	PlayerIndex int    `json:"player_index"`
}

type RoomJoinedPayload struct {
	Code        string `json:"code"`
	PlayerIndex int    `json:"player_index"`
}

type LobbyPayload struct {
	Code    string   `json:"code"`
	Players []string `json:"players"`
}

type GameStartingPayload struct {
	Players []string `json:"players"`
}

type PlayerLeftPayload struct {
	Name string `json:"name"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
