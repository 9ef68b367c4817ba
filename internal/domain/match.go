package domain

import "time"

// Match - запись завершённого матча
type Match struct {
	ID          int64     `db:"id" json:"id"`
	RoomCode    string    `db:"room_code" json:"room_code"`
	PlayerCount int       `db:"player_count" json:"player_count"`
	Players     []string  `db:"players" json:"players"`
	WinnerName  string    `db:"winner_name" json:"winner_name"`
	TurnCount   int       `db:"turn_count" json:"turn_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
