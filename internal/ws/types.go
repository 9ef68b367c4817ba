package ws

const (
	// client -> server
	MsgCreateRoom   = "create_room"
	MsgJoinRoom     = "join_room"
	MsgStartGame    = "start_game"
	MsgPlayCard     = "play_card"
	MsgPlayNope     = "play_nope"
	MsgDrawCard     = "draw_card"
	MsgInsertKitten = "insert_kitten"
	MsgGiveCard     = "give_card"

	// server -> client (room lifecycle; in-game events come from internal/game)
	MsgRoomCreated  = "room_created"
	MsgRoomJoined   = "room_joined"
	MsgLobby        = "lobby"
	MsgGameStarting = "game_starting"
	MsgPlayerLeft   = "player_left"
	MsgError        = "error"
)
