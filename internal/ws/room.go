package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"kittens_server/internal/domain"
	"kittens_server/internal/game"
	"kittens_server/internal/logger"
	"kittens_server/internal/repository"
)

const minPlayers = 2

var (
	errRoomStarted = errors.New("game already started")
	errRoomFull    = errors.New("room is full")
	errNotStarted  = errors.New("game not started")
	errNotHost     = errors.New("only host can start")
	errNeedPlayers = errors.New("need 2+ players")
)

// seat binds a join-order position to a connection. The client is nil while
// the seat's player is disconnected mid-game.
type seat struct {
	name   string
	client *Client
}

// Room owns one game session and the seat <-> connection mapping. Lock order
// is session before room: the session emits events under its own lock, so the
// room never calls into the session while holding its own mutex.
type Room struct {
	Code string

	hub       *Hub
	repo      *repository.MatchRepository
	createdAt time.Time

	mu      sync.RWMutex
	seats   []*seat
	started bool
	session *game.Session
	saved   bool
}

func newRoom(code string, hub *Hub, repo *repository.MatchRepository) *Room {
	return &Room{
		Code:      code,
		hub:       hub,
		repo:      repo,
		createdAt: time.Now(),
	}
}

// addClient reserves the next seat for the client. Fails once the game has
// started or the room is at capacity.
func (r *Room) addClient(c *Client) (int, error) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return 0, errRoomStarted
	}
	if len(r.seats) >= r.hub.maxRoomSize {
		r.mu.Unlock()
		return 0, errRoomFull
	}
	idx := len(r.seats)
	r.seats = append(r.seats, &seat{name: c.Name, client: c})
	r.mu.Unlock()

	c.setRoom(r)
	return idx, nil
}

func (r *Room) playerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.seats))
	for i, st := range r.seats {
		names[i] = st.name
	}
	return names
}

func (r *Room) broadcastLobby() {
	r.broadcastMsg(Message{Type: MsgLobby, Payload: LobbyPayload{
		Code:    r.Code,
		Players: r.playerNames(),
	}})
}

func (r *Room) broadcastMsg(msg Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, st := range r.seats {
		if st.client != nil {
			st.client.sendMsg(msg)
		}
	}
}

// Broadcast implements game.Notifier.
func (r *Room) Broadcast(evt game.Event) {
	switch evt.Type {
	case game.EventNopePlayed:
		NopesPlayed.Inc()
	case game.EventExplosion:
		Explosions.Inc()
	case game.EventGameOver:
		GamesFinished.Inc()
	}
	r.broadcastMsg(Message{Type: evt.Type, Payload: evt.Payload})
}

// SendTo implements game.Notifier.
func (r *Room) SendTo(seatIdx int, evt game.Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if seatIdx < 0 || seatIdx >= len(r.seats) {
		return
	}
	if c := r.seats[seatIdx].client; c != nil {
		c.sendMsg(Message{Type: evt.Type, Payload: evt.Payload})
	}
}

func (r *Room) seatOf(c *Client) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, st := range r.seats {
		if st.client == c {
			return i, true
		}
	}
	return 0, false
}

func (r *Room) currentSession() *game.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}

// HandleMessage processes one in-room command from a connected client.
func (r *Room) HandleMessage(c *Client, msg inbound) {
	seatIdx, ok := r.seatOf(c)
	if !ok {
		return
	}

	if msg.Type == MsgStartGame {
		if err := r.startGame(seatIdx); err != nil {
			c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: err.Error()}})
		}
		return
	}

	sess := r.currentSession()
	if sess == nil {
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: errNotStarted.Error()}})
		return
	}

	var err error
	switch msg.Type {
	case MsgPlayCard:
		var p PlayCardPayload
		if jerr := json.Unmarshal(msg.Payload, &p); jerr != nil {
			return
		}
		target := -1
		if p.Target != nil {
			target = *p.Target
		}
		err = sess.PlayCard(seatIdx, p.Card, p.IsCombo, target)

	case MsgPlayNope:
		err = sess.PlayNope(seatIdx)

	case MsgDrawCard:
		err = sess.DrawCard(seatIdx)

	case MsgInsertKitten:
		var p InsertKittenPayload
		if jerr := json.Unmarshal(msg.Payload, &p); jerr != nil {
			return
		}
		err = sess.InsertKitten(seatIdx, p.Position)

	case MsgGiveCard:
		var p GiveCardPayload
		if jerr := json.Unmarshal(msg.Payload, &p); jerr != nil {
			return
		}
		err = sess.GiveCard(seatIdx, p.Card)

	default:
		logger.Debug("unknown message type", "room", r.Code, "type", msg.Type)
		return
	}

	if err != nil {
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: err.Error()}})
		return
	}
	r.maybeSaveResult(sess)
}

// startGame deals a new session. Host only (seat 0), two players minimum.
func (r *Room) startGame(seatIdx int) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return errRoomStarted
	}
	if seatIdx != 0 {
		r.mu.Unlock()
		return errNotHost
	}
	if len(r.seats) < minPlayers {
		r.mu.Unlock()
		return errNeedPlayers
	}
	r.started = true
	names := make([]string, len(r.seats))
	for i, st := range r.seats {
		names[i] = st.name
	}
	r.mu.Unlock()

	r.broadcastMsg(Message{Type: MsgGameStarting, Payload: GameStartingPayload{Players: names}})

	sess := game.NewSession(names, r, r.hub.gameOpts)

	r.mu.Lock()
	r.session = sess
	r.mu.Unlock()

	GamesStarted.Inc()
	logger.Info("game started", "room", r.Code, "players", len(names))
	return nil
}

// handleDisconnect detaches a connection. Before the game a seat is freed;
// mid-game the seat stays in the session and only the connection goes away.
func (r *Room) handleDisconnect(c *Client) {
	r.mu.Lock()
	idx := -1
	for i, st := range r.seats {
		if st.client == c {
			idx = i
			break
		}
	}
	if idx == -1 {
		r.mu.Unlock()
		return
	}
	name := r.seats[idx].name
	preGame := !r.started
	if preGame {
		r.seats = append(r.seats[:idx], r.seats[idx+1:]...)
	} else {
		r.seats[idx].client = nil
	}
	connected := 0
	for _, st := range r.seats {
		if st.client != nil {
			connected++
		}
	}
	sess := r.session
	r.mu.Unlock()

	logger.Info("player disconnected", "room", r.Code, "player", name, "connected", connected)
	r.broadcastMsg(Message{Type: MsgPlayerLeft, Payload: PlayerLeftPayload{Name: name}})
	if preGame {
		r.broadcastLobby()
	}

	if connected == 0 {
		if sess != nil {
			sess.Stop()
		}
		r.hub.destroyRoom(r.Code)
	}
}

// maybeSaveResult archives a finished match once. Persistence is optional;
// without a repository the result is only logged.
func (r *Room) maybeSaveResult(sess *game.Session) {
	if !sess.Ended() {
		return
	}

	r.mu.Lock()
	if r.saved {
		r.mu.Unlock()
		return
	}
	r.saved = true
	r.mu.Unlock()

	winner := sess.Winner()
	logger.Info("game finished", "room", r.Code, "winner", winner)

	if r.repo == nil {
		return
	}
	match := &domain.Match{
		RoomCode:    r.Code,
		PlayerCount: len(sess.PlayerNames()),
		Players:     sess.PlayerNames(),
		WinnerName:  winner,
		TurnCount:   sess.TurnCount(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.repo.Create(ctx, match); err != nil {
			logger.Error("match archive failed", "room", r.Code, "error", err)
		}
	}()
}
