package ws

import (
	"math/rand"
	"sync"
	"time"

	"kittens_server/internal/game"
	"kittens_server/internal/logger"
	"kittens_server/internal/repository"
)

const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Hub is the room registry: it owns the room-code namespace with explicit
// create/lookup/destroy. Rooms never share state, so distinct rooms are
// processed fully in parallel.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	rng   *rand.Rand

	repo        *repository.MatchRepository // nil when persistence is off
	maxRoomSize int
	gameOpts    game.Options
}

func NewHub(repo *repository.MatchRepository, maxRoomSize int, gameOpts game.Options) *Hub {
	if maxRoomSize <= 0 {
		maxRoomSize = 5
	}
	return &Hub{
		rooms:       make(map[string]*Room),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		repo:        repo,
		maxRoomSize: maxRoomSize,
		gameOpts:    gameOpts,
	}
}

// CreateRoom registers a fresh room and seats the creator as host.
func (h *Hub) CreateRoom(c *Client) {
	if c.Room() != nil {
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: "already in a room"}})
		return
	}

	h.mu.Lock()
	code := h.newCode()
	room := newRoom(code, h, h.repo)
	h.rooms[code] = room
	h.mu.Unlock()
	RoomsActive.Set(float64(h.RoomCount()))

	idx, err := room.addClient(c)
	if err != nil {
		// cannot happen for a fresh room, but keep the registry consistent
		h.destroyRoom(code)
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: err.Error()}})
		return
	}

	logger.Info("room created", "room", code, "host", c.Name)
	c.sendMsg(Message{Type: MsgRoomCreated, Payload: RoomCreatedPayload{Code: code, PlayerIndex: idx}})
	room.broadcastLobby()
}

// JoinRoom seats the client in an existing room by code.
func (h *Hub) JoinRoom(c *Client, code string) {
	if c.Room() != nil {
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: "already in a room"}})
		return
	}

	room, ok := h.Lookup(code)
	if !ok {
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: "room not found"}})
		return
	}

	idx, err := room.addClient(c)
	if err != nil {
		c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: err.Error()}})
		return
	}

	logger.Info("player joined room", "room", code, "player", c.Name, "seat", idx)
	c.sendMsg(Message{Type: MsgRoomJoined, Payload: RoomJoinedPayload{Code: room.Code, PlayerIndex: idx}})
	room.broadcastLobby()
}

// Lookup finds a room by its code.
func (h *Hub) Lookup(code string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[normalizeCode(code)]
	return room, ok
}

// RoomCount reports the number of registered rooms.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}

func (h *Hub) destroyRoom(code string) {
	h.mu.Lock()
	delete(h.rooms, code)
	h.mu.Unlock()
	RoomsActive.Set(float64(h.RoomCount()))
	logger.Info("room destroyed", "room", code)
}

// newCode picks an unused 4-character code. Callers hold h.mu.
func (h *Hub) newCode() string {
	for {
		b := make([]byte, 4)
		for i := range b {
			b[i] = codeAlphabet[h.rng.Intn(len(codeAlphabet))]
		}
		code := string(b)
		if _, taken := h.rooms[code]; !taken {
			return code
		}
	}
}

func normalizeCode(code string) string {
	out := []byte(code)
	for i, ch := range out {
		if 'a' <= ch && ch <= 'z' {
			out[i] = ch - 'a' + 'A'
		}
	}
	return string(out)
}

// StartCleanup periodically drops stale empty rooms.
func (h *Hub) StartCleanup() {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			h.cleanupStaleRooms()
		}
	}()
}

func (h *Hub) cleanupStaleRooms() {
	h.mu.Lock()
	now := time.Now()
	for code, room := range h.rooms {
		room.mu.RLock()
		connected := 0
		for _, st := range room.seats {
			if st.client != nil {
				connected++
			}
		}
		createdAt := room.createdAt
		room.mu.RUnlock()

		if connected == 0 && now.Sub(createdAt) > time.Hour {
			delete(h.rooms, code)
			logger.Info("cleaned up stale room", "room", code)
		}
	}
	h.mu.Unlock()
	RoomsActive.Set(float64(h.RoomCount()))
}
