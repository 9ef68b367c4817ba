package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

// Smoke check against a running server: auth two guests, create a room,
// join it, start the game and let the host draw one card.
func main() {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	baseURL := fmt.Sprintf("http://127.0.0.1:%s", port)

	tokenA := authGuest(baseURL, "SmokeA")
	tokenB := authGuest(baseURL, "SmokeB")

	dialer := websocket.DefaultDialer

	connA, _, err := dialer.Dial(fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, tokenA), nil)
	if err != nil {
		log.Fatalf("dial A: %v", err)
	}
	defer connA.Close()

	send(connA, map[string]any{"type": "create_room"})
	created := expect(connA, "room_created")
	code := created["payload"].(map[string]any)["code"].(string)
	log.Printf("room created: %s", code)

	connB, _, err := dialer.Dial(fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, tokenB), nil)
	if err != nil {
		log.Fatalf("dial B: %v", err)
	}
	defer connB.Close()

	send(connB, map[string]any{"type": "join_room", "payload": map[string]any{"code": code}})
	expect(connB, "room_joined")
	log.Printf("B joined %s", code)

	send(connA, map[string]any{"type": "start_game"})
	expect(connA, "your_turn")
	log.Println("game started, host to move")

	send(connA, map[string]any{"type": "draw_card"})
	got := expect(connA, "turn_change", "insert_kitten")
	log.Printf("draw resolved with %v", got["type"])

	log.Println("smoke ok")
}

func authGuest(baseURL, name string) string {
	body, _ := json.Marshal(map[string]string{"name": name})
	resp, err := http.Post(baseURL+"/api/v1/auth", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("auth %s: %v", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("auth %s: status %d", name, resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("auth %s: decode: %v", name, err)
	}
	return out.Token
}

func send(conn *websocket.Conn, msg map[string]any) {
	b, _ := json.Marshal(msg)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Fatalf("write: %v", err)
	}
}

// expect reads until one of the wanted event types arrives.
func expect(conn *websocket.Conn, types ...string) map[string]any {
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("read waiting for %v: %v", types, err)
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			continue
		}
		for _, want := range types {
			if obj["type"] == want {
				return obj
			}
		}
	}
}
