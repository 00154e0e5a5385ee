package utility

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Simple Hub to hold active connections: Map[UserID] -> Connection
var (
	Clients   = make(map[string]*websocket.Conn)
	ClientsMu sync.Mutex // Mutex to prevent race conditions
	Upgrader  = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Allow CORS for development
		CheckOrigin: func(r *http.Request) bool { return true },
	}
)

// PlanEvent tells a connected client which plan kind changed so the UI can
// refetch it.
type PlanEvent struct {
	Kind   string `json:"kind"` // workout | nutrition | grocery
	Action string `json:"action"`
}

// Register a new client connection
func RegisterClient(userID string, conn *websocket.Conn) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	Clients[userID] = conn
	log.Info().Str("user_id", userID).Msg("WebSocket Client Connected")
}

// Unregister a client (when they close the app)
func UnregisterClient(userID string) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	if _, ok := Clients[userID]; ok {
		delete(Clients, userID)
		log.Info().Str("user_id", userID).Msg("WebSocket Client Disconnected")
	}
}

// NotifyPlanChanged pushes a plan-change event to one user's connection, if
// any. Delivery is best effort; a dead connection is dropped.
func NotifyPlanChanged(userID, kind, action string) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()

	conn, ok := Clients[userID]
	if !ok {
		return
	}

	payload, err := json.Marshal(PlanEvent{Kind: kind, Action: action})
	if err != nil {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		log.Error().Err(err).Msg("Failed to send WS message, removing client")
		conn.Close()
		delete(Clients, userID)
	}
}
