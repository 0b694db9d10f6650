package realtime

import (
	"api/metrics"
	"api/models"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

var (
	scoreboardClients = make(map[string]map[*websocket.Conn]bool) // Map of competition ID to connected clients
	broadcast         = make(chan ScoreUpdate)                    // Broadcast channel for score updates
	mutex             sync.Mutex                                  // Mutex to protect scoreboardClients map
)

// ScoreUpdate carries a scored participant to live scoreboard viewers
type ScoreUpdate struct {
	CompetitionID string             `json:"competition_id"`
	Participant   models.Participant `json:"participant"`
	UpdateType    string             `json:"update_type"` // "scored" or "withdrawn"
}

// RegisterClient adds a WebSocket client to a competition scoreboard
func RegisterClient(competitionID string, conn *websocket.Conn) {
	mutex.Lock()
	if scoreboardClients[competitionID] == nil {
		scoreboardClients[competitionID] = make(map[*websocket.Conn]bool)
	}
	scoreboardClients[competitionID][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a competition scoreboard
func UnregisterClient(competitionID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := scoreboardClients[competitionID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(scoreboardClients, competitionID)
		}
	}
	mutex.Unlock()
}

// BroadcastScoreUpdate sends an update to every client watching the
// competition's scoreboard
func BroadcastScoreUpdate(update ScoreUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := scoreboardClients[update.CompetitionID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
			metrics.ScoreBroadcasts.Inc()
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
