// Package websocket implements the live battle feed. The hub fans battle
// results out to the owning player's connections and a compact summary to
// everyone else; there is no client-to-server protocol beyond pings.
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/eren460540/ZyraZoo/internal/repository"
	"github.com/google/uuid"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	userRepo   repository.UserRepository
	mu         sync.RWMutex
}

func NewHub(userRepo repository.UserRepository) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		userRepo:   userRepo,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if !h.stopped {
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop gracefully shuts down the hub and waits for Run to exit
func (h *Hub) Stop() {
	close(h.stop)
	<-h.done
}

// Register adds a connection to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// BroadcastBattleResult delivers the full result to the battling player's
// connections and a feed summary to everyone else. Implements
// service.BattleBroadcaster.
func (h *Hub) BroadcastBattleResult(userID uuid.UUID, payload interface{}) {
	full, err := NewMessage(MessageTypeBattleResult, payload)
	if err != nil {
		log.Printf("ERROR [Hub.BroadcastBattleResult]: %v", err)
		return
	}
	fullBytes, err := json.Marshal(full)
	if err != nil {
		log.Printf("ERROR [Hub.BroadcastBattleResult]: %v", err)
		return
	}

	feedBytes := h.feedSummary(userID, payload)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		var data []byte
		if client.userID == userID {
			data = fullBytes
		} else {
			data = feedBytes
		}
		if data == nil {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop the frame rather than block the hub
		}
	}
}

// feedSummary builds the spectator frame, nil if it cannot be built
func (h *Hub) feedSummary(userID uuid.UUID, payload interface{}) []byte {
	summary := BattleFeedPayload{}
	if user, err := h.userRepo.GetByID(context.Background(), userID); err == nil {
		summary.DisplayName = user.DisplayName
	}

	// Pull the shared fields back out of the service payload
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	var fields struct {
		Won        bool    `json:"won"`
		Rounds     int     `json:"rounds"`
		EnemyPower float64 `json:"enemyPower"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	summary.Won = fields.Won
	summary.Rounds = fields.Rounds
	summary.EnemyPower = fields.EnemyPower

	msg, err := NewMessage(MessageTypeBattleFeed, summary)
	if err != nil {
		return nil
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return nil
	}
	return data
}
