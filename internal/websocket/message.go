package websocket

import (
	"encoding/json"
	"time"
)

type MessageType string

const (
	// Server to Client
	MessageTypeBattleResult MessageType = "BATTLE_RESULT"
	MessageTypeBattleFeed   MessageType = "BATTLE_FEED"
	MessageTypeError        MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// BattleFeedPayload is the compact summary every connected client sees
// when any player finishes a battle.
type BattleFeedPayload struct {
	DisplayName string  `json:"displayName"`
	Won         bool    `json:"won"`
	Rounds      int     `json:"rounds"`
	EnemyPower  float64 `json:"enemyPower"`
}
