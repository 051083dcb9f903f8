package protocol

import (
	"encoding/json"
	"io"

	"scopa-game/internal/shared"
)

// Message types written to the transcript.
const (
	TypeMatchStarted = "match_started"
	TypeMovePlayed   = "move_played"
	TypeMoveRejected = "move_rejected"
	TypeMatchOver    = "match_over"
	TypeGameOver     = "game_over"
)

// Message represents one transcript entry.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "move_played")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload
}

type MatchStartedPayload struct {
	GameID      string        `json:"game_id"`
	MatchID     string        `json:"match_id"`
	MatchNumber int           `json:"match_number"`
	First       string        `json:"first"`  // color in the First seat
	Dealer      string        `json:"dealer"` // color in the Shuffler seat
	Table       []shared.Card `json:"table"`
}

type MovePlayedPayload struct {
	Color          string        `json:"color"`
	Input          string        `json:"input"`
	Move           shared.Move   `json:"move"`
	Table          []shared.Card `json:"table"`
	TurnsRemaining int           `json:"turns_remaining"`
}

type MoveRejectedPayload struct {
	Color   string `json:"color"`
	Input   string `json:"input"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// CategoryResult names the color that took a scoring category, empty on a tie.
type CategoryResult struct {
	Category string `json:"category"`
	Winner   string `json:"winner,omitempty"`
	Points   int    `json:"points"`
}

type MatchOverPayload struct {
	MatchID     string           `json:"match_id"`
	Scopas      map[string]int   `json:"scopas"`
	Categories  []CategoryResult `json:"categories"`
	MatchPoints map[string]int   `json:"match_points"`
	TotalScores map[string]int   `json:"total_scores"`
}

type GameOverPayload struct {
	Winner       string `json:"winner"`
	WinningScore int    `json:"winning_score"`
	LosingScore  int    `json:"losing_score"`
	FullNapoli   bool   `json:"full_napoli"`
}

// NewMessage creates a JSON message.
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Message{Type: msgType, Payload: payloadBytes})
}

// Transcript writes messages as JSON lines.
type Transcript struct {
	w io.Writer
}

// NewTranscript writes to w.
func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

// Emit encodes and writes one message followed by a newline.
func (t *Transcript) Emit(msgType string, payload interface{}) error {
	b, err := NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	_, err = t.w.Write(append(b, '\n'))
	return err
}
