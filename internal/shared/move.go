package shared

import "strings"

// MoveKind tells a table drop apart from a capture.
type MoveKind int

const (
	TableDrop MoveKind = iota // the played card was laid on the table
	Capture                   // the played card took cards from the table
)

func (k MoveKind) String() string {
	if k == Capture {
		return "capture"
	}
	return "table_drop"
}

// Move describes one applied turn.
type Move struct {
	Kind     MoveKind `json:"kind"`
	Card     Card     `json:"card"`               // The hand card that was played
	Captured []Card   `json:"captured,omitempty"` // Table cards taken; empty for a table drop
	Ace      bool     `json:"ace,omitempty"`      // Capture made by the ace rule
	Scopa    bool     `json:"scopa,omitempty"`    // Capture swept the table with the sum rule
}

// NewTableDrop records a card laid on the table.
func NewTableDrop(card Card) Move {
	return Move{Kind: TableDrop, Card: card}
}

// NewCapture records a capture of the given table cards.
func NewCapture(card Card, captured []Card) Move {
	c := make([]Card, len(captured))
	copy(c, captured)
	return Move{Kind: Capture, Card: card, Captured: c}
}

// IsCapture reports whether the move took cards from the table.
func (m Move) IsCapture() bool {
	return m.Kind == Capture
}

func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString("played ")
	sb.WriteString(m.Card.String())
	switch m.Kind {
	case TableDrop:
		sb.WriteString(" on the table")
	case Capture:
		if len(m.Captured) == 0 {
			sb.WriteString(", took nothing")
			break
		}
		sb.WriteString(", took ")
		for i, c := range m.Captured {
			if i > 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(c.String())
		}
		if m.Scopa {
			sb.WriteString(" (scopa!)")
		}
	}
	return sb.String()
}
