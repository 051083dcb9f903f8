package shared

import "github.com/google/uuid"

// Color identifies one of the two persistent sides of a session.
// Colors do not change between matches; the seat they occupy does.
type Color int

const (
	Purple Color = iota
	Green
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Purple {
		return Green
	}
	return Purple
}

func (c Color) String() string {
	switch c {
	case Purple:
		return "Purple"
	case Green:
		return "Green"
	default:
		return "Unknown"
	}
}

// Team represents one side of a session and its running score.
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Score int    `json:"score"`
}

// NewTeam creates a team for the given color with a fresh UUID.
func NewTeam(color Color, name string) *Team {
	if name == "" {
		name = color.String()
	}
	return &Team{
		ID:    uuid.NewString(),
		Name:  name,
		Color: color,
	}
}

// AddScore adds points to the team's running score.
func (t *Team) AddScore(points int) {
	t.Score += points
}
