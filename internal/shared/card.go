package shared

import (
	"fmt"
	"log"
)

// Suit represents the suit of a card (Denari, Coppe, Bastoni, Spade).
type Suit string

const (
	Denari  Suit = "Denari"  // coins
	Coppe   Suit = "Coppe"   // cups
	Bastoni Suit = "Bastoni" // clubs
	Spade   Suit = "Spade"   // swords
)

// Suits lists the four suits in canonical deck order.
var Suits = [4]Suit{Denari, Coppe, Bastoni, Spade}

// Rank is the printed rank of a card: 1-7 for the numeric cards plus the three faces.
type Rank int

const (
	Asso    Rank = 1
	Fante   Rank = 8  // Knave
	Cavallo Rank = 9  // Knight
	Re      Rank = 10 // King
)

// Ranks lists the ten ranks in canonical deck order.
var Ranks = [10]Rank{1, 2, 3, 4, 5, 6, 7, Fante, Cavallo, Re}

// Value maps the faces to 8/9/10; numeric ranks are worth themselves.
func (r Rank) Value() int {
	return int(r)
}

// IsFace reports whether the rank is Fante, Cavallo or Re.
func (r Rank) IsFace() bool {
	return r >= Fante
}

func (r Rank) String() string {
	switch r {
	case Asso:
		return "A"
	case Fante:
		return "Fante"
	case Cavallo:
		return "Cavallo"
	case Re:
		return "Re"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a single card of the 40-card Italian deck.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard builds a card from its suit and a rank in 1-10.
// Any other rank is a programming error and panics.
func NewCard(suit Suit, n int) Card {
	if n < 1 || n > 10 {
		log.Panicf("shared: card rank %d out of range 1-10", n)
	}
	return Card{Suit: suit, Rank: Rank(n)}
}

// DenariCard builds the coin card of rank n.
func DenariCard(n int) Card {
	return NewCard(Denari, n)
}

// Value is the capture value of the card.
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce reports whether the card is a numeric 1.
func (c Card) IsAce() bool {
	return c.Rank == Asso
}

// IsCoin reports whether the card belongs to the Denari suit.
func (c Card) IsCoin() bool {
	return c.Suit == Denari
}

func (c Card) String() string {
	return c.Rank.String() + " " + string(c.Suit)
}
