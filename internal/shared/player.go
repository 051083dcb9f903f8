package shared

import "log"

// HandSize is the number of cards dealt into an empty hand.
const HandSize = 3

// Player holds one seat's cards for a single match.
type Player struct {
	Hand   []Card // At most three held cards
	Pile   []Card // Cards captured so far this match
	Scopas int    // Table sweeps made with the sum rule
}

// NewPlayer creates a player with an empty hand and pile.
func NewPlayer() *Player {
	return &Player{
		Hand: []Card{},
		Pile: []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	if len(p.Hand) >= HandSize {
		log.Panicf("shared: hand already holds %d cards", len(p.Hand))
	}
	p.Hand = append(p.Hand, card)
}

// CardAt returns the hand card at index i.
func (p *Player) CardAt(i int) (Card, bool) {
	if i < 0 || i >= len(p.Hand) {
		return Card{}, false
	}
	return p.Hand[i], true
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// Capture appends cards to the player's pile.
func (p *Player) Capture(cards ...Card) {
	p.Pile = append(p.Pile, cards...)
}

// PileHas reports whether the pile contains the card.
func (p *Player) PileHas(card Card) bool {
	return containsCard(p.Pile, card)
}

// CountCoins returns the number of Denari cards in the pile.
func (p *Player) CountCoins() int {
	n := 0
	for _, c := range p.Pile {
		if c.IsCoin() {
			n++
		}
	}
	return n
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
