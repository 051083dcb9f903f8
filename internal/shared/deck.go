package shared

import (
	"log"
	"math/rand/v2"
)

// DeckSize is the number of cards in a full Italian deck.
const DeckSize = 40

// Deck represents an ordered pile of cards.
// Cards[0] is the bottom of the deck and the last element is the top.
type Deck struct {
	Cards []Card
}

// NewDeck creates the full 40-card deck in canonical order: rank-major, suit-minor.
// The first card (Asso Denari) sits at the bottom.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// NewShuffledDeck creates a full deck and shuffles it.
func NewShuffledDeck() *Deck {
	d := NewDeck()
	d.Shuffle()
	return d
}

// DeckOf builds a deck from the given cards, bottom first.
func DeckOf(cards ...Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{Cards: c}
}

// Shuffle randomizes the order of cards in the deck (Fisher-Yates).
func (d *Deck) Shuffle() {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// IsEmpty reports whether the deck has been drained.
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}

// Top returns the top card without removing it.
func (d *Deck) Top() (Card, bool) {
	if d.IsEmpty() {
		return Card{}, false
	}
	return d.Cards[len(d.Cards)-1], true
}

// Bottom returns the bottom card without removing it.
func (d *Deck) Bottom() (Card, bool) {
	if d.IsEmpty() {
		return Card{}, false
	}
	return d.Cards[0], true
}

// TakeFromTop removes and returns the top card. Panics on an empty deck.
func (d *Deck) TakeFromTop() Card {
	if d.IsEmpty() {
		log.Panicf("shared: draw from an empty deck")
	}
	last := len(d.Cards) - 1
	c := d.Cards[last]
	d.Cards = d.Cards[:last]
	return c
}

// TakeFromBottom removes and returns the bottom card. Panics on an empty deck.
func (d *Deck) TakeFromBottom() Card {
	if d.IsEmpty() {
		log.Panicf("shared: draw from an empty deck")
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c
}

// PushToTop places a card on top of the deck.
func (d *Deck) PushToTop(c Card) {
	d.Cards = append(d.Cards, c)
}

// PushToBottom places a card under the deck.
func (d *Deck) PushToBottom(c Card) {
	d.Cards = append([]Card{c}, d.Cards...)
}

// MoveAllTo drains the deck into dest, each card going under dest in turn.
func (d *Deck) MoveAllTo(dest *Deck) {
	for _, c := range d.Cards {
		dest.PushToBottom(c)
	}
	d.Cards = nil
}

// Deal takes n cards from the top of the deck, in draw order.
// Asking for more cards than the deck holds is an invariant violation.
func (d *Deck) Deal(n int) []Card {
	if n > len(d.Cards) {
		log.Panicf("shared: not enough cards in deck (%d) to deal %d", len(d.Cards), n)
	}
	dealt := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		dealt = append(dealt, d.TakeFromTop())
	}
	return dealt
}
