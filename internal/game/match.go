package game

import (
	"fmt"
	"log"
	"strings"

	"scopa-game/internal/parser"
	"scopa-game/internal/shared"

	"github.com/google/uuid"
)

// Turn names the two seats of a match, independent of which color sits in them.
type Turn int

const (
	First    Turn = iota // plays first, opposite the dealer
	Shuffler             // the dealer
)

// Other returns the opposite seat.
func (t Turn) Other() Turn {
	if t == First {
		return Shuffler
	}
	return First
}

func (t Turn) String() string {
	if t == First {
		return "First"
	}
	return "Shuffler"
}

// TableDealSize is the number of cards laid face up when a match starts.
const TableDealSize = 4

// Match holds one deal of cards: the deck, the table and both seats.
// Exported fields are for rendering and tests; mutate only through ApplyMove.
type Match struct {
	ID          string
	Deck        *shared.Deck
	Table       []shared.Card
	Players     [2]*shared.Player // indexed by Turn
	Turn        Turn
	LastCapture Turn // seat that made the most recent capture
	HasCaptured bool // false until someone captures
	swept       bool
}

// NewMatch shuffles a fresh deck and deals it.
func NewMatch() *Match {
	return NewMatchFromDeck(shared.NewShuffledDeck())
}

// NewMatchFromDeck deals three cards to First, three to Shuffler and four to the
// table, all from the top of the given deck.
func NewMatchFromDeck(deck *shared.Deck) *Match {
	m := &Match{
		ID:      uuid.NewString(),
		Deck:    deck,
		Players: [2]*shared.Player{shared.NewPlayer(), shared.NewPlayer()},
		Turn:    First,
	}
	m.Players[First].Hand = deck.Deal(shared.HandSize)
	m.Players[Shuffler].Hand = deck.Deal(shared.HandSize)
	m.Table = deck.Deal(TableDealSize)
	return m
}

// Player returns the seat's player.
func (m *Match) Player(t Turn) *shared.Player {
	return m.Players[t]
}

// ToggleTurn passes play to the other seat. ApplyMove never does this itself.
func (m *Match) ToggleTurn() {
	m.Turn = m.Turn.Other()
}

// ApplyMove parses and applies one move for the seat whose turn it is.
// On error the match is left untouched.
func (m *Match) ApplyMove(text string) (shared.Move, error) {
	pm, err := parser.Parse(text)
	if err != nil {
		return shared.Move{}, newMoveError(ParseFailure, text, err)
	}

	player := m.Players[m.Turn]
	card, ok := player.CardAt(pm.Hand)
	if !ok {
		return shared.Move{}, newMoveErrorf(HandIndexInvalid, text,
			"index %d, hand holds %d cards", pm.Hand, len(player.Hand))
	}

	var mv shared.Move
	switch {
	case pm.IsTableDrop():
		m.Table = append(m.Table, card)
		mv = shared.NewTableDrop(card)

	case card.IsAce():
		// The ace takes the whole table whatever indices were named.
		taken := m.Table
		m.Table = []shared.Card{}
		player.Capture(taken...)
		player.Capture(card)
		mv = shared.NewCapture(card, taken)
		mv.Ace = true
		m.recordCapture()

	default:
		taken, rest, err := m.pickTable(text, pm.Table)
		if err != nil {
			return shared.Move{}, err
		}
		sum := 0
		for _, c := range taken {
			sum += c.Value()
		}
		if sum != card.Value() {
			return shared.Move{}, newMoveErrorf(MismatchedValues, text,
				"%s is worth %d, table cards add up to %d", card, card.Value(), sum)
		}
		m.Table = rest
		player.Capture(taken...)
		player.Capture(card)
		mv = shared.NewCapture(card, taken)
		if len(m.Table) == 0 {
			player.Scopas++
			mv.Scopa = true
		}
		m.recordCapture()
	}

	if !player.RemoveCard(card) {
		log.Panicf("game: played card %s vanished from hand", card)
	}
	m.redeal(player)
	return mv, nil
}

// pickTable resolves capture indices into the chosen cards and the cards left behind.
func (m *Match) pickTable(text string, indices []int) (taken, rest []shared.Card, err error) {
	chosen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(m.Table) {
			return nil, nil, newMoveErrorf(TableIndexInvalid, text,
				"index %d, table holds %d cards", i, len(m.Table))
		}
		if chosen[i] {
			return nil, nil, newMoveErrorf(TableIndexInvalid, text, "index %d named twice", i)
		}
		chosen[i] = true
		taken = append(taken, m.Table[i])
	}
	rest = make([]shared.Card, 0, len(m.Table)-len(taken))
	for i, c := range m.Table {
		if !chosen[i] {
			rest = append(rest, c)
		}
	}
	return taken, rest, nil
}

func (m *Match) recordCapture() {
	m.LastCapture = m.Turn
	m.HasCaptured = true
}

// redeal refills an emptied hand from the deck. The other hand is not touched.
// A deck holding fewer than a full hand panics in Deal.
func (m *Match) redeal(p *shared.Player) {
	if len(p.Hand) > 0 || m.Deck.IsEmpty() {
		return
	}
	for _, c := range m.Deck.Deal(shared.HandSize) {
		p.AddCard(c)
	}
}

// IsOver reports whether the deck and both hands are exhausted.
func (m *Match) IsOver() bool {
	return m.Deck.IsEmpty() &&
		len(m.Players[First].Hand) == 0 &&
		len(m.Players[Shuffler].Hand) == 0
}

// SweepTable gives the cards left on the table to the last seat that captured.
// It only acts once, on a finished match, and returns the awarded cards.
func (m *Match) SweepTable() []shared.Card {
	if !m.IsOver() || m.swept {
		return nil
	}
	m.swept = true
	if !m.HasCaptured || len(m.Table) == 0 {
		return nil
	}
	left := m.Table
	m.Table = []shared.Card{}
	m.Players[m.LastCapture].Capture(left...)
	return left
}

// Tally scores the two piles.
func (m *Match) Tally() PointTally {
	return Tally(m.Players[First], m.Players[Shuffler])
}

// TurnsRemaining is the number of full redeal rounds the deck still holds.
func (m *Match) TurnsRemaining() int {
	return m.Deck.Len() / (2 * shared.HandSize)
}

// AllCards lists every card in every zone of the match.
func (m *Match) AllCards() []shared.Card {
	all := make([]shared.Card, 0, shared.DeckSize)
	all = append(all, m.Deck.Cards...)
	all = append(all, m.Table...)
	for _, p := range m.Players {
		all = append(all, p.Hand...)
		all = append(all, p.Pile...)
	}
	return all
}

func (m *Match) String() string {
	var sb strings.Builder
	sb.WriteString("Table: ")
	if len(m.Table) == 0 {
		sb.WriteString("(empty)")
	}
	for i, c := range m.Table {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[%d] %s", i, c)
	}
	fmt.Fprintf(&sb, "\nDeck: %d cards (%d turns left)", m.Deck.Len(), m.TurnsRemaining())
	fmt.Fprintf(&sb, "\nScope: First %d, Shuffler %d",
		m.Players[First].Scopas, m.Players[Shuffler].Scopas)
	return sb.String()
}
