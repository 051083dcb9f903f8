package game

import (
	"errors"
	"strconv"
	"testing"

	"scopa-game/internal/parser"
	"scopa-game/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(suit shared.Suit, n int) shared.Card { return shared.NewCard(suit, n) }
func d(n int) shared.Card                   { return shared.DenariCard(n) }

// setup builds a match with explicit zones; First is to play.
func setup(first, shuffler, table []shared.Card, deck ...shared.Card) *Match {
	m := &Match{
		ID:      "test",
		Deck:    shared.DeckOf(deck...),
		Table:   table,
		Players: [2]*shared.Player{shared.NewPlayer(), shared.NewPlayer()},
	}
	m.Players[First].Hand = first
	m.Players[Shuffler].Hand = shuffler
	return m
}

// snapshot captures every zone so rejected moves can be checked for mutation.
type snapshot struct {
	deck, table, hand0, hand1, pile0, pile1 []shared.Card
	scopas                                  [2]int
}

func snap(m *Match) snapshot {
	cp := func(cs []shared.Card) []shared.Card { return append([]shared.Card(nil), cs...) }
	return snapshot{
		deck:   cp(m.Deck.Cards),
		table:  cp(m.Table),
		hand0:  cp(m.Players[First].Hand),
		hand1:  cp(m.Players[Shuffler].Hand),
		pile0:  cp(m.Players[First].Pile),
		pile1:  cp(m.Players[Shuffler].Pile),
		scopas: [2]int{m.Players[First].Scopas, m.Players[Shuffler].Scopas},
	}
}

func TestNewMatchFromDeck_Deals334(t *testing.T) {
	m := NewMatchFromDeck(shared.NewDeck())

	assert.Len(t, m.Players[First].Hand, 3)
	assert.Len(t, m.Players[Shuffler].Hand, 3)
	assert.Len(t, m.Table, 4)
	assert.Equal(t, 30, m.Deck.Len())
	assert.Equal(t, 5, m.TurnsRemaining())
	assert.Equal(t, First, m.Turn)
	assert.ElementsMatch(t, shared.NewDeck().Cards, m.AllCards())

	// Canonical deck: top of the deck is the Re di Spade.
	assert.Equal(t, c(shared.Spade, 10), m.Players[First].Hand[0])
}

func TestApplyMove_SumCaptureScopa(t *testing.T) {
	m := setup([]shared.Card{d(7)}, []shared.Card{c(shared.Coppe, 2)}, []shared.Card{d(3), d(4)})

	mv, err := m.ApplyMove("0;0+1")
	require.NoError(t, err)

	assert.True(t, mv.IsCapture())
	assert.True(t, mv.Scopa)
	assert.False(t, mv.Ace)
	assert.Empty(t, m.Table)
	assert.Equal(t, 1, m.Players[First].Scopas)
	assert.ElementsMatch(t, []shared.Card{d(3), d(4), d(7)}, m.Players[First].Pile)
	assert.True(t, m.HasCaptured)
	assert.Equal(t, First, m.LastCapture)
}

func TestApplyMove_SumCaptureLeavesTable(t *testing.T) {
	m := setup(
		[]shared.Card{c(shared.Spade, 9), d(2)},
		[]shared.Card{c(shared.Coppe, 2)},
		[]shared.Card{c(shared.Bastoni, 5), d(6), c(shared.Coppe, 4)},
	)

	mv, err := m.ApplyMove("0;2+0")
	require.NoError(t, err)

	assert.False(t, mv.Scopa)
	assert.Equal(t, []shared.Card{d(6)}, m.Table)
	assert.Zero(t, m.Players[First].Scopas)
	assert.Equal(t, []shared.Card{d(2)}, m.Players[First].Hand)
	assert.ElementsMatch(t, []shared.Card{c(shared.Coppe, 4), c(shared.Bastoni, 5), c(shared.Spade, 9)}, m.Players[First].Pile)
}

func TestApplyMove_AceTakesWholeTable(t *testing.T) {
	m := setup([]shared.Card{d(1), d(5)}, nil, []shared.Card{d(5), c(shared.Coppe, 2)})

	mv, err := m.ApplyMove("0;1")
	require.NoError(t, err)

	assert.True(t, mv.Ace)
	assert.False(t, mv.Scopa)
	assert.Empty(t, m.Table)
	assert.Zero(t, m.Players[First].Scopas)
	assert.ElementsMatch(t, []shared.Card{d(5), c(shared.Coppe, 2), d(1)}, m.Players[First].Pile)
	assert.ElementsMatch(t, []shared.Card{d(5), c(shared.Coppe, 2)}, mv.Captured)
}

func TestApplyMove_AceIgnoresNamedIndices(t *testing.T) {
	m := setup([]shared.Card{c(shared.Spade, 1), d(5)}, nil, []shared.Card{d(4)})

	_, err := m.ApplyMove("0;7+8")
	require.NoError(t, err)
	assert.Empty(t, m.Table)
	assert.Equal(t, []shared.Card{d(4), c(shared.Spade, 1)}, m.Players[First].Pile)
}

func TestApplyMove_AceOnEmptyTable(t *testing.T) {
	m := setup([]shared.Card{c(shared.Bastoni, 1), d(5)}, nil, []shared.Card{})

	mv, err := m.ApplyMove("0;0")
	require.NoError(t, err)
	assert.Empty(t, mv.Captured)
	assert.Equal(t, []shared.Card{c(shared.Bastoni, 1)}, m.Players[First].Pile)
	assert.Zero(t, m.Players[First].Scopas)
	assert.True(t, m.HasCaptured)
}

func TestApplyMove_AceTableDropDoesNotCapture(t *testing.T) {
	m := setup([]shared.Card{d(1), d(5)}, nil, []shared.Card{d(4)})

	mv, err := m.ApplyMove("t0")
	require.NoError(t, err)
	assert.Equal(t, shared.TableDrop, mv.Kind)
	assert.Equal(t, []shared.Card{d(4), d(1)}, m.Table)
	assert.Empty(t, m.Players[First].Pile)
	assert.False(t, m.HasCaptured)
}

func TestApplyMove_TableDrop(t *testing.T) {
	m := setup([]shared.Card{d(2), c(shared.Coppe, 9)}, nil, []shared.Card{d(4)})

	mv, err := m.ApplyMove("t1")
	require.NoError(t, err)
	assert.False(t, mv.IsCapture())
	assert.Equal(t, c(shared.Coppe, 9), mv.Card)
	assert.Equal(t, []shared.Card{d(4), c(shared.Coppe, 9)}, m.Table)
	assert.Equal(t, []shared.Card{d(2)}, m.Players[First].Hand)
}

func TestApplyMove_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     MoveErrorKind
		sentinel error
	}{
		{name: "parse failure", input: "x;1+2", kind: ParseFailure, sentinel: ErrParse},
		{name: "hand index", input: "3;0", kind: HandIndexInvalid, sentinel: ErrHandIndex},
		{name: "hand index on drop", input: "t5", kind: HandIndexInvalid, sentinel: ErrHandIndex},
		{name: "table index", input: "0;0+4", kind: TableIndexInvalid, sentinel: ErrTableIndex},
		{name: "duplicate table index", input: "1;0+0", kind: TableIndexInvalid, sentinel: ErrTableIndex},
		{name: "mismatched values", input: "0;0", kind: MismatchedValues, sentinel: ErrMismatchedValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setup(
				[]shared.Card{d(7), c(shared.Coppe, 4), c(shared.Spade, 1)},
				[]shared.Card{c(shared.Bastoni, 3)},
				[]shared.Card{d(2), d(5), c(shared.Spade, 6)},
				c(shared.Bastoni, 8),
			)
			before := snap(m)

			_, err := m.ApplyMove(tt.input)
			require.Error(t, err)

			var moveErr *MoveError
			require.True(t, errors.As(err, &moveErr))
			assert.Equal(t, tt.kind, moveErr.Kind)
			assert.Equal(t, tt.input, moveErr.Input)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Equal(t, before, snap(m), "rejected move mutated the match")
		})
	}
}

func TestApplyMove_ParseErrorUnwraps(t *testing.T) {
	m := setup([]shared.Card{d(7)}, nil, nil)
	_, err := m.ApplyMove("01;1")
	assert.True(t, errors.Is(err, parser.ErrSyntax))
	assert.False(t, errors.Is(err, ErrHandIndex))
}

func TestApplyMove_RedealOnlyActingHand(t *testing.T) {
	m := setup(
		[]shared.Card{d(9)},
		[]shared.Card{c(shared.Coppe, 2)},
		[]shared.Card{},
		c(shared.Spade, 4), c(shared.Spade, 5), c(shared.Spade, 6), c(shared.Spade, 7),
	)

	_, err := m.ApplyMove("t0")
	require.NoError(t, err)

	assert.Equal(t, []shared.Card{c(shared.Spade, 7), c(shared.Spade, 6), c(shared.Spade, 5)}, m.Players[First].Hand)
	assert.Equal(t, []shared.Card{c(shared.Coppe, 2)}, m.Players[Shuffler].Hand)
	assert.Equal(t, 1, m.Deck.Len())
}

func TestApplyMove_NoRedealFromEmptyDeck(t *testing.T) {
	m := setup([]shared.Card{d(9)}, []shared.Card{c(shared.Coppe, 2)}, []shared.Card{})

	_, err := m.ApplyMove("t0")
	require.NoError(t, err)
	assert.Empty(t, m.Players[First].Hand)
	assert.False(t, m.IsOver())
}

func TestApplyMove_ShortDeckRedealPanics(t *testing.T) {
	m := setup([]shared.Card{d(9)}, []shared.Card{c(shared.Coppe, 2)}, []shared.Card{}, c(shared.Spade, 4), c(shared.Spade, 5))

	assert.Panics(t, func() { _, _ = m.ApplyMove("t0") })
}

func TestApplyMove_DoesNotToggleTurn(t *testing.T) {
	m := setup([]shared.Card{d(9), d(8)}, []shared.Card{c(shared.Coppe, 2)}, nil)
	_, err := m.ApplyMove("t0")
	require.NoError(t, err)
	assert.Equal(t, First, m.Turn)

	m.ToggleTurn()
	assert.Equal(t, Shuffler, m.Turn)
	_, err = m.ApplyMove("t0")
	require.NoError(t, err)
	assert.Empty(t, m.Players[Shuffler].Hand)
}

func TestIsOver_AndSweep(t *testing.T) {
	m := setup([]shared.Card{d(5)}, []shared.Card{c(shared.Coppe, 9)}, []shared.Card{c(shared.Bastoni, 5), c(shared.Spade, 3)})

	_, err := m.ApplyMove("0;0")
	require.NoError(t, err)
	assert.False(t, m.IsOver())
	assert.Nil(t, m.SweepTable(), "sweep before the end is a no-op")

	m.ToggleTurn()
	_, err = m.ApplyMove("t0")
	require.NoError(t, err)
	require.True(t, m.IsOver())
	assert.Len(t, m.Table, 2)

	swept := m.SweepTable()
	assert.ElementsMatch(t, []shared.Card{c(shared.Spade, 3), c(shared.Coppe, 9)}, swept)
	assert.Empty(t, m.Table)
	assert.Len(t, m.Players[First].Pile, 4)
	assert.Empty(t, m.Players[Shuffler].Pile)
	assert.Nil(t, m.SweepTable(), "second sweep is a no-op")
}

func TestSweep_NoCaptureLeavesTable(t *testing.T) {
	m := setup(nil, nil, []shared.Card{d(3)})
	require.True(t, m.IsOver())
	assert.Nil(t, m.SweepTable())
	assert.Equal(t, []shared.Card{d(3)}, m.Table)
}

// greedyMove captures a single equal-valued card with the first hand card when it
// can, and lays it on the table otherwise.
func greedyMove(m *Match) string {
	hand := m.Players[m.Turn].Hand
	for ti, tc := range m.Table {
		if hand[0].Value() == tc.Value() {
			return "0;" + strconv.Itoa(ti)
		}
	}
	return "t0"
}

// playGreedy plays a match to the end, checking the invariants after each move.
func playGreedy(t *testing.T, m *Match) {
	t.Helper()
	for !m.IsOver() {
		require.NotEmpty(t, m.Players[m.Turn].Hand, "acting hand empty before the match ended")
		move := greedyMove(m)
		_, err := m.ApplyMove(move)
		require.NoError(t, err, "move %q", move)
		require.ElementsMatch(t, shared.NewDeck().Cards, m.AllCards(), "conservation broken after %q", move)
		require.LessOrEqual(t, len(m.Players[First].Hand), shared.HandSize)
		require.LessOrEqual(t, len(m.Players[Shuffler].Hand), shared.HandSize)
		m.ToggleTurn()
	}
}

func TestFullMatch_ConservationAndRedealRounds(t *testing.T) {
	m := NewMatchFromDeck(shared.NewDeck())
	redeals := 0
	for !m.IsOver() {
		before := m.Deck.Len()
		_, err := m.ApplyMove(greedyMove(m))
		require.NoError(t, err)
		if m.Deck.Len() != before {
			assert.Equal(t, before-3, m.Deck.Len())
			assert.Len(t, m.Players[m.Turn].Hand, 3)
			redeals++
		}
		m.ToggleTurn()
	}
	assert.Equal(t, 10, redeals, "30 cards make five redeal rounds of two hands")
	m.SweepTable()
	assert.ElementsMatch(t, shared.NewDeck().Cards, m.AllCards())
}

func TestFullMatch_ShuffledConservation(t *testing.T) {
	for i := 0; i < 20; i++ {
		m := NewMatch()
		playGreedy(t, m)
		m.SweepTable()
		require.ElementsMatch(t, shared.NewDeck().Cards, m.AllCards())
	}
}

func TestMatch_String(t *testing.T) {
	m := setup(nil, nil, []shared.Card{d(3), c(shared.Coppe, 10)}, d(4), d(5), d(6), d(7), d(8), d(9))
	s := m.String()
	assert.Contains(t, s, "[0] 3 Denari, [1] Re Coppe")
	assert.Contains(t, s, "Deck: 6 cards (1 turns left)")
}
