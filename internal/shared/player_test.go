package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_HandNeverExceedsThree(t *testing.T) {
	p := NewPlayer()
	p.AddCard(DenariCard(1))
	p.AddCard(DenariCard(2))
	p.AddCard(DenariCard(3))
	assert.Panics(t, func() { p.AddCard(DenariCard(4)) })
}

func TestPlayer_RemoveCard(t *testing.T) {
	p := NewPlayer()
	p.Hand = []Card{DenariCard(1), NewCard(Coppe, 2), NewCard(Spade, 3)}

	assert.True(t, p.RemoveCard(NewCard(Coppe, 2)))
	assert.Equal(t, []Card{DenariCard(1), NewCard(Spade, 3)}, p.Hand)
	assert.False(t, p.RemoveCard(NewCard(Coppe, 2)))

	c, ok := p.CardAt(1)
	assert.True(t, ok)
	assert.Equal(t, NewCard(Spade, 3), c)
	_, ok = p.CardAt(2)
	assert.False(t, ok)
	_, ok = p.CardAt(-1)
	assert.False(t, ok)
}

func TestPlayer_PileQueries(t *testing.T) {
	p := NewPlayer()
	p.Capture(DenariCard(7), NewCard(Coppe, 7), DenariCard(10))

	assert.True(t, p.PileHas(DenariCard(7)))
	assert.False(t, p.PileHas(NewCard(Spade, 7)))
	assert.Equal(t, 2, p.CountCoins())
}

func TestTeam_Score(t *testing.T) {
	team := NewTeam(Green, "")
	assert.Equal(t, "Green", team.Name)
	assert.NotEmpty(t, team.ID)

	team.AddScore(4)
	team.AddScore(3)
	assert.Equal(t, 7, team.Score)

	assert.Equal(t, Purple, Green.Opponent())
	assert.Equal(t, Green, Purple.Opponent())
}

func TestMove_String(t *testing.T) {
	drop := NewTableDrop(NewCard(Bastoni, 5))
	assert.False(t, drop.IsCapture())
	assert.Equal(t, "played 5 Bastoni on the table", drop.String())

	capture := NewCapture(DenariCard(7), []Card{DenariCard(3), DenariCard(4)})
	capture.Scopa = true
	assert.True(t, capture.IsCapture())
	assert.Equal(t, "played 7 Denari, took 3 Denari + 4 Denari (scopa!)", capture.String())

	ace := NewCapture(DenariCard(1), nil)
	assert.Equal(t, "played A Denari, took nothing", ace.String())
}
