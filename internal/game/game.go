package game

import (
	"log/slog"

	"scopa-game/internal/shared"

	"github.com/google/uuid"
)

// GameState represents the lifecycle phase of a session.
type GameState string

const (
	Playing   GameState = "Playing"   // Moves are being made in the current match
	MatchOver GameState = "MatchOver" // The current match is exhausted and tallied
	GameOver  GameState = "GameOver"  // A side has won the session
)

// DefaultWinThreshold is the running score a side must exceed to win.
const DefaultWinThreshold = 20

// Game is a session of repeated matches between two colors.
type Game struct {
	ID           string
	Teams        [2]*shared.Team // indexed by Color
	WhoIsFirst   shared.Color    // color holding the First seat this match
	CurrentMatch *Match
	MatchNumber  int
	GameState    GameState
	WinThreshold int

	tally    *PointTally
	recorded bool
	rotated  bool
	last     MatchResult
	deal     func() *Match
	logger   *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithWinThreshold overrides DefaultWinThreshold.
func WithWinThreshold(n int) Option {
	return func(g *Game) { g.WinThreshold = n }
}

// WithFirstColor chooses which color takes the First seat in the opening match.
func WithFirstColor(c shared.Color) Option {
	return func(g *Game) { g.WhoIsFirst = c }
}

// WithTeamNames sets display names for Purple and Green.
func WithTeamNames(purple, green string) Option {
	return func(g *Game) {
		g.Teams[shared.Purple].Name = nameOr(purple, shared.Purple)
		g.Teams[shared.Green].Name = nameOr(green, shared.Green)
	}
}

// WithDealer replaces the shuffled deal used for every match.
func WithDealer(deal func() *Match) Option {
	return func(g *Game) { g.deal = deal }
}

// NewGame starts a session and deals its first match.
func NewGame(opts ...Option) *Game {
	g := &Game{
		ID: uuid.NewString(),
		Teams: [2]*shared.Team{
			shared.NewTeam(shared.Purple, ""),
			shared.NewTeam(shared.Purple.Opponent(), ""),
		},
		WhoIsFirst:   shared.Purple,
		WinThreshold: DefaultWinThreshold,
		deal:         NewMatch,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.startMatch()
	return g
}

func (g *Game) startMatch() {
	g.CurrentMatch = g.deal()
	g.MatchNumber++
	g.GameState = Playing
	g.tally = nil
	g.recorded = false
	g.rotated = false
	g.logger.Info("match started",
		"game", g.ID,
		"match", g.CurrentMatch.ID,
		"number", g.MatchNumber,
		"first", g.WhoIsFirst.String(),
		"dealer", g.WhoIsFirst.Opponent().String())
}

// MakeMove applies a move for the color whose turn it is.
// Rejected moves are returned as *MoveError and change nothing.
func (g *Game) MakeMove(text string) (shared.Move, error) {
	if g.GameState == GameOver {
		return shared.Move{}, ErrGameOver
	}
	if g.CurrentMatch.IsOver() {
		return shared.Move{}, ErrMatchOver
	}
	return g.CurrentMatch.ApplyMove(text)
}

// ToggleTurn passes play to the other seat.
func (g *Game) ToggleTurn() {
	g.CurrentMatch.ToggleTurn()
}

// ColorPlaying returns the color whose move it is.
func (g *Game) ColorPlaying() shared.Color {
	return g.ColorOf(g.CurrentMatch.Turn)
}

// ColorOf maps a seat of the current match to its color.
func (g *Game) ColorOf(t Turn) shared.Color {
	if t == First {
		return g.WhoIsFirst
	}
	return g.WhoIsFirst.Opponent()
}

// SeatOf maps a color to its seat in the current match.
func (g *Game) SeatOf(c shared.Color) Turn {
	if c == g.WhoIsFirst {
		return First
	}
	return Shuffler
}

// ToggleWhoseFirst rotates the deal between colors. It is only allowed between
// RecordMatch and NextMatch; NextMatch skips its own rotation once this was called.
func (g *Game) ToggleWhoseFirst() error {
	if g.GameState == GameOver {
		return ErrGameOver
	}
	if !g.recorded {
		return ErrMatchNotRecorded
	}
	g.WhoIsFirst = g.WhoIsFirst.Opponent()
	g.rotated = true
	return nil
}

// IsMatchOver sweeps the leftover table to the last capturer and tallies the
// match once it is exhausted. The tally is computed once and then cached.
func (g *Game) IsMatchOver() (PointTally, bool) {
	if !g.CurrentMatch.IsOver() {
		return PointTally{}, false
	}
	if g.tally == nil {
		swept := g.CurrentMatch.SweepTable()
		t := g.CurrentMatch.Tally()
		g.tally = &t
		if g.GameState == Playing {
			g.GameState = MatchOver
		}
		g.logger.Debug("match exhausted",
			"match", g.CurrentMatch.ID,
			"swept", len(swept),
			"last_capture", g.ColorOf(g.CurrentMatch.LastCapture).String())
	}
	return *g.tally, true
}

// Points sums a seat's score for the match: its scope, one point per category
// won, plus the napoli magnitude.
func (t PointTally) Points(seat Turn) int {
	p := t.Scopas[seat]
	for _, v := range []Verdict{t.NumCards, t.Coins, t.SetteBello, t.ReBello, t.Primiera} {
		if v.WonBy(seat) {
			p++
		}
	}
	return p + t.Napoli.PointsFor(seat)
}

// MatchResult is a tally folded into the running score.
type MatchResult struct {
	Points     [2]int // indexed by Color
	FullNapoli bool
	Winner     *Result // nil while the session continues
}

// RecordMatch adds the finished match's tally to each color's running score and
// settles the session if a winner now exists. Recording twice is a no-op.
func (g *Game) RecordMatch() (MatchResult, error) {
	if g.recorded {
		return g.last, nil
	}
	t, over := g.IsMatchOver()
	if !over {
		return MatchResult{}, ErrMatchNotOver
	}
	var res MatchResult
	for _, seat := range []Turn{First, Shuffler} {
		c := g.ColorOf(seat)
		pts := t.Points(seat)
		res.Points[c] = pts
		g.Teams[c].AddScore(pts)
	}
	g.recorded = true

	if w, ok := g.Winner(); ok {
		res.FullNapoli = w.FullNapoli
		res.Winner = &w
		g.GameState = GameOver
		if w.FullNapoli {
			g.logger.Info("full napoli", "game", g.ID, "winner", w.Color.String())
		}
		g.logger.Info("game over",
			"game", g.ID,
			"winner", w.Color.String(),
			"winning_score", w.WinningScore,
			"losing_score", w.LosingScore)
	}
	g.logger.Info("match over",
		"match", g.CurrentMatch.ID,
		shared.Purple.String(), res.Points[shared.Purple],
		shared.Green.String(), res.Points[shared.Green])
	g.last = res
	return res, nil
}

// Result names the session winner.
type Result struct {
	Color        shared.Color
	WinningScore int
	LosingScore  int
	FullNapoli   bool
}

// Winner reports the session winner from the recorded scores. A full napoli in
// a recorded match wins outright; otherwise a side must exceed the threshold,
// and if both do, the strictly higher score wins.
func (g *Game) Winner() (Result, bool) {
	if g.recorded {
		for _, seat := range []Turn{First, Shuffler} {
			if HasFullNapoli(g.CurrentMatch.Players[seat].Pile) {
				c := g.ColorOf(seat)
				return g.resultFor(c, true), true
			}
		}
	}

	purple, green := g.Score(shared.Purple), g.Score(shared.Green)
	overP, overG := purple > g.WinThreshold, green > g.WinThreshold
	switch {
	case overP && !overG:
		return g.resultFor(shared.Purple, false), true
	case overG && !overP:
		return g.resultFor(shared.Green, false), true
	case overP && overG && purple > green:
		return g.resultFor(shared.Purple, false), true
	case overP && overG && green > purple:
		return g.resultFor(shared.Green, false), true
	default:
		return Result{}, false
	}
}

func (g *Game) resultFor(c shared.Color, fullNapoli bool) Result {
	return Result{
		Color:        c,
		WinningScore: g.Score(c),
		LosingScore:  g.Score(c.Opponent()),
		FullNapoli:   fullNapoli,
	}
}

// NextMatch rotates the deal and starts a fresh match.
func (g *Game) NextMatch() error {
	if _, ok := g.Winner(); ok || g.GameState == GameOver {
		return ErrGameOver
	}
	if !g.CurrentMatch.IsOver() {
		return ErrMatchNotOver
	}
	if !g.recorded {
		return ErrMatchNotRecorded
	}
	if !g.rotated {
		g.WhoIsFirst = g.WhoIsFirst.Opponent()
	}
	g.startMatch()
	return nil
}

// Score returns a color's running score.
func (g *Game) Score(c shared.Color) int {
	return g.Teams[c].Score
}

// Team returns the team playing as c.
func (g *Game) Team(c shared.Color) *shared.Team {
	return g.Teams[c]
}

// Hand returns a copy of the hand of the color whose move it is.
func (g *Game) Hand() []shared.Card {
	return g.HandOf(g.ColorPlaying())
}

// HandOf returns a copy of a color's hand.
func (g *Game) HandOf(c shared.Color) []shared.Card {
	return cloneCards(g.CurrentMatch.Players[g.SeatOf(c)].Hand)
}

// Table returns a copy of the face-up cards.
func (g *Game) Table() []shared.Card {
	return cloneCards(g.CurrentMatch.Table)
}

// TurnsRemaining reports how many redeal rounds the deck still holds.
func (g *Game) TurnsRemaining() int {
	return g.CurrentMatch.TurnsRemaining()
}

func cloneCards(cards []shared.Card) []shared.Card {
	out := make([]shared.Card, len(cards))
	copy(out, cards)
	return out
}

func nameOr(name string, c shared.Color) string {
	if name == "" {
		return c.String()
	}
	return name
}
