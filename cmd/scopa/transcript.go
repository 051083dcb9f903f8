package main

import (
	"scopa-game/internal/game"
	"scopa-game/internal/protocol"
	"scopa-game/internal/shared"
)

func matchStartedPayload(g *game.Game) protocol.MatchStartedPayload {
	return protocol.MatchStartedPayload{
		GameID:      g.ID,
		MatchID:     g.CurrentMatch.ID,
		MatchNumber: g.MatchNumber,
		First:       g.WhoIsFirst.String(),
		Dealer:      g.WhoIsFirst.Opponent().String(),
		Table:       g.Table(),
	}
}

func movePlayedPayload(g *game.Game, c shared.Color, input string, mv shared.Move) protocol.MovePlayedPayload {
	return protocol.MovePlayedPayload{
		Color:          c.String(),
		Input:          input,
		Move:           mv,
		Table:          g.Table(),
		TurnsRemaining: g.TurnsRemaining(),
	}
}

func moveRejectedPayload(c shared.Color, input string, err *game.MoveError) protocol.MoveRejectedPayload {
	return protocol.MoveRejectedPayload{
		Color:   c.String(),
		Input:   input,
		Kind:    err.Kind.String(),
		Message: err.Error(),
	}
}

// categories lists the scoring categories of a tally by color.
func categories(g *game.Game, t game.PointTally) []protocol.CategoryResult {
	verdict := func(name string, v game.Verdict) protocol.CategoryResult {
		r := protocol.CategoryResult{Category: name}
		if v.Decided {
			r.Winner = g.ColorOf(v.Winner).String()
			r.Points = 1
		}
		return r
	}
	napoli := protocol.CategoryResult{Category: "napoli"}
	if t.Napoli.Decided {
		napoli.Winner = g.ColorOf(t.Napoli.Winner).String()
		napoli.Points = t.Napoli.Magnitude
	}
	return []protocol.CategoryResult{
		verdict("cards", t.NumCards),
		verdict("coins", t.Coins),
		verdict("sette_bello", t.SetteBello),
		verdict("re_bello", t.ReBello),
		verdict("primiera", t.Primiera),
		napoli,
	}
}

func matchOverPayload(g *game.Game, t game.PointTally, res game.MatchResult) protocol.MatchOverPayload {
	p := protocol.MatchOverPayload{
		MatchID:     g.CurrentMatch.ID,
		Scopas:      map[string]int{},
		Categories:  categories(g, t),
		MatchPoints: map[string]int{},
		TotalScores: map[string]int{},
	}
	for _, seat := range []game.Turn{game.First, game.Shuffler} {
		c := g.ColorOf(seat)
		p.Scopas[c.String()] = t.Scopas[seat]
		p.MatchPoints[c.String()] = res.Points[c]
		p.TotalScores[c.String()] = g.Score(c)
	}
	return p
}

func gameOverPayload(w game.Result) protocol.GameOverPayload {
	return protocol.GameOverPayload{
		Winner:       w.Color.String(),
		WinningScore: w.WinningScore,
		LosingScore:  w.LosingScore,
		FullNapoli:   w.FullNapoli,
	}
}
