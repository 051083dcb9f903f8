package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"scopa-game/internal/game"
	"scopa-game/internal/shared"
)

func renderBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgMagenta.ToStyle()),
		putils.LettersFromStringWithStyle("copa", pterm.FgDarkGray.ToStyle()),
	).Render()
	pterm.Info.Println("Lay a card with t<hand>, e.g. t0.")
	pterm.Info.Println("Capture with <hand>;<table>+<table>, e.g. 0;1+2. An ace takes the whole table.")
	pterm.Info.Println("Type quit to leave.")
	pterm.Println()
}

func colorStyle(c shared.Color) pterm.Color {
	if c == shared.Green {
		return pterm.FgLightGreen
	}
	return pterm.FgLightMagenta
}

func teamName(g *game.Game, c shared.Color) string {
	return colorStyle(c).Sprint(g.Team(c).Name)
}

func cardString(c shared.Card) string {
	switch c.Suit {
	case shared.Denari:
		return pterm.FgYellow.Sprint(c.String())
	case shared.Coppe:
		return pterm.FgRed.Sprint(c.String())
	case shared.Spade:
		return pterm.FgCyan.Sprint(c.String())
	default:
		return pterm.FgGreen.Sprint(c.String())
	}
}

func indexedCards(cards []shared.Card) string {
	if len(cards) == 0 {
		return pterm.FgGray.Sprint("(empty)")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("[%d] %s", i, cardString(c))
	}
	return strings.Join(parts, "  ")
}

// renderTurn shows the table, the score and the hand of the color to move.
func renderTurn(g *game.Game) {
	c := g.ColorPlaying()
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	table := pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().
		Sprintf("%s\n\nDeck: %d cards, %d turns left", indexedCards(g.Table()), g.CurrentMatch.Deck.Len(), g.TurnsRemaining())
	score := pbox.WithTitle("|SCORE|").WithTitleTopCenter().
		Sprintf("%s: %d\n%s: %d\nMatch %d",
			teamName(g, shared.Purple), g.Score(shared.Purple),
			teamName(g, shared.Green), g.Score(shared.Green),
			g.MatchNumber)
	hand := pbox.WithTitle(teamName(g, c)).WithTitleTopLeft().
		Sprintf("%s\nScope: %d", indexedCards(g.Hand()), g.CurrentMatch.Players[g.SeatOf(c)].Scopas)

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: table}, {Data: score}},
		{{Data: hand}},
	}).Render()
}

func renderMove(g *game.Game, c shared.Color, mv shared.Move) {
	msg := fmt.Sprintf("%s %s", g.Team(c).Name, mv)
	if mv.Scopa {
		pterm.Success.Println(msg)
		return
	}
	pterm.Info.Println(msg)
}

func renderRejected(err *game.MoveError) {
	pterm.Error.Println(err.Error())
}

func renderTally(g *game.Game, t game.PointTally, res game.MatchResult) {
	pterm.DefaultSection.Printfln("Match %d is over", g.MatchNumber)

	data := pterm.TableData{{"", teamName(g, shared.Purple), teamName(g, shared.Green)}}
	scopas := []string{"scope", "", ""}
	for _, seat := range []game.Turn{game.First, game.Shuffler} {
		scopas[1+int(g.ColorOf(seat))] = fmt.Sprint(t.Scopas[seat])
	}
	data = append(data, scopas)
	for _, cat := range categories(g, t) {
		row := []string{strings.ReplaceAll(cat.Category, "_", " "), "", ""}
		for _, c := range []shared.Color{shared.Purple, shared.Green} {
			if cat.Winner == c.String() {
				row[1+int(c)] = fmt.Sprint(cat.Points)
			}
		}
		data = append(data, row)
	}
	data = append(data,
		[]string{"match", fmt.Sprint(res.Points[shared.Purple]), fmt.Sprint(res.Points[shared.Green])},
		[]string{"total", fmt.Sprint(g.Score(shared.Purple)), fmt.Sprint(g.Score(shared.Green))},
	)
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func renderWinner(g *game.Game, w game.Result) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	how := fmt.Sprintf("%d to %d", w.WinningScore, w.LosingScore)
	if w.FullNapoli {
		how = "with a full napoli, " + how
	}
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().
		Sprintf("%s wins %s", teamName(g, w.Color), how))
}
