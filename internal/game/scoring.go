package game

import (
	"fmt"
	"strings"

	"scopa-game/internal/shared"
)

var (
	setteBello = shared.DenariCard(7)
	reBello    = shared.DenariCard(10)
)

// Verdict records which seat, if any, won a single-winner category.
type Verdict struct {
	Winner  Turn
	Decided bool // false on a tie
}

// WonBy reports whether the seat took the category.
func (v Verdict) WonBy(t Turn) bool {
	return v.Decided && v.Winner == t
}

func (v Verdict) String() string {
	if !v.Decided {
		return "nobody"
	}
	return v.Winner.String()
}

func awardTo(t Turn) Verdict {
	return Verdict{Winner: t, Decided: true}
}

// compareCounts gives the category to the strictly larger count.
func compareCounts(first, shuffler int) Verdict {
	switch {
	case first > shuffler:
		return awardTo(First)
	case shuffler > first:
		return awardTo(Shuffler)
	default:
		return Verdict{}
	}
}

// Napoli records the seat holding a coin run from the ace and its magnitude.
type Napoli struct {
	Winner    Turn
	Magnitude int
	Decided   bool
}

// PointsFor returns the napoli points owed to the seat.
func (n Napoli) PointsFor(t Turn) int {
	if n.Decided && n.Winner == t {
		return n.Magnitude
	}
	return 0
}

func (n Napoli) String() string {
	if !n.Decided {
		return "nobody"
	}
	return fmt.Sprintf("%s (%d)", n.Winner, n.Magnitude)
}

// PointTally is the scoring snapshot of one finished match.
type PointTally struct {
	Scopas     [2]int // indexed by Turn, counted live during play
	NumCards   Verdict
	Coins      Verdict
	SetteBello Verdict
	ReBello    Verdict
	Napoli     Napoli
	Primiera   Verdict
}

// Tally scores two piles. Each category is decided independently.
func Tally(first, shuffler *shared.Player) PointTally {
	t := PointTally{
		Scopas:     [2]int{first.Scopas, shuffler.Scopas},
		NumCards:   compareCounts(len(first.Pile), len(shuffler.Pile)),
		Coins:      compareCounts(first.CountCoins(), shuffler.CountCoins()),
		SetteBello: holderOf(setteBello, first, shuffler),
		ReBello:    holderOf(reBello, first, shuffler),
		Primiera:   primiera(first.Pile, shuffler.Pile),
	}

	if n := napoliRun(first.Pile); n > 0 {
		t.Napoli = Napoli{Winner: First, Magnitude: n, Decided: true}
	} else if n := napoliRun(shuffler.Pile); n > 0 {
		t.Napoli = Napoli{Winner: Shuffler, Magnitude: n, Decided: true}
	}
	return t
}

func holderOf(card shared.Card, first, shuffler *shared.Player) Verdict {
	switch {
	case first.PileHas(card):
		return awardTo(First)
	case shuffler.PileHas(card):
		return awardTo(Shuffler)
	default:
		return Verdict{}
	}
}

// napoliRun returns 0 unless the pile holds the Denari 1, 2 and 3.
// Without the Denari 4 the run is worth 1; with it, the full length of the run.
func napoliRun(pile []shared.Card) int {
	var held [11]bool
	for _, c := range pile {
		if c.IsCoin() {
			held[c.Rank] = true
		}
	}
	if !held[1] || !held[2] || !held[3] {
		return 0
	}
	if !held[4] {
		return 1
	}
	run := 4
	for run < 10 && held[run+1] {
		run++
	}
	return run
}

// HasFullNapoli reports whether the pile holds all ten Denari cards.
func HasFullNapoli(pile []shared.Card) bool {
	var held [11]bool
	n := 0
	for _, c := range pile {
		if c.IsCoin() && !held[c.Rank] {
			held[c.Rank] = true
			n++
		}
	}
	return n == len(shared.Ranks)
}

// primiera walks rank values 7 down to 1; the first differing count decides.
func primiera(first, shuffler []shared.Card) Verdict {
	for v := 7; v >= 1; v-- {
		a, b := countValue(first, v), countValue(shuffler, v)
		if a != b {
			return compareCounts(a, b)
		}
	}
	return Verdict{}
}

func countValue(pile []shared.Card, v int) int {
	n := 0
	for _, c := range pile {
		if c.Value() == v {
			n++
		}
	}
	return n
}

func (t PointTally) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Scope:       First %d, Shuffler %d\n", t.Scopas[First], t.Scopas[Shuffler])
	fmt.Fprintf(&sb, "Cards:       %s\n", t.NumCards)
	fmt.Fprintf(&sb, "Denari:      %s\n", t.Coins)
	fmt.Fprintf(&sb, "Sette bello: %s\n", t.SetteBello)
	fmt.Fprintf(&sb, "Re bello:    %s\n", t.ReBello)
	fmt.Fprintf(&sb, "Napoli:      %s\n", t.Napoli)
	fmt.Fprintf(&sb, "Primiera:    %s", t.Primiera)
	return sb.String()
}
