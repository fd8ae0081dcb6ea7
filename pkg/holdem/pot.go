package holdem

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cardroom-server/pkg/deck"
	"cardroom-server/pkg/poker"
)

// Pot is one slice of the chips at stake. A hand with no all-in players has
// a single pot; each shorter all-in stack carves off a pot contested only by
// the players who covered it.
type Pot struct {
	Amount   int
	eligible []*Player
	winners  []*Player
}

// Eligible returns the players who can win this pot
func (p *Pot) Eligible() []*Player {
	eligible := make([]*Player, len(p.eligible))
	copy(eligible, p.eligible)
	return eligible
}

// Winners returns the players this pot was awarded to, or nil before resolution
func (p *Pot) Winners() []*Player {
	winners := make([]*Player, len(p.winners))
	copy(winners, p.winners)
	return winners
}

// buildPots must be called with the lock held. It slices the total chips
// wagered into a main pot and side pots keyed off the distinct all-in levels
// of the unfolded players. Folded players' chips stay in whichever slices
// their contribution reaches.
func (g *Game) buildPots() []Pot {
	levelSet := make(map[int]bool)
	for _, p := range g.players {
		if !p.folded && p.totalBet > 0 {
			levelSet[p.totalBet] = true
		}
	}

	levels := make([]int, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	pots := make([]Pot, 0, len(levels))
	prev := 0
	total := 0
	for _, level := range levels {
		pot := Pot{}
		for _, p := range g.players {
			contribution := p.totalBet
			if contribution > level {
				contribution = level
			}
			if contribution > prev {
				pot.Amount += contribution - prev
			}

			if !p.folded && p.totalBet >= level {
				pot.eligible = append(pot.eligible, p)
			}
		}

		total += pot.Amount
		pots = append(pots, pot)
		prev = level
	}

	// chips past the highest unfolded level can only come from folded
	// players; they sweeten the last pot
	if len(pots) > 0 && total < g.pot {
		pots[len(pots)-1].Amount += g.pot - total
	}

	return pots
}

// resolveFoldOut must be called with the lock held. The last unfolded player
// takes the entire pot uncontested.
func (g *Game) resolveFoldOut() {
	var winner *Player
	for _, p := range g.players {
		if !p.folded {
			winner = p
			break
		}
	}

	pot := Pot{Amount: g.pot, eligible: []*Player{winner}, winners: []*Player{winner}}
	g.pots = []Pot{pot}
	g.winners = []*Player{winner}
	g.payouts = map[int64]int{winner.id: g.pot}
	winner.balance += g.pot
	g.turnIndex = -1
	g.state = StateResolved

	g.log.WithFields(logrus.Fields{
		"winner": winner.name,
		"pot":    g.pot,
	}).Info("hand won uncontested")
}

// resolveShowdown must be called with the lock held. Each pot goes to the
// eligible player(s) with the strongest five-card hand out of their two hole
// cards and the five community cards. Ties split the pot evenly; leftover
// chips go one each to the tied winners earliest in seat order.
func (g *Game) resolveShowdown() {
	g.pots = g.buildPots()
	g.payouts = make(map[int64]int)

	strengths := make(map[int64]int)
	for _, p := range g.players {
		if p.folded {
			continue
		}

		cards := make([]*deck.Card, 0, 7)
		cards = append(cards, p.hand...)
		cards = append(cards, g.board.cards...)
		strengths[p.id] = poker.NewHandAnalyzer(5, cards).GetStrength()
	}

	inWinners := make(map[int64]bool)
	for i := range g.pots {
		pot := &g.pots[i]

		best := -1
		for _, p := range pot.eligible {
			if s := strengths[p.id]; s > best {
				best = s
			}
		}

		for _, p := range pot.eligible {
			if strengths[p.id] == best {
				pot.winners = append(pot.winners, p)
			}
		}

		share := pot.Amount / len(pot.winners)
		remainder := pot.Amount % len(pot.winners)
		for j, p := range pot.winners {
			amount := share
			if j < remainder {
				amount++
			}

			p.balance += amount
			g.payouts[p.id] += amount
		}
	}

	for i := range g.pots {
		for _, p := range g.pots[i].winners {
			inWinners[p.id] = true
		}
	}

	for _, p := range g.players {
		if inWinners[p.id] {
			g.winners = append(g.winners, p)
		}
	}

	g.turnIndex = -1
	g.state = StateResolved

	g.log.WithFields(logrus.Fields{
		"pot":     g.pot,
		"pots":    len(g.pots),
		"winners": len(g.winners),
	}).Info("hand resolved at showdown")
}
