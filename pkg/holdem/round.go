package holdem

import "github.com/sirupsen/logrus"

// this file contains the betting-round mechanics: whose turn it is, what the
// four player actions do, and when a round is considered finished

func (g *Game) inBettingState() bool {
	switch g.state {
	case StatePreflop, StateFlop, StateTurn, StateRiver:
		return true
	}

	return false
}

// ready must be called with the lock held. A betting round is finished when
// at most one unfolded player remains, or when every player still able to act
// has acted and matched the round's highest bet.
func (g *Game) ready() bool {
	switch g.state {
	case StateResolved:
		return true
	case StateCreated, StateStarted:
		return false
	}

	if g.unfoldedCount() <= 1 {
		return true
	}

	for _, p := range g.players {
		if p.folded || p.allIn {
			continue
		}

		if !p.acted || p.roundBet != g.currentBet {
			return false
		}
	}

	return true
}

func (g *Game) unfoldedCount() int {
	count := 0
	for _, p := range g.players {
		if !p.folded {
			count++
		}
	}

	return count
}

// nextActable returns the index of the first player past from, in seat order,
// who can still act this round, or -1 if no one can
func (g *Game) nextActable(from int) int {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		j := (from + i) % n
		p := g.players[j]
		if !p.folded && !p.allIn {
			return j
		}
	}

	return -1
}

// isTurn must be called with the lock held
func (g *Game) isTurn(p *Player) bool {
	return g.inBettingState() && g.turnIndex >= 0 && g.players[g.turnIndex] == p
}

// advanceTurn must be called with the lock held
func (g *Game) advanceTurn() {
	if g.ready() {
		g.turnIndex = -1
		return
	}

	g.turnIndex = g.nextActable(g.turnIndex)
}

// playerBet adds amount to p's current-round bet. The resulting round bet
// must at least match the round's highest bet. An exact match is a call and
// leaves the round's action intact; a strictly greater bet is a raise and
// reopens the action for every other player.
func (g *Game) playerBet(p *Player, amount int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isTurn(p) || amount < 0 || amount > p.balance {
		return false
	}

	newRoundBet := p.roundBet + amount
	if newRoundBet < g.currentBet {
		return false
	}

	p.balance -= amount
	p.roundBet = newRoundBet
	p.totalBet += amount
	p.acted = true
	g.pot += amount

	if newRoundBet > g.currentBet {
		g.currentBet = newRoundBet
		g.reopenAction(p)
	}

	if p.balance == 0 {
		p.allIn = true
	}

	g.log.WithFields(logrus.Fields{
		"player": p.name,
		"amount": amount,
		"bet":    p.roundBet,
		"pot":    g.pot,
	}).Debug("bet")

	g.advanceTurn()
	return true
}

// playerCheck passes the action. Legal only when p already matches the
// round's highest bet.
func (g *Game) playerCheck(p *Player) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isTurn(p) || p.roundBet != g.currentBet {
		return false
	}

	p.acted = true
	g.advanceTurn()
	return true
}

// playerFold removes p from the hand. The chips p already contributed stay
// in the pot. If only one unfolded player remains, the hand resolves
// immediately without a showdown.
func (g *Game) playerFold(p *Player) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isTurn(p) {
		return false
	}

	p.folded = true
	p.acted = true

	g.log.WithFields(logrus.Fields{
		"player": p.name,
		"pot":    g.pot,
	}).Debug("fold")

	if g.unfoldedCount() == 1 {
		g.resolveFoldOut()
		return true
	}

	g.advanceTurn()
	return true
}

// playerAllIn commits p's entire remaining balance. If that pushes the round
// bet past the current highest, it counts as a raise; otherwise p is simply
// committed short and contests the pot up to their total.
func (g *Game) playerAllIn(p *Player) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isTurn(p) {
		return false
	}

	amount := p.balance
	p.balance = 0
	p.roundBet += amount
	p.totalBet += amount
	p.allIn = true
	p.acted = true
	g.pot += amount

	if p.roundBet > g.currentBet {
		g.currentBet = p.roundBet
		g.reopenAction(p)
	}

	g.log.WithFields(logrus.Fields{
		"player": p.name,
		"amount": amount,
		"pot":    g.pot,
	}).Debug("all in")

	g.advanceTurn()
	return true
}

// reopenAction must be called with the lock held. A raise forces every other
// player still in the hand to respond again.
func (g *Game) reopenAction(raiser *Player) {
	for _, p := range g.players {
		if p == raiser || p.folded || p.allIn {
			continue
		}

		p.acted = false
	}
}
