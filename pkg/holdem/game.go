package holdem

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"cardroom-server/internal/rng"
	"cardroom-server/pkg/deck"
)

var lastGameID int64

// shuffleRand seeds each game's deck shuffle
var shuffleRand rng.Generator = rng.Crypto{}

// State is the lifecycle state of a game
type State int

// game states
const (
	StateCreated State = iota
	StateStarted
	StatePreflop
	StateFlop
	StateTurn
	StateRiver
	StateResolved
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StatePreflop:
		return "preflop"
	case StateFlop:
		return "flop"
	case StateTurn:
		return "turn"
	case StateRiver:
		return "river"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Game runs a single hand end-to-end: it deals the hole cards, drives the
// four betting rounds, resolves the pots and pays the winners. A new Game is
// created for every hand; a resolved game is never reused.
type Game struct {
	id   int64
	room *Room
	log  logrus.FieldLogger

	// mu is the owning room's lock; every action in the room is serialized on it
	mu *sync.Mutex

	deck  *deck.Deck
	seed  int64
	board Board
	state State

	// players is the seating snapshot for this hand. Before startGame it
	// tracks joins; once the hand starts, roster changes no longer touch it.
	players    []*Player
	dealer     *Player
	smallBlind *Player
	bigBlind   *Player

	currentBet int
	pot        int
	turnIndex  int

	pots    []Pot
	winners []*Player
	payouts map[int64]int
}

func newGame(room *Room, dealer *Player) *Game {
	g := &Game{
		id:        atomic.AddInt64(&lastGameID, 1),
		room:      room,
		mu:        &room.mu,
		deck:      deck.New(),
		seed:      int64(shuffleRand.Intn(math.MaxInt32)) + 1,
		state:     StateCreated,
		dealer:    dealer,
		turnIndex: -1,
	}
	g.log = room.log.WithField("game", g.id)

	for _, p := range room.players {
		g.addPlayer(p)
	}

	return g
}

// ID returns the game's unique ID
func (g *Game) ID() int64 {
	return g.id
}

// State returns the game's lifecycle state
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

// AddPlayer seats a player in the game (and in the owning room) before the
// hand starts
func (g *Game) AddPlayer(p *Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateCreated {
		return ErrGameStarted
	}

	if room := p.CurrentRoom(); room != nil && room != g.room {
		return ErrAlreadySeated
	}

	if p.CurrentRoom() == nil {
		p.setRoom(g.room)
		g.room.players = append(g.room.players, p)
	}

	for _, seated := range g.players {
		if seated == p {
			return nil
		}
	}

	g.addPlayer(p)
	if g.dealer == nil {
		g.dealer = p
	}

	return nil
}

// addPlayer must be called with the room lock held (or before the game is shared)
func (g *Game) addPlayer(p *Player) {
	p.joinGame(g)
	g.players = append(g.players, p)
}

// SetDealer assigns the dealer button before the hand starts
func (g *Game) SetDealer(p *Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateCreated {
		return ErrGameStarted
	}

	if g.indexOf(p) < 0 {
		return ErrDealerNotSeated
	}

	g.dealer = p
	return nil
}

// StartGame posts the blinds and deals two hole cards to every player from a
// freshly shuffled deck. It requires at least two seated players.
func (g *Game) StartGame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateCreated {
		return ErrGameStarted
	}

	if len(g.players) < 2 {
		return ErrNotEnoughPlayers
	}

	dealerIndex := g.indexOf(g.dealer)
	if dealerIndex < 0 {
		return ErrDealerNotSeated
	}

	n := len(g.players)
	g.smallBlind = g.players[(dealerIndex+1)%n]
	g.bigBlind = g.players[(dealerIndex+2)%n]

	level := g.room.level
	g.postBlind(g.smallBlind, level.SmallBlind)
	g.postBlind(g.bigBlind, level.BigBlind)
	g.currentBet = level.BigBlind

	g.deck.Shuffle(g.seed)
	for i := 0; i < 2; i++ {
		for j := 1; j <= n; j++ {
			p := g.players[(dealerIndex+j)%n]
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.hand.AddCard(card)
		}
	}

	g.state = StateStarted
	g.log.WithFields(logrus.Fields{
		"dealer":     g.dealer.name,
		"smallBlind": g.smallBlind.name,
		"bigBlind":   g.bigBlind.name,
		"players":    len(g.players),
	}).Info("game started")

	return nil
}

// postBlind places a forced bet. Posting the blind counts as the blind
// poster's opening action of the preflop round; a later raise reopens it.
func (g *Game) postBlind(p *Player, amount int) {
	if amount >= p.balance {
		amount = p.balance
		p.allIn = true
	}

	p.balance -= amount
	p.roundBet += amount
	p.totalBet += amount
	p.acted = true
	g.pot += amount
}

// Preflop opens the first betting round. Action starts left of the big blind.
func (g *Game) Preflop() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateStarted {
		return ErrWrongStreet
	}

	g.state = StatePreflop
	g.turnIndex = g.nextActable(g.indexOf(g.bigBlind))
	return nil
}

// Flop deals the first three community cards and opens the second betting
// round. The preflop round must be finished.
func (g *Game) Flop() error {
	return g.advanceStreet(StatePreflop, StateFlop, 3)
}

// Turn deals the fourth community card. The flop round must be finished.
func (g *Game) Turn() error {
	return g.advanceStreet(StateFlop, StateTurn, 1)
}

// River deals the fifth and final community card. The turn round must be finished.
func (g *Game) River() error {
	return g.advanceStreet(StateTurn, StateRiver, 1)
}

func (g *Game) advanceStreet(from, to State, cards int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != from {
		if g.state == StateResolved {
			return ErrGameResolved
		}

		return ErrWrongStreet
	}

	if !g.ready() {
		return ErrRoundNotReady
	}

	for i := 0; i < cards; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return err
		}

		g.board.add(card)
	}

	for _, p := range g.players {
		p.roundBet = 0
		p.acted = false
	}
	g.currentBet = 0

	g.state = to
	g.turnIndex = g.nextActable(g.indexOf(g.dealer))

	g.log.WithFields(logrus.Fields{
		"street": to.String(),
		"board":  g.board.String(),
		"pot":    g.pot,
	}).Debug("street dealt")

	return nil
}

// EndGame resolves the hand: it builds the pots, runs the showdown and pays
// the winners. It is a no-op on a hand already resolved by a fold-out, and a
// hard error while betting is still outstanding.
func (g *Game) EndGame() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.state == StateResolved:
		return nil
	case g.state == StateRiver && g.ready():
		g.resolveShowdown()
		return nil
	default:
		return ErrRoundNotReady
	}
}

// IsNextRoundReady returns true if the current betting round's terminal
// condition holds: every active player has acted and matched the round's
// highest bet, or at most one unfolded player remains
func (g *Game) IsNextRoundReady() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ready()
}

// PotBalance returns the total chips contributed to the pot this hand
func (g *Game) PotBalance() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.pot
}

// Board returns the community cards
func (g *Game) Board() *Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	return &Board{cards: g.board.Cards()}
}

// Players returns the game's seating snapshot
func (g *Game) Players() []*Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	players := make([]*Player, len(g.players))
	copy(players, g.players)
	return players
}

// Dealer returns the dealer
func (g *Game) Dealer() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.dealer
}

// SmallBlind returns the small blind, assigned at startGame
func (g *Game) SmallBlind() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.smallBlind
}

// BigBlind returns the big blind, assigned at startGame
func (g *Game) BigBlind() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.bigBlind
}

// Winners returns the hand's winners in seat order, or nil before resolution
func (g *Game) Winners() []*Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	winners := make([]*Player, len(g.winners))
	copy(winners, g.winners)
	return winners
}

// Payouts returns the chips paid to each player ID, or nil before resolution
func (g *Game) Payouts() map[int64]int {
	g.mu.Lock()
	defer g.mu.Unlock()

	payouts := make(map[int64]int, len(g.payouts))
	for id, amount := range g.payouts {
		payouts[id] = amount
	}
	return payouts
}

// Pots returns the resolved pot slices, or nil before resolution
func (g *Game) Pots() []Pot {
	g.mu.Lock()
	defer g.mu.Unlock()

	pots := make([]Pot, len(g.pots))
	copy(pots, g.pots)
	return pots
}

// CurrentTurn returns the player whose turn it is, or nil outside a betting round
func (g *Game) CurrentTurn() *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inBettingState() || g.turnIndex < 0 {
		return nil
	}

	return g.players[g.turnIndex]
}

func (g *Game) indexOf(p *Player) int {
	for i, seated := range g.players {
		if seated == p {
			return i
		}
	}

	return -1
}
