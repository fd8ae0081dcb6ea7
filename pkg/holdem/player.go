package holdem

import (
	"sync"
	"sync/atomic"

	"cardroom-server/pkg/deck"
)

var lastPlayerID int64

// Player is a seated participant.
// A player belongs to at most one room; the room owns the player for its
// lifetime and the room/game fields are non-owning back-references.
type Player struct {
	id      int64
	name    string
	balance int

	// per-hand state, reset when the player joins a new game; guarded by
	// the owning room's lock
	hand     deck.Hand
	roundBet int
	totalBet int
	folded   bool
	allIn    bool
	acted    bool

	// mu guards the back-references. Seating writes them under the room
	// lock; an action entry point reads them before the room is known.
	mu   sync.Mutex
	room *Room
	game *Game
}

// NewPlayer returns a new player with a unique ID and a zero balance
func NewPlayer(name string) *Player {
	return &Player{
		id:   atomic.AddInt64(&lastPlayerID, 1),
		name: name,
	}
}

// ID returns the player's unique ID
func (p *Player) ID() int64 {
	return p.id
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Balance returns the player's chip balance
func (p *Player) Balance() int {
	return p.balance
}

// SetBalance sets the player's chip balance
// This must only be called between hands
func (p *Player) SetBalance(balance int) {
	p.balance = balance
}

// CurrentRoom returns the room the player is seated in, or nil
func (p *Player) CurrentRoom() *Room {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.room
}

// CurrentGame returns the game the player is participating in, or nil
func (p *Player) CurrentGame() *Game {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.game
}

func (p *Player) setRoom(room *Room) {
	p.mu.Lock()
	p.room = room
	p.mu.Unlock()
}

func (p *Player) setGame(game *Game) {
	p.mu.Lock()
	p.game = game
	p.mu.Unlock()
}

// Hand returns the player's hole cards
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// IsAllIn returns true if the player committed their whole balance this hand
func (p *Player) IsAllIn() bool {
	return p.allIn
}

// TotalBet returns the chips the player contributed to the pot this hand
func (p *Player) TotalBet() int {
	return p.totalBet
}

// Bet adds amount to the player's current-round bet. The resulting round bet
// must at least match the round's highest bet; matching it exactly is a call,
// exceeding it is a raise. Returns false if it is not the player's turn or
// the amount is illegal.
func (p *Player) Bet(amount int) bool {
	game := p.CurrentGame()
	if game == nil {
		return false
	}

	return game.playerBet(p, amount)
}

// Check passes the action. Legal only when the player's current-round bet
// already matches the round's highest bet. Returns false otherwise.
func (p *Player) Check() bool {
	game := p.CurrentGame()
	if game == nil {
		return false
	}

	return game.playerCheck(p)
}

// Fold gives up the hand. Returns false if it is not the player's turn.
func (p *Player) Fold() bool {
	game := p.CurrentGame()
	if game == nil {
		return false
	}

	return game.playerFold(p)
}

// AllIn commits the player's entire remaining balance. The player stays
// eligible for the pot up to the committed amount but takes no further
// actions. Returns false if it is not the player's turn.
func (p *Player) AllIn() bool {
	game := p.CurrentGame()
	if game == nil {
		return false
	}

	return game.playerAllIn(p)
}

// joinGame resets the player's per-hand state for a new game
func (p *Player) joinGame(g *Game) {
	p.setGame(g)
	p.hand = make(deck.Hand, 0, 2)
	p.roundBet = 0
	p.totalBet = 0
	p.folded = false
	p.allIn = false
	p.acted = false
}
