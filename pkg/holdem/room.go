package holdem

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Room is a table players sit at. It owns the roster, the blind level and
// the current game, and serializes every operation on a single mutex that
// its games share.
type Room struct {
	id    string
	log   logrus.FieldLogger
	level BlindLevel

	mu      sync.Mutex
	players []*Player
	game    *Game
}

// NewRoom creates a room with the given blind level and seats master as its
// first player
func NewRoom(log logrus.FieldLogger, master *Player, level BlindLevel) (*Room, error) {
	if err := level.validate(); err != nil {
		return nil, err
	}

	if master.CurrentRoom() != nil {
		return nil, ErrAlreadySeated
	}

	id := uuid.New().String()
	room := &Room{
		id:    id,
		log:   log.WithField("room", id),
		level: level,
	}

	master.setRoom(room)
	room.players = []*Player{master}

	room.log.WithFields(logrus.Fields{
		"master": master.name,
		"blinds": level.String(),
	}).Info("room created")

	return room, nil
}

// ID returns the room's UUID
func (r *Room) ID() string {
	return r.id
}

// BlindLevel returns the room's blind level
func (r *Room) BlindLevel() BlindLevel {
	return r.level
}

// Players returns the roster in seat order
func (r *Room) Players() []*Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]*Player, len(r.players))
	copy(players, r.players)
	return players
}

// CurrentGame returns the room's current game, or nil if none has been created
func (r *Room) CurrentGame() *Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.game
}

// AddPlayer seats a player at the end of the roster. If a game exists and
// has not started yet, the player also joins that game.
func (r *Room) AddPlayer(p *Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.CurrentRoom() != nil {
		return ErrAlreadySeated
	}

	p.setRoom(r)
	r.players = append(r.players, p)

	if r.game != nil && r.game.state == StateCreated {
		r.game.addPlayer(p)
		if r.game.dealer == nil {
			r.game.dealer = p
		}
	}

	r.log.WithField("player", p.name).Info("player joined")
	return nil
}

// RemovePlayer removes a player from the roster. Players can only leave
// between hands.
func (r *Room) RemovePlayer(p *Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index := -1
	for i, seated := range r.players {
		if seated == p {
			index = i
			break
		}
	}

	if index < 0 {
		return ErrPlayerNotSeated
	}

	if r.game != nil && r.game.state != StateCreated && r.game.state != StateResolved {
		return ErrGameInProgress
	}

	r.players = append(r.players[:index], r.players[index+1:]...)
	p.setRoom(nil)
	p.setGame(nil)

	if r.game != nil && r.game.state == StateCreated {
		if i := r.game.indexOf(p); i >= 0 {
			r.game.players = append(r.game.players[:i], r.game.players[i+1:]...)
		}
		if r.game.dealer == p {
			r.game.dealer = r.nextDealer()
		}
	}

	r.log.WithField("player", p.name).Info("player left")
	return nil
}

// CreateNewGame creates the room's next game with the dealer button rotated
// one seat past the previous dealer. The previous game, if any, must be
// resolved.
func (r *Room) CreateNewGame() (*Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createNewGame()
}

// NextGame rotates the dealer and deals the next hand's game. Unlike
// CreateNewGame it requires a previous game to rotate from.
func (r *Room) NextGame() (*Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return nil, ErrNoCurrentGame
	}

	return r.createNewGame()
}

// createNewGame must be called with the lock held
func (r *Room) createNewGame() (*Game, error) {
	if r.game != nil && r.game.state != StateResolved {
		return nil, ErrGameInProgress
	}

	game := newGame(r, r.nextDealer())
	r.game = game

	return game, nil
}

// nextDealer must be called with the lock held. The button moves to the
// player one seat past the previous dealer in the roster. If the previous
// dealer left, the previous hand's seating decides who was one seat past
// them; the first such player still seated takes the button. An empty
// roster has no dealer; the button is assigned again on the next seat.
func (r *Room) nextDealer() *Player {
	if len(r.players) == 0 {
		return nil
	}

	if r.game == nil || r.game.dealer == nil {
		return r.players[0]
	}

	dealer := r.game.dealer
	for i, p := range r.players {
		if p == dealer {
			return r.players[(i+1)%len(r.players)]
		}
	}

	seated := make(map[*Player]bool, len(r.players))
	for _, p := range r.players {
		seated[p] = true
	}

	prev := r.game.players
	start := -1
	for i, p := range prev {
		if p == dealer {
			start = i
			break
		}
	}

	if start >= 0 {
		for i := 1; i <= len(prev); i++ {
			candidate := prev[(start+i)%len(prev)]
			if seated[candidate] {
				return candidate
			}
		}
	}

	return r.players[0]
}
