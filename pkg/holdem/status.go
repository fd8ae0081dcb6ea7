package holdem

// PlayerStatus is the JSON-safe snapshot of a seated player
type PlayerStatus struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Balance  int    `json:"balance"`
	TotalBet int    `json:"totalBet"`
	Folded   bool   `json:"folded"`
	AllIn    bool   `json:"allIn"`
}

// GameStatus is the JSON-safe snapshot of a game
type GameStatus struct {
	ID      int64          `json:"id"`
	State   string         `json:"state"`
	Pot     int            `json:"pot"`
	Board   []string       `json:"board"`
	Turn    *int64         `json:"turn,omitempty"`
	Players []PlayerStatus `json:"players"`
	Winners []int64        `json:"winners,omitempty"`
	Payouts map[int64]int  `json:"payouts,omitempty"`
}

// RoomStatus is the JSON-safe snapshot of a room
type RoomStatus struct {
	ID      string         `json:"id"`
	Blinds  BlindLevel     `json:"blinds"`
	Players []PlayerStatus `json:"players"`
	Game    *GameStatus    `json:"game,omitempty"`
}

// Status returns a point-in-time snapshot of the room suitable for
// serialization
func (r *Room) Status() RoomStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := RoomStatus{
		ID:      r.id,
		Blinds:  r.level,
		Players: playerStatuses(r.players),
	}

	if r.game != nil {
		gs := r.game.status()
		status.Game = &gs
	}

	return status
}

// Status returns a point-in-time snapshot of the game suitable for
// serialization
func (g *Game) Status() GameStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.status()
}

// status must be called with the lock held
func (g *Game) status() GameStatus {
	status := GameStatus{
		ID:      g.id,
		State:   g.state.String(),
		Pot:     g.pot,
		Board:   make([]string, 0, len(g.board.cards)),
		Players: playerStatuses(g.players),
	}

	for _, card := range g.board.cards {
		status.Board = append(status.Board, card.String())
	}

	if g.inBettingState() && g.turnIndex >= 0 {
		id := g.players[g.turnIndex].id
		status.Turn = &id
	}

	if g.state == StateResolved {
		status.Winners = make([]int64, 0, len(g.winners))
		for _, p := range g.winners {
			status.Winners = append(status.Winners, p.id)
		}

		status.Payouts = make(map[int64]int, len(g.payouts))
		for id, amount := range g.payouts {
			status.Payouts[id] = amount
		}
	}

	return status
}

func playerStatuses(players []*Player) []PlayerStatus {
	statuses := make([]PlayerStatus, 0, len(players))
	for _, p := range players {
		statuses = append(statuses, PlayerStatus{
			ID:       p.id,
			Name:     p.name,
			Balance:  p.balance,
			TotalBet: p.totalBet,
			Folded:   p.folded,
			AllIn:    p.allIn,
		})
	}

	return statuses
}
