package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Status(t *testing.T) {
	a := assert.New(t)

	room, game, players := setupGame(2, 1000, Blind10_20)

	status := room.Status()
	a.Equal(room.ID(), status.ID)
	a.Equal(Blind10_20, status.Blinds)
	a.Equal(2, len(status.Players))
	a.Equal("created", status.Game.State)

	a.NoError(game.StartGame())
	a.NoError(game.Preflop())

	status = room.Status()
	a.Equal("preflop", status.Game.State)
	a.Equal(30, status.Game.Pot)
	a.NotNil(status.Game.Turn)
	a.Equal(players[1].ID(), *status.Game.Turn)
	a.Nil(status.Game.Winners)

	a.True(players[1].Fold())
	status = room.Status()
	a.Equal("resolved", status.Game.State)
	a.Equal([]int64{players[0].ID()}, status.Game.Winners)
	a.Equal(map[int64]int{players[0].ID(): 30}, status.Game.Payouts)

	// the snapshot is JSON-safe
	_, err := json.Marshal(status)
	a.NoError(err)
}

func TestGame_Status_Board(t *testing.T) {
	a := assert.New(t)

	_, game, players := setupGame(2, 1000, Blind10_20)
	a.NoError(game.StartGame())
	a.NoError(game.Preflop())
	a.True(players[1].Bet(10))
	a.NoError(game.Flop())

	status := game.Status()
	a.Equal("flop", status.State)
	a.Equal(3, len(status.Board))
}
