package holdem

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupGame creates a room with n players named p1..pn, each holding the
// given balance, and a created (unstarted) game with p1 on the button
func setupGame(n, balance int, level BlindLevel) (*Room, *Game, []*Player) {
	players := make([]*Player, n)
	for i := range players {
		players[i] = NewPlayer(fmt.Sprintf("p%d", i+1))
		players[i].SetBalance(balance)
	}

	room, err := NewRoom(testLogger(), players[0], level)
	if err != nil {
		panic(err)
	}

	for _, p := range players[1:] {
		if err := room.AddPlayer(p); err != nil {
			panic(err)
		}
	}

	game, err := room.CreateNewGame()
	if err != nil {
		panic(err)
	}

	return room, game, players
}
