package holdem

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoom(t *testing.T) {
	a := assert.New(t)

	master := NewPlayer("master")
	room, err := NewRoom(testLogger(), master, Blind10_20)
	a.NoError(err)
	a.NotEmpty(room.ID())
	a.Equal(Blind10_20, room.BlindLevel())
	a.Equal([]*Player{master}, room.Players())
	a.Equal(room, master.CurrentRoom())

	_, err = NewRoom(testLogger(), NewPlayer("p"), BlindLevel{SmallBlind: 20, BigBlind: 10})
	a.Error(err)

	_, err = NewRoom(testLogger(), master, Blind10_20)
	a.Equal(ErrAlreadySeated, err)
}

func TestRoom_AddAndRemovePlayer(t *testing.T) {
	a := assert.New(t)

	room, _, players := setupGame(2, 1000, Blind10_20)

	a.Equal(ErrAlreadySeated, room.AddPlayer(players[1]))

	stranger := NewPlayer("stranger")
	a.Equal(ErrPlayerNotSeated, room.RemovePlayer(stranger))

	// joining before the hand starts also joins the pending game
	p3 := NewPlayer("p3")
	a.NoError(room.AddPlayer(p3))
	a.Equal(3, len(room.CurrentGame().Players()))

	a.NoError(room.RemovePlayer(p3))
	a.Nil(p3.CurrentRoom())
	a.Equal(2, len(room.CurrentGame().Players()))
}

func TestRoom_RemovePlayer_MidHand(t *testing.T) {
	a := assert.New(t)

	room, game, players := setupGame(3, 1000, Blind10_20)
	a.NoError(game.StartGame())

	a.Equal(ErrGameInProgress, room.RemovePlayer(players[2]))

	a.NoError(game.Preflop())
	a.True(players[0].Fold())
	a.True(players[1].Fold())
	a.Equal(StateResolved, game.State())

	// players can leave once the hand resolves
	a.NoError(room.RemovePlayer(players[2]))
}

func TestRoom_RemoveLastPlayer(t *testing.T) {
	a := assert.New(t)

	master := NewPlayer("master")
	master.SetBalance(1000)
	room, err := NewRoom(testLogger(), master, Blind10_20)
	a.NoError(err)

	game, err := room.CreateNewGame()
	a.NoError(err)
	a.Equal(master, game.Dealer())

	// emptying the roster must not crash; the button is simply vacant
	a.NotPanics(func() {
		a.NoError(room.RemovePlayer(master))
	})
	a.Empty(room.Players())
	a.Nil(game.Dealer())
	a.Nil(master.CurrentRoom())

	// the emptied game cannot start
	a.Equal(ErrNotEnoughPlayers, game.StartGame())

	// the next seat takes the button
	p2 := NewPlayer("p2")
	p2.SetBalance(1000)
	p3 := NewPlayer("p3")
	p3.SetBalance(1000)
	a.NoError(room.AddPlayer(p2))
	a.NoError(room.AddPlayer(p3))
	a.Equal(p2, game.Dealer())
	a.NoError(game.StartGame())
}

func TestRoom_NextGame_Serialized(t *testing.T) {
	a := assert.New(t)

	room, game, _ := setupGame(3, 1000, Blind10_20)
	resolveQuickly(t, game)

	// concurrent callers race for the next hand; exactly one may deal it
	results := make(chan error, 8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := room.NextGame()
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		if err == nil {
			created++
		} else {
			a.Equal(ErrGameInProgress, err)
		}
	}
	a.Equal(1, created)
}

func TestRoom_CreateNewGame(t *testing.T) {
	a := assert.New(t)

	room, game, players := setupGame(2, 1000, Blind10_20)

	_, err := room.CreateNewGame()
	a.Equal(ErrGameInProgress, err)

	a.NoError(game.StartGame())
	_, err = room.CreateNewGame()
	a.Equal(ErrGameInProgress, err)

	a.NoError(game.Preflop())
	a.True(players[1].Fold())

	next, err := room.CreateNewGame()
	a.NoError(err)
	a.NotEqual(game, next)
	a.Equal(next, room.CurrentGame())
	a.Equal(next, players[0].CurrentGame())
}

func TestRoom_NextGame_RequiresPreviousGame(t *testing.T) {
	a := assert.New(t)

	master := NewPlayer("master")
	room, err := NewRoom(testLogger(), master, Blind10_20)
	a.NoError(err)

	_, err = room.NextGame()
	a.Equal(ErrNoCurrentGame, err)
}

// resolveQuickly folds every player but the big blind so the hand ends
func resolveQuickly(t *testing.T, game *Game) {
	t.Helper()

	if err := game.StartGame(); err != nil {
		t.Fatal(err)
	}
	if err := game.Preflop(); err != nil {
		t.Fatal(err)
	}

	for game.State() != StateResolved {
		p := game.CurrentTurn()
		if p == nil || !p.Fold() {
			t.Fatal("could not fold hand to completion")
		}
	}
}

func TestRoom_DealerRotation(t *testing.T) {
	a := assert.New(t)

	room, game, players := setupGame(5, 1000, Blind10_20)
	e := players[4]

	a.NoError(game.SetDealer(e))
	resolveQuickly(t, game)

	// the button moves one seat past the dealer, wrapping around
	next, err := room.NextGame()
	a.NoError(err)
	a.Equal(players[0], next.Dealer())
}

func TestRoom_DealerRotation_DealerLeft(t *testing.T) {
	a := assert.New(t)

	room, game, players := setupGame(5, 1000, Blind10_20)
	e := players[4]

	a.NoError(game.SetDealer(e))
	resolveQuickly(t, game)
	a.NoError(room.RemovePlayer(e))

	// the departed dealer's seat still decides where the button lands
	next, err := room.NextGame()
	a.NoError(err)
	a.Equal(players[0], next.Dealer())
}

func TestRoom_DealerRotation_LateJoinerIsNextDealer(t *testing.T) {
	a := assert.New(t)

	room, game, players := setupGame(5, 1000, Blind10_20)
	e := players[4]

	a.NoError(game.SetDealer(e))
	resolveQuickly(t, game)

	f := NewPlayer("p6")
	f.SetBalance(1000)
	a.NoError(room.AddPlayer(f))

	// f sits one seat past the old dealer, so f takes the button
	next, err := room.NextGame()
	a.NoError(err)
	a.Equal(f, next.Dealer())
}
