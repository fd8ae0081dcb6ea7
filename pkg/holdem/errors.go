package holdem

import "errors"

// ErrRoomNotFound is an error when a room with a provided UUID cannot be found
var ErrRoomNotFound = errors.New("room not found")

// ErrNoCurrentGame is an error when a room operation requires a game and none has been created
var ErrNoCurrentGame = errors.New("game has not been created yet")

// ErrGameInProgress is an error when a new game is requested while the current hand is unresolved
var ErrGameInProgress = errors.New("current game is still in progress")

// ErrGameStarted is an error when a setup operation is attempted after the hand started
var ErrGameStarted = errors.New("game already started")

// ErrGameResolved is an error when an operation is attempted on a resolved hand
var ErrGameResolved = errors.New("game already resolved")

// ErrNotEnoughPlayers is an error when a game is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("not enough players")

// ErrRoundNotReady is an error when a street is advanced before the betting round finished
var ErrRoundNotReady = errors.New("betting round is not finished")

// ErrWrongStreet is an error when a street is advanced out of order
var ErrWrongStreet = errors.New("cannot advance to that street")

// ErrPlayerNotSeated is an error when the player does not belong to the room
var ErrPlayerNotSeated = errors.New("player is not seated in the room")

// ErrAlreadySeated is an error when the player is already seated in a room
var ErrAlreadySeated = errors.New("player is already seated in a room")

// ErrDealerNotSeated is an error when the dealer is not one of the game's players
var ErrDealerNotSeated = errors.New("dealer is not seated in the game")
