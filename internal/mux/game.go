package mux

import (
	"errors"
	"fmt"
	"net/http"

	"cardroom-server/pkg/holdem"
)

func (m *Mux) postRoomUUIDGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := roomFromContext(r).CreateNewGame()
		if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, game.Status())
	}
}

func (m *Mux) postRoomUUIDGameStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := roomFromContext(r).CurrentGame()
		if game == nil {
			writeEngineError(w, holdem.ErrNoCurrentGame)
			return
		}

		if err := game.StartGame(); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, game.Status())
	}
}

func (m *Mux) postRoomUUIDGameAdvance() http.HandlerFunc {
	type payload struct {
		Street string `json:"street"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		game := roomFromContext(r).CurrentGame()
		if game == nil {
			writeEngineError(w, holdem.ErrNoCurrentGame)
			return
		}

		var err error
		switch p.Street {
		case "preflop":
			err = game.Preflop()
		case "flop":
			err = game.Flop()
		case "turn":
			err = game.Turn()
		case "river":
			err = game.River()
		case "end":
			err = game.EndGame()
		default:
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("unknown street: %s", p.Street))
			return
		}

		if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, game.Status())
	}
}

func (m *Mux) postRoomUUIDGameAction() http.HandlerFunc {
	type payload struct {
		PlayerID int64  `json:"playerId"`
		Action   string `json:"action"`
		Amount   int    `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		room := roomFromContext(r)
		game := room.CurrentGame()
		if game == nil {
			writeEngineError(w, holdem.ErrNoCurrentGame)
			return
		}

		var player *holdem.Player
		for _, seated := range room.Players() {
			if seated.ID() == p.PlayerID {
				player = seated
				break
			}
		}

		if player == nil {
			writeEngineError(w, holdem.ErrPlayerNotSeated)
			return
		}

		var ok bool
		switch p.Action {
		case "bet":
			ok = player.Bet(p.Amount)
		case "check":
			ok = player.Check()
		case "fold":
			ok = player.Fold()
		case "allIn":
			ok = player.AllIn()
		default:
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("unknown action: %s", p.Action))
			return
		}

		if !ok {
			writeJSONError(w, http.StatusConflict, errors.New("illegal action"))
			return
		}

		writeJSON(w, http.StatusOK, game.Status())
	}
}

func (m *Mux) getRoomUUIDGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := roomFromContext(r).CurrentGame()
		if game == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, game.Status())
	}
}

func (m *Mux) getRoomUUIDGameReady() http.HandlerFunc {
	type readyResponse struct {
		Ready bool `json:"ready"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		game := roomFromContext(r).CurrentGame()
		if game == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, readyResponse{Ready: game.IsNextRoundReady()})
	}
}
