package mux

import (
	"errors"
	"net/http"

	"cardroom-server/internal/config"
	"cardroom-server/pkg/holdem"
)

type roomResponse struct {
	Room     holdem.RoomStatus `json:"room"`
	PlayerID int64             `json:"playerId,omitempty"`
}

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms := m.registry.Rooms()
		statuses := make([]holdem.RoomStatus, 0, len(rooms))
		for _, room := range rooms {
			statuses = append(statuses, room.Status())
		}

		writeJSON(w, http.StatusOK, statuses)
	}
}

func (m *Mux) postRoom() http.HandlerFunc {
	type payload struct {
		Name            string `json:"name"`
		SmallBlind      int    `json:"smallBlind"`
		BigBlind        int    `json:"bigBlind"`
		StartingBalance int    `json:"startingBalance"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if p.Name == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		c := config.Instance()
		level := holdem.BlindLevel{SmallBlind: p.SmallBlind, BigBlind: p.BigBlind}
		if level.SmallBlind == 0 && level.BigBlind == 0 {
			level = holdem.BlindLevel{
				SmallBlind: c.Blinds.SmallBlind,
				BigBlind:   c.Blinds.BigBlind,
			}
		}

		balance := p.StartingBalance
		if balance == 0 {
			balance = c.StartingBalance
		}

		master := holdem.NewPlayer(p.Name)
		master.SetBalance(balance)

		room, err := m.registry.CreateRoom(master, level)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomResponse{
			Room:     room.Status(),
			PlayerID: master.ID(),
		})
	}
}

func (m *Mux) getRoomUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, roomFromContext(r).Status())
	}
}

func (m *Mux) postRoomUUIDJoin() http.HandlerFunc {
	type payload struct {
		Name string `json:"name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if p.Name == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("name is required"))
			return
		}

		player := holdem.NewPlayer(p.Name)
		player.SetBalance(config.Instance().StartingBalance)

		room := roomFromContext(r)
		if err := room.AddPlayer(player); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomResponse{
			Room:     room.Status(),
			PlayerID: player.ID(),
		})
	}
}
