package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"cardroom-server/pkg/holdem"
)

type ctxKey int

const ctxRoomKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *holdem.Registry
}

// NewMux returns a new HTTP mux backed by the room registry
func NewMux(version string, registry *holdem.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

	rr := r.PathPrefix("/room/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	rr.Use(this.roomMiddleware)

	rr.Methods(http.MethodGet).Path("").Handler(this.getRoomUUID())
	rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomUUIDWS())
	rr.Methods(http.MethodPost).Path("/join").Handler(this.postRoomUUIDJoin())
	rr.Methods(http.MethodPost).Path("/game").Handler(this.postRoomUUIDGame())
	rr.Methods(http.MethodPost).Path("/game/start").Handler(this.postRoomUUIDGameStart())
	rr.Methods(http.MethodPost).Path("/game/advance").Handler(this.postRoomUUIDGameAdvance())
	rr.Methods(http.MethodPost).Path("/game/action").Handler(this.postRoomUUIDGameAction())
	rr.Methods(http.MethodGet).Path("/game").Handler(this.getRoomUUIDGame())
	rr.Methods(http.MethodGet).Path("/game/ready").Handler(this.getRoomUUIDGameReady())

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		room, err := m.registry.Room(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, room)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func roomFromContext(r *http.Request) *holdem.Room {
	return r.Context().Value(ctxRoomKey).(*holdem.Room)
}
