package mux

import (
	"net/http"
	"reflect"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"cardroom-server/pkg/holdem"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10
const statusPeriod = time.Second

// getRoomUUIDWS streams the room's status over a websocket. A snapshot is
// sent on connect and again whenever it changes.
func (m *Mux) getRoomUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		room := roomFromContext(r)

		done := make(chan bool)
		go m.webSocketWriteLoop(conn, room, done)

		// discard inbound messages; the socket is push-only
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logrus.WithError(err).Debug("websocket closed unexpectedly")
				}

				break
			}
		}

		close(done)
		_ = conn.Close()
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, room *holdem.Room, done chan bool) {
	pingTicker := time.NewTicker(pingPeriod)
	statusTicker := time.NewTicker(statusPeriod)
	defer func() {
		pingTicker.Stop()
		statusTicker.Stop()
		_ = conn.Close()
	}()

	var lastStatus holdem.RoomStatus
	send := func(status holdem.RoomStatus) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(status); err != nil {
			logrus.WithError(err).WithField("room", room.ID()).Debug("could not write status")
			return false
		}

		lastStatus = status
		return true
	}

	if !send(room.Status()) {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-statusTicker.C:
			status := room.Status()
			if reflect.DeepEqual(status, lastStatus) {
				continue
			}

			if !send(status) {
				return
			}
		}
	}
}
