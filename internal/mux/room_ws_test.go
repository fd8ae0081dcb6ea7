package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"cardroom-server/pkg/holdem"
)

func TestRoomWebSocket(t *testing.T) {
	a := assert.New(t)

	ts := httptest.NewServer(testMux())
	defer ts.Close()

	created := createTestRoom(t, ts, "alice")

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/room/" + created.Room.ID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	a.NoError(err)
	defer conn.Close()

	// the current status arrives on connect
	var status holdem.RoomStatus
	a.NoError(conn.SetReadDeadline(time.Now().Add(time.Second * 5)))
	a.NoError(conn.ReadJSON(&status))
	a.Equal(created.Room.ID, status.ID)
	a.Equal(1, len(status.Players))

	// a change pushes a fresh snapshot
	assertPost(t, ts, "/room/"+created.Room.ID+"/join", map[string]interface{}{"name": "bob"}, nil, http.StatusCreated)

	a.NoError(conn.SetReadDeadline(time.Now().Add(time.Second * 5)))
	a.NoError(conn.ReadJSON(&status))
	a.Equal(2, len(status.Players))
}
