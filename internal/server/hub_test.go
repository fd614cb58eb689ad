package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labtycoon/internal/game"
)

func TestHub_BroadcastsNotifications(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := NewHub(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	notifications := make(chan game.Notification, 4)
	go hub.Pump(ctx, notifications)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", hub.ServeWS)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// Registration races the first broadcast, so keep sending until a
	// frame arrives.
	deadline := time.Now().Add(2 * time.Second)
	_ = conn.SetReadDeadline(deadline)
	got := make(chan []byte, 1)
	go func() {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			got <- msg
		}
	}()

	var msg []byte
	for msg == nil && time.Now().Before(deadline) {
		notifications <- game.Notification{
			Reason:   "tick",
			Snapshot: game.Snapshot{SaveState: game.SaveState{Tick: 7, Funding: 123}},
		}
		select {
		case msg = <-got:
		case <-time.After(50 * time.Millisecond):
		}
	}
	require.NotNil(t, msg, "no broadcast received before deadline")

	var n game.Notification
	require.NoError(t, json.Unmarshal(msg, &n))
	assert.Equal(t, "tick", n.Reason)
	assert.Equal(t, int64(7), n.Snapshot.Tick)
	assert.Equal(t, 123.0, n.Snapshot.Funding)
}
