package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T, origins ...string) (*Hub, *httptest.Server, uuid.UUID) {
	t.Helper()
	hub := NewHub(zerolog.Nop(), origins)
	go hub.Run()
	t.Cleanup(hub.Stop)

	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWS(w, r, userID)
	}))
	t.Cleanup(srv.Close)
	return hub, srv, userID
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHubDeliversToUser(t *testing.T) {
	hub, srv, userID := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.SendToUser(uuid.New(), map[string]string{"type": "ignored"}))
	require.NoError(t, hub.SendToUser(userID, map[string]string{"type": "collaboration.requested"}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "collaboration.requested", got["type"])
}

func TestHubUnregistersOnClose(t *testing.T) {
	hub, srv, userID := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 1 }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount(userID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubRejectsUnknownOrigin(t *testing.T) {
	_, srv, _ := startHub(t, "https://impactlink.app")

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
