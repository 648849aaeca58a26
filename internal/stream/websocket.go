package stream

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve upgrades the request and streams hub messages to the client. The first message
// comes from snapshot, which runs after the subscription is in place so no update published
// in between is lost. It returns when the client goes away.
func Serve(w http.ResponseWriter, r *http.Request, hub *Hub, snapshot func() ([]byte, error), logger zerolog.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to upgrade connection")
		return
	}

	messages, cancel := hub.Subscribe()
	defer cancel()

	initial, err := snapshot()
	if err != nil {
		logger.Error().Err(err).Msg("failed to build initial menu snapshot")
		conn.Close()
		return
	}

	done := make(chan struct{})
	go readPump(conn, done, logger)
	writePump(conn, messages, initial, done)
}

// readPump discards client messages and keeps the read deadline fresh.
func readPump(conn *websocket.Conn, done chan<- struct{}, logger zerolog.Logger) {
	defer close(done)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}
	}
}

func writePump(conn *websocket.Conn, messages <-chan []byte, initial []byte, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	if initial != nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, initial); err != nil {
			return
		}
	}

	for {
		select {
		case message, ok := <-messages:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
