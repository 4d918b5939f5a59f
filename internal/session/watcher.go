package session

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

// Watcher is one websocket client of a session hub. Unlike a passive score
// watcher it is interactive: its read pump feeds filter events into the hub,
// its write pump delivers recomputed snapshots.
type Watcher struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Receive chan []byte
}

func newWatcher(hub *Hub, conn *websocket.Conn) *Watcher {
	return &Watcher{
		Hub:  hub,
		Conn: conn,
		// room for the initial snapshot sent before the pump starts
		Receive: make(chan []byte, 1),
	}
}

func (w *Watcher) WriteEvents() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = w.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-w.Receive:
			_ = w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				_ = w.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			writer, err := w.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = writer.Write(message)

			// Flush any snapshots queued behind this one.
			n := len(w.Receive)
			for i := 0; i < n; i++ {
				_, _ = writer.Write(newline)
				_, _ = writer.Write(<-w.Receive)
			}

			if err := writer.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (w *Watcher) ReadEvents() {
	defer func() {
		w.Hub.LeaveWatcher <- w
		_ = w.Conn.Close()
	}()

	w.Conn.SetReadLimit(maxMessageSize)
	_ = w.Conn.SetReadDeadline(time.Now().Add(pongWait))
	w.Conn.SetPongHandler(func(string) error {
		_ = w.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, bytes, err := w.Conn.ReadMessage()
		if err != nil {
			return
		}

		var genericEvent GenericEvent
		if err := json.Unmarshal(bytes, &genericEvent); err != nil {
			w.Hub.Errors <- err
			continue
		}

		event, err := genericEvent.parseEvent()
		if err != nil {
			w.Hub.Errors <- err
			continue
		}

		w.Hub.Events <- event
	}
}
