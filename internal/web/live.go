package web

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sweeney/rescue-rover/internal/status"
)

// liveInterval is how often /live pushes a snapshot to each client.
const liveInterval = 500 * time.Millisecond

// liveWriteTimeout bounds each websocket write so a stalled client cannot
// pin the handler goroutine.
const liveWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleLive streams JSON status snapshots over a websocket until the client
// goes away.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(liveInterval)
	defer ticker.Stop()

	for {
		snap := s.tracker.Snapshot()
		conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, status.FormatJSON(snap)); err != nil {
			return
		}
		<-ticker.C
	}
}
