// Package watch lets other processes follow a game being played. It serves
// the latest frame as JSON, streams frames over a websocket, and exposes
// prometheus metrics. Spectators can only watch; nothing they send reaches
// the game.
package watch

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server is the spectator http server.
type Server struct {
	hs  *http.Server
	hub *Hub
}

// New creates a server on addr serving frames from hub.
func New(addr string, hub *Hub) *Server {
	s := &Server{hub: hub}

	router := httprouter.New()
	router.GET("/state", s.state)
	router.GET("/socket", s.socket)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("watch server listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrap(err, "watch server failed")
}

// Shutdown stops the server, waiting for open requests up to ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) state(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f, ok := s.hub.Latest()
	if !ok {
		http.Error(w, "no game is running", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.WithError(err).Warn("unable to write state")
	}
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("unable to upgrade websocket")
		return
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.WithError(err).Debug("failure to close websocket connection")
		}
	}()

	frames, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()

	// Spectators never send anything, but reading is how a closed
	// connection is noticed.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case f := <-frames:
			_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.WriteJSON(f); err != nil {
				log.WithError(err).Debug("unable to write frame")
				return
			}
			if f.Over() {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
				_ = c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
				return
			}
		}
	}
}
