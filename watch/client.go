package watch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/battlesnakeio/snek/game"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNoGame is returned by FetchState when the server has no frame yet.
var ErrNoGame = errors.New("watch: no game is running")

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
}

func baseURL(addr, scheme string) string {
	addr = strings.TrimPrefix(addr, "http://")
	addr = strings.TrimPrefix(addr, "ws://")
	return (&url.URL{Scheme: scheme, Host: addr}).String()
}

// FetchState gets the latest frame from a watch server at addr.
func FetchState(ctx context.Context, addr string) (game.Frame, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL(addr, "http")+"/state", nil)
	if err != nil {
		return game.Frame{}, errors.Wrap(err, "unable to build state request")
	}
	resp, err := httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return game.Frame{}, errors.Wrap(err, "error while getting state")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return game.Frame{}, ErrNoGame
	default:
		return game.Frame{}, errors.Errorf("watch: unexpected status %s", resp.Status)
	}

	f := game.Frame{}
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return game.Frame{}, errors.Wrap(err, "error while decoding state")
	}
	return f, nil
}

// Follow connects to the frame stream of a watch server at addr. The channel
// is closed once the stream ends or ctx is done.
func Follow(ctx context.Context, addr string) (<-chan game.Frame, error) {
	u := baseURL(addr, "ws") + "/socket"
	log.WithField("url", u).Info("connecting")

	c, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to dial %s", u)
	}

	frames := make(chan game.Frame)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()
	go func() {
		defer close(frames)
		defer close(done)
		defer c.Close()

		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) && ctx.Err() == nil {
					log.WithError(err).Warn("read frame")
				}
				return
			}
			if mt != websocket.TextMessage {
				log.WithField("type", mt).Debug("unhandled message type")
				continue
			}

			f := game.Frame{}
			if err := json.Unmarshal(message, &f); err != nil {
				log.WithError(err).Warn("unmarshal frame")
				return
			}
			select {
			case frames <- f:
			case <-ctx.Done():
				return
			}
		}
	}()
	return frames, nil
}
