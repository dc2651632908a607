package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/snek/config"
	"github.com/battlesnakeio/snek/game"
	"github.com/battlesnakeio/snek/input"
	"github.com/battlesnakeio/snek/term"
	"github.com/battlesnakeio/snek/watch"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const initialFrameTimeout = 2 * time.Second

func init() {
	watchCmd.Flags().StringVarP(&backend, "backend", "b", backend, "terminal backend, termbox or tcell")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watches a game being played by another snek process",
	Long: `watches a game being played by another snek process started with --listen.
Left and right step through the received frames, up goes back to following the
game live and down pauses.`,
	RunE: func(c *cobra.Command, args []string) error {
		quietLogs()
		return watchGame(c.Context())
	},
}

func watchGame(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	incoming, err := watch.Follow(ctx, apiAddr)
	if err != nil {
		return err
	}

	first, err := getInitialFrame(incoming)
	if err != nil {
		return err
	}

	surface, err := term.Open(backend, first.Bounds)
	if err != nil {
		return err
	}
	defer surface.Close()

	frames := &frameHolder{}
	frames.append(first)
	go func() {
		for f := range incoming {
			frames.append(f)
		}
		log.Debug("game feed closed")
	}()

	v := &viewer{surface: surface, frames: frames, shown: -1}
	return v.run(ctx, time.NewTicker(config.TickPeriod))
}

func getInitialFrame(incoming <-chan game.Frame) (game.Frame, error) {
	select {
	case f, ok := <-incoming:
		if !ok {
			return game.Frame{}, errors.New("game feed closed before the first frame")
		}
		return f, nil
	case <-time.After(initialFrameTimeout):
		return game.Frame{}, errors.New("unable to find initial frame for game")
	}
}

type viewer struct {
	surface term.Surface
	frames  *frameHolder
	index   int
	shown   int
	paused  bool
}

func (v *viewer) run(ctx context.Context, cycle *time.Ticker) error {
	defer cycle.Stop()

	intents := v.surface.Intents()
	if err := v.show(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case i, ok := <-intents:
			if !ok {
				return nil
			}
			switch i {
			case input.IntentQuit:
				return nil
			case input.IntentLeft:
				v.paused = true
				v.index = moveFrameBackwards(v.index, v.frames)
			case input.IntentRight:
				v.paused = true
				v.index = moveFrameForwards(v.index, v.frames)
			case input.IntentUp:
				v.paused = false
			case input.IntentDown:
				v.paused = true
			}
		case <-cycle.C:
			if !v.paused {
				v.index = v.frames.count() - 1
			}
		}

		if err := v.show(); err != nil {
			return err
		}
	}
}

// show draws the frame at index unless it is already on screen.
func (v *viewer) show() error {
	if v.index == v.shown {
		return nil
	}
	f, ok := v.frames.get(v.index)
	if !ok {
		return nil
	}
	v.shown = v.index

	v.surface.SetScore(f.Score)
	if err := game.Draw(v.surface, f); err != nil {
		return errors.Wrap(err, "unable to draw frame")
	}
	if f.Over() {
		v.surface.GameOver(f.Score, f.Cause)
	}
	return nil
}
