package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/snek/config"
	"github.com/battlesnakeio/snek/game"
	"github.com/battlesnakeio/snek/rules"
	"github.com/battlesnakeio/snek/term"
	"github.com/battlesnakeio/snek/watch"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	backend     = term.BackendTermbox
	boardWidth  = config.BoardWidth
	boardHeight = config.BoardHeight
	cellSize    = config.CellSize
	tickPeriod  = config.TickPeriod
	maxSamples  = config.MaxSamples
	seed        int64
	serveAddr   string
)

func init() {
	playCmd.Flags().StringVarP(&backend, "backend", "b", backend, "terminal backend, termbox or tcell")
	playCmd.Flags().IntVar(&boardWidth, "width", boardWidth, "board width, a multiple of the cell size")
	playCmd.Flags().IntVar(&boardHeight, "height", boardHeight, "board height, a multiple of the cell size")
	playCmd.Flags().IntVar(&cellSize, "cell-size", cellSize, "size of one grid cell")
	playCmd.Flags().DurationVarP(&tickPeriod, "tick", "t", tickPeriod, "time between two moves of the snake")
	playCmd.Flags().IntVar(&maxSamples, "max-samples", maxSamples, "random food samples tried before picking from the free cells")
	playCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for food placement, 0 picks one from the clock")
	playCmd.Flags().StringVarP(&serveAddr, "listen", "l", "", "serve the game to spectators on this address, e.g. :3005")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play a game of snake in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		quietLogs()
		return play(c.Context())
	},
}

func play(ctx context.Context) error {
	bounds := rules.Bounds{
		Width:    int32(boardWidth),
		Height:   int32(boardHeight),
		CellSize: int32(cellSize),
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	placer := rules.NewRandomFoodPlacer(seed, maxSamples)

	state, err := rules.NewGame(bounds, placer)
	if err != nil {
		return errors.Wrap(err, "unable to create game")
	}

	surface, err := term.Open(backend, bounds)
	if err != nil {
		return err
	}
	defer surface.Close()

	loop := game.NewLoop(state, placer, surface)
	loop.ScoreSink = surface
	loop.GameOverSink = surface
	loop.TickPeriod = tickPeriod

	if serveAddr != "" {
		hub := watch.NewHub(config.WatchRate, config.WatchBurst)
		loop.Observers = append(loop.Observers, hub)
		srv := watch.New(serveAddr, hub)
		go func() {
			if err := srv.WaitForExit(); err != nil {
				log.WithError(err).Error("watch server stopped")
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(sctx); err != nil {
				log.WithError(err).Warn("watch server shutdown")
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.WithFields(log.Fields{
		"GameID":  state.ID,
		"Seed":    seed,
		"Backend": backend,
	}).Info("starting game")

	err = loop.Run(ctx, surface.Intents())
	if err != nil && err != context.Canceled {
		return err
	}

	if !loop.Running() {
		select {
		case <-surface.Intents():
		case <-ctx.Done():
		}
	}

	if err := surface.Close(); err != nil {
		log.WithError(err).Warn("unable to close terminal")
	}
	final := loop.State()
	fmt.Printf("Final Score: %d\n", final.Score)
	return nil
}
