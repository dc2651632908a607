package game

import (
	"context"
	"time"

	"github.com/battlesnakeio/snek/input"
	"github.com/battlesnakeio/snek/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultTickPeriod is how often the snake moves.
const DefaultTickPeriod = 100 * time.Millisecond

// Loop ticks a single game from its initial state to game over. All of its
// methods must be called from one goroutine; Run does that for the ticker and
// the input channel.
type Loop struct {
	Renderer     Renderer
	ScoreSink    ScoreSink
	GameOverSink GameOverSink
	Placer       rules.FoodPlacer
	TickPeriod   time.Duration
	Observers    []FrameObserver

	state      rules.GameState
	controller *rules.DirectionController
}

// NewLoop returns a loop for state. Collaborators left nil are skipped,
// except Renderer which must be set before the first tick.
func NewLoop(state rules.GameState, placer rules.FoodPlacer, r Renderer) *Loop {
	return &Loop{
		Renderer:   r,
		Placer:     placer,
		TickPeriod: DefaultTickPeriod,
		state:      state,
		controller: rules.NewDirectionController(state.Velocity, state.Bounds.CellSize),
	}
}

// State returns the current game state.
func (l *Loop) State() rules.GameState {
	return l.state
}

// Running reports whether the game can still tick.
func (l *Loop) Running() bool {
	return l.state.Status != rules.StatusGameOver
}

// OnInput steers the snake. At most one direction change is accepted per
// tick and reversals are ignored. It reports whether the intent changed the
// velocity the next tick will use.
func (l *Loop) OnInput(i input.Intent) bool {
	d, ok := i.Direction()
	if !ok || !l.Running() {
		return false
	}
	accepted := l.controller.OnInput(d)
	log.WithFields(log.Fields{
		"GameID":   l.state.ID,
		"Turn":     l.state.Turn,
		"Intent":   i,
		"Accepted": accepted,
	}).Debug("input")
	return accepted
}

// Step runs one tick: unlock input, check for collision, then clear, draw the
// food, move the snake and draw it. A collision ends the game without drawing
// a new frame. Step does nothing once the game is over.
func (l *Loop) Step() error {
	if !l.Running() {
		return nil
	}
	defer instrument()()

	l.controller.Unlock()

	if cause := rules.CheckCollision(l.state.Snake, l.state.Bounds); cause != rules.CollisionNone {
		l.end(cause)
		return nil
	}

	l.Renderer.Clear()
	l.Renderer.DrawCell(l.state.Food, StyleFood)

	next, result, tickErr := rules.GameTick(l.state, l.controller.Velocity(), l.Placer)
	l.state = next
	ticksTotal.Inc()

	if result.Ate {
		foodEaten.Inc()
		currentScore.Set(float64(l.state.Score))
		if l.ScoreSink != nil {
			l.ScoreSink.SetScore(l.state.Score)
		}
	}

	for _, c := range l.state.Snake.Body {
		l.Renderer.DrawCell(c, StyleSnake)
	}
	if err := l.Renderer.Flush(); err != nil {
		return errors.Wrap(err, "unable to draw frame")
	}

	if tickErr == rules.ErrNoFreeCell {
		l.end(rules.CollisionBoardFull)
		return nil
	}
	if tickErr != nil {
		return errors.Wrap(tickErr, "unable to place food")
	}

	log.WithFields(log.Fields{
		"GameID": l.state.ID,
		"Turn":   l.state.Turn,
		"Head":   l.state.Snake.Head(),
	}).Debug("tick")
	l.publish()
	return nil
}

func (l *Loop) end(cause rules.CollisionCause) {
	l.state.Status = rules.StatusGameOver
	l.state.Cause = cause
	gamesOver.WithLabelValues(string(cause)).Inc()

	log.WithFields(log.Fields{
		"GameID": l.state.ID,
		"Turn":   l.state.Turn,
		"Score":  l.state.Score,
		"Cause":  cause,
	}).Info("game over")

	if l.GameOverSink != nil {
		l.GameOverSink.GameOver(l.state.Score, cause)
	}
	l.publish()
}

func (l *Loop) publish() {
	if len(l.Observers) == 0 {
		return
	}
	f := FrameOf(l.state)
	for _, o := range l.Observers {
		o.Publish(f)
	}
}

// Run ticks the game every TickPeriod until it is over or the player quits.
// Intents are applied between ticks on the calling goroutine. If ctx is done
// first, Run returns ctx.Err().
func (l *Loop) Run(ctx context.Context, intents <-chan input.Intent) error {
	period := l.TickPeriod
	if period <= 0 {
		period = DefaultTickPeriod
	}
	t := time.NewTicker(period)
	defer t.Stop()

	log.WithFields(log.Fields{
		"GameID": l.state.ID,
		"Width":  l.state.Bounds.Width,
		"Height": l.state.Bounds.Height,
		"Period": period,
	}).Info("game started")
	currentScore.Set(float64(l.state.Score))
	l.publish()

	for l.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case i, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			if i == input.IntentQuit {
				log.WithField("GameID", l.state.ID).Info("player quit")
				return nil
			}
			l.OnInput(i)
		case <-t.C:
			if err := l.Step(); err != nil {
				return err
			}
		}
	}
	return nil
}
