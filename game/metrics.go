package game

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks processed by the game loop.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food consumed by the snake.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "over_total",
			Help:      "Games that reached game over, by cause.",
		},
		[]string{"cause"},
	)
	currentScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "score",
			Help:      "Score of the game being played.",
		},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "tick_seconds",
			Help:      "Time spent processing and drawing a tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(ticksTotal, foodEaten, gamesOver, currentScore, tickDuration)
}
