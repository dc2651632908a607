package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. Command line flags default to these, so they can
// be tuned from the environment without touching the flags.
var (
	TickPeriod  = time.Duration(getEnvInt("TICK_MS", 100)) * time.Millisecond
	BoardWidth  = getEnvInt("BOARD_WIDTH", 400)
	BoardHeight = getEnvInt("BOARD_HEIGHT", 300)
	CellSize    = getEnvInt("CELL_SIZE", 10)
	MaxSamples  = getEnvInt("MAX_SAMPLES", 64)
	WatchRate   = rate.Limit(getEnvInt("WATCH_FPS", 20))
	WatchBurst  = getEnvInt("WATCH_BURST", 5)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
