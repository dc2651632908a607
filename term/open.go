package term

import (
	"github.com/battlesnakeio/snek/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Open takes over the terminal with the named backend and returns a surface
// sized for bounds. The caller must Close it to restore the terminal.
func Open(backend string, bounds rules.Bounds) (Surface, error) {
	switch backend {
	case BackendTermbox, "":
		return openTermbox(bounds)
	case BackendTcell:
		return openTcell(bounds)
	}
	return nil, errors.Errorf("unknown terminal backend %q", backend)
}

// RequiredSize is the terminal size needed to show a board with bounds.
func RequiredSize(bounds rules.Bounds) (int, int) {
	w := boardLeft + int(bounds.Columns())*cellWidth + 1
	h := boardTop + 1 + int(bounds.Rows()) + 2
	return w, h
}

func warnIfSmall(bounds rules.Bounds, w, h int) {
	needW, needH := RequiredSize(bounds)
	if w >= needW && h >= needH {
		return
	}
	log.WithFields(log.Fields{
		"Width":     w,
		"Height":    h,
		"NeedWidth": needW,
		"NeedHeight": needH,
	}).Warn("terminal is smaller than the board")
}
