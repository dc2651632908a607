package commands

import (
	"sync"

	"github.com/battlesnakeio/snek/game"
)

type frameHolder struct {
	sync.RWMutex
	frames []game.Frame
}

func (fh *frameHolder) append(frame game.Frame) {
	fh.Lock()
	defer fh.Unlock()

	fh.frames = append(fh.frames, frame)
}

func (fh *frameHolder) get(index int) (game.Frame, bool) {
	fh.RLock()
	defer fh.RUnlock()

	if index < 0 || index >= len(fh.frames) {
		return game.Frame{}, false
	}

	return fh.frames[index], true
}

func (fh *frameHolder) count() int {
	fh.RLock()
	defer fh.RUnlock()

	return len(fh.frames)
}

func moveFrameForwards(frameIndex int, frames *frameHolder) int {
	frameIndex++
	if last := frames.count() - 1; frameIndex > last {
		frameIndex = last
	}
	return frameIndex
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) int {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex
}
