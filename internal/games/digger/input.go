package digger

import (
	"math"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// directions in the order a single frame's presses are resolved.
var directions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// inputLatch turns key presses into held directions. Terminals deliver key
// repeats rather than key state, so a direction stays held for a while
// after its last press. A new direction replaces the held one.
type inputLatch struct {
	hold      int // Ticks a press keeps its direction held
	dir       core.Action
	remaining int
}

// newInputLatch converts a hold time in milliseconds into ticks. A press
// always lasts at least the tick it arrives on.
func newInputLatch(holdMS, tickRate int) inputLatch {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	ticks := int(math.Ceil(float64(holdMS) * float64(tickRate) / 1000))
	return inputLatch{hold: max(ticks, 1), dir: core.ActionNone}
}

// apply folds this frame's presses into the latch and returns the engine
// input for the tick. Digs are edge-triggered and release the held direction.
func (l *inputLatch) apply(in core.InputFrame) engine.Input {
	for _, a := range directions {
		if in.Has(a) {
			l.dir = a
			l.remaining = l.hold
			break
		}
	}

	out := engine.Input{
		DigLeft:  in.Has(core.ActionDigLeft),
		DigRight: in.Has(core.ActionDigRight),
	}
	if out.DigLeft || out.DigRight {
		l.release()
		return out
	}

	if l.remaining > 0 {
		l.remaining--
		switch l.dir {
		case core.ActionUp:
			out.Up = true
		case core.ActionDown:
			out.Down = true
		case core.ActionLeft:
			out.Left = true
		case core.ActionRight:
			out.Right = true
		}
	}
	return out
}

// release drops the held direction.
func (l *inputLatch) release() {
	l.dir = core.ActionNone
	l.remaining = 0
}
