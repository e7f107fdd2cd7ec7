package bots

import (
	"math/rand"

	"github.com/notnil/chess"
)

// CaptureBot takes something whenever it can, otherwise it plays at random.
type CaptureBot struct {
	rng *rand.Rand
}

func NewCaptureBot(opts ...Option) *CaptureBot {
	o := newOptions(opts)
	return &CaptureBot{rng: o.rng}
}

func (b *CaptureBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	moves := game.ValidMoves()

	var captures []*chess.Move
	for _, move := range moves {
		if isCapture(move) {
			captures = append(captures, move)
		}
	}
	if len(captures) > 0 {
		return pickRandom(b.rng, captures)
	}
	return pickRandom(b.rng, moves)
}

func (b *CaptureBot) Name() string {
	return "Capture Bot"
}
