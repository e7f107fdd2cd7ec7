package bots

import (
	"math/rand"

	"github.com/notnil/chess"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(opts ...Option) *RandomBot {
	o := newOptions(opts)
	return &RandomBot{rng: o.rng}
}

func (b *RandomBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	return pickRandom(b.rng, game.ValidMoves())
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}

func pickRandom(rng *rand.Rand, moves []*chess.Move) *chess.Move {
	if len(moves) == 0 {
		return nil
	}
	return moves[rng.Intn(len(moves))]
}
