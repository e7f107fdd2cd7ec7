// bot.go
package bots

import (
	"math/rand"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"
)

// ChessBot is implemented by every move-selection strategy.
type ChessBot interface {
	BestMove(game *chess.Game) *chess.Move
	Name() string
}

// PositionEvaluator scores a position from White's point of view.
type PositionEvaluator interface {
	Evaluate(game *chess.Game) float64
}

type options struct {
	rng       *rand.Rand
	logger    *zap.Logger
	evaluator PositionEvaluator
}

// Option configures a bot or a Selector.
type Option func(*options)

// WithRand injects the random source used for move selection.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger sets the logger. Bots log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEvaluator replaces DefaultEvaluator as the search leaf heuristic.
func WithEvaluator(e PositionEvaluator) Option {
	return func(o *options) {
		o.evaluator = e
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.evaluator == nil {
		o.evaluator = DefaultEvaluator{}
	}
	return o
}

// optionsFrom hands already resolved options on to a child bot.
func optionsFrom(o options) []Option {
	return []Option{WithRand(o.rng), WithLogger(o.logger), WithEvaluator(o.evaluator)}
}
