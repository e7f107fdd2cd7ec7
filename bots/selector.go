package bots

import (
	"github.com/notnil/chess"
	"go.uber.org/zap"
)

// Selector routes a position to the bot configured for a difficulty tier.
// It is not safe for concurrent use: bots share its random source.
type Selector struct {
	opts options
}

func NewSelector(opts ...Option) *Selector {
	return &Selector{opts: newOptions(opts)}
}

// Bot builds the bot that plays at the given tier.
func (s *Selector) Bot(tier Tier) ChessBot {
	cfg := tier.Config()
	switch cfg.Strategy {
	case StrategyRandom:
		return NewRandomBot(optionsFrom(s.opts)...)
	case StrategyCaptures:
		return NewCaptureBot(optionsFrom(s.opts)...)
	default:
		return newMinimaxBotForTier(cfg, optionsFrom(s.opts)...)
	}
}

// SelectMove returns a legal move for the side to move, or nil when there is none.
// The game is not modified.
func (s *Selector) SelectMove(game *chess.Game, tier Tier) *chess.Move {
	if game == nil {
		return nil
	}
	if !tier.Valid() {
		s.opts.logger.Warn("tier out of range, clamping", zap.Int("tier", int(tier)))
		tier = tier.Clamp()
	}

	bot := s.Bot(tier)
	move := bot.BestMove(game)
	if move == nil && len(game.ValidMoves()) > 0 {
		// Never give up a turn while legal moves exist.
		move = pickRandom(s.opts.rng, game.ValidMoves())
	}

	if move != nil {
		s.opts.logger.Debug("move selected",
			zap.Int("tier", int(tier)),
			zap.String("bot", bot.Name()),
			zap.String("move", move.String()))
	}
	return move
}

// SelectMove picks a move with a freshly seeded Selector.
func SelectMove(game *chess.Game, tier Tier) *chess.Move {
	return NewSelector().SelectMove(game, tier)
}
