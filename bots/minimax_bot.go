package bots

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/notnil/chess"
	"go.uber.org/zap"
)

// MinimaxBot searches Depth plies with alpha-beta pruning and then picks
// among the best scored root moves. Mates in one are always played.
type MinimaxBot struct {
	Depth           int
	Pool            int
	BestProbability float64
	Evaluator       PositionEvaluator

	rng    *rand.Rand
	logger *zap.Logger
	nodes  int
}

func NewMinimaxBot(depth, pool int, opts ...Option) *MinimaxBot {
	o := newOptions(opts)
	return &MinimaxBot{
		Depth:     depth,
		Pool:      pool,
		Evaluator: o.evaluator,
		rng:       o.rng,
		logger:    o.logger,
	}
}

func newMinimaxBotForTier(cfg TierConfig, opts ...Option) *MinimaxBot {
	b := NewMinimaxBot(cfg.Depth, cfg.Pool, opts...)
	b.BestProbability = cfg.BestProbability
	return b
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d, top %d)", b.Depth, b.Pool)
}

// Nodes returns the number of positions visited by the last search.
func (b *MinimaxBot) Nodes() int {
	return b.nodes
}

type scoredMove struct {
	move  *chess.Move
	score float64
}

func (b *MinimaxBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}

	b.nodes = 0
	validMoves := game.ValidMoves()
	if len(validMoves) == 0 {
		return nil
	}

	children := make([]*chess.Game, len(validMoves))
	for i, move := range validMoves {
		child, err := apply(game, move)
		if err != nil {
			b.logger.Error("rules engine rejected a generated move", zap.Error(err))
			continue
		}
		if isCheckmate(child) {
			b.logger.Debug("mate in one", zap.String("move", move.String()))
			return move
		}
		children[i] = child
	}

	scored := b.scoreMoves(game, validMoves, children)
	b.logger.Debug("search finished",
		zap.Int("depth", b.Depth),
		zap.Int("nodes", b.nodes),
		zap.Int("candidates", len(scored)))

	if move := b.choose(scored); move != nil {
		return move
	}
	return pickRandom(b.rng, validMoves)
}

// scoreMoves searches every root move and orders them best first for the side to move.
// Children that could not be played are skipped.
func (b *MinimaxBot) scoreMoves(game *chess.Game, moves []*chess.Move, children []*chess.Game) []scoredMove {
	maximizing := isMaximizing(game)
	depth := b.Depth - 1
	if depth < 0 {
		depth = 0
	}

	scored := make([]scoredMove, 0, len(moves))
	for i, move := range moves {
		if children[i] == nil {
			continue
		}
		score := b.alphaBeta(children[i], depth, math.Inf(-1), math.Inf(1), !maximizing)
		scored = append(scored, scoredMove{move, score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if maximizing {
			return scored[i].score > scored[j].score
		}
		return scored[i].score < scored[j].score
	})
	return scored
}

// choose applies the selection policy to candidates sorted best first.
func (b *MinimaxBot) choose(scored []scoredMove) *chess.Move {
	if len(scored) == 0 {
		return nil
	}
	if b.BestProbability > 0 {
		if len(scored) < 2 || b.rng.Float64() < b.BestProbability {
			return scored[0].move
		}
		return scored[1].move
	}

	pool := b.Pool
	if pool > len(scored) {
		pool = len(scored)
	}
	if pool <= 0 {
		return nil
	}
	return scored[b.rng.Intn(pool)].move
}

func (b *MinimaxBot) alphaBeta(game *chess.Game, depth int, alpha, beta float64, maximizing bool) float64 {
	b.nodes++
	if depth == 0 || isTerminal(game) {
		return b.Evaluator.Evaluate(game)
	}

	validMoves := game.ValidMoves()
	if len(validMoves) == 0 {
		return b.Evaluator.Evaluate(game)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, move := range validMoves {
			child, err := apply(game, move)
			if err != nil {
				b.logger.Error("rules engine rejected a generated move", zap.Error(err))
				continue
			}
			best = math.Max(best, b.alphaBeta(child, depth-1, alpha, beta, false))
			alpha = math.Max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range validMoves {
		child, err := apply(game, move)
		if err != nil {
			b.logger.Error("rules engine rejected a generated move", zap.Error(err))
			continue
		}
		best = math.Min(best, b.alphaBeta(child, depth-1, alpha, beta, true))
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// minimax is the unpruned search. It must agree with alphaBeta on every score.
func (b *MinimaxBot) minimax(game *chess.Game, depth int, maximizing bool) float64 {
	b.nodes++
	if depth == 0 || isTerminal(game) {
		return b.Evaluator.Evaluate(game)
	}

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, move := range game.ValidMoves() {
		child, err := apply(game, move)
		if err != nil {
			continue
		}
		score := b.minimax(child, depth-1, !maximizing)
		if maximizing {
			best = math.Max(best, score)
		} else {
			best = math.Min(best, score)
		}
	}
	return best
}
