// Package game keeps the state of one human versus bot game.
package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/CharaWein/chessGo/bots"

	"github.com/notnil/chess"
	"go.uber.org/zap"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not the player's turn")
	ErrGameOver    = errors.New("game is over")
)

// Session is safe for concurrent use; the UI goroutine reads it while the
// bot reply is computed elsewhere.
type Session struct {
	mu          sync.Mutex
	botMu       sync.Mutex // serializes selector use
	chessGame   *chess.Game
	playerColor chess.Color
	tier        bots.Tier
	selector    *bots.Selector
	logger      *zap.Logger
	botThinking bool
}

func NewSession(playerColor chess.Color, tier bots.Tier, selector *bots.Selector, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if selector == nil {
		selector = bots.NewSelector(bots.WithLogger(logger))
	}
	return &Session{
		chessGame:   chess.NewGame(),
		playerColor: playerColor,
		tier:        tier.Clamp(),
		selector:    selector,
		logger:      logger,
	}
}

// Reset starts a new game, keeping colour and tier.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chessGame = chess.NewGame()
	s.botThinking = false
}

// Load replaces the game with the position described by fen.
func (s *Session) Load(fen string) error {
	opt, err := chess.FEN(fen)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chessGame = chess.NewGame(opt)
	s.botThinking = false
	return nil
}

func (s *Session) SetTier(tier bots.Tier) error {
	if !tier.Valid() {
		return fmt.Errorf("set %v: %w", tier, bots.ErrInvalidTier)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tier = tier
	s.logger.Info("tier changed", zap.Int("tier", int(tier)))
	return nil
}

func (s *Session) Tier() bots.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tier
}

func (s *Session) PlayerColor() chess.Color {
	return s.playerColor
}

// Position returns the current position. Positions are immutable.
func (s *Session) Position() *chess.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chessGame.Position()
}

func (s *Session) Outcome() (chess.Outcome, chess.Method) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chessGame.Outcome(), s.chessGame.Method()
}

func (s *Session) BotThinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.botThinking
}

// BotToMove reports whether the bot should reply now.
func (s *Session) BotToMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.botToMove()
}

func (s *Session) botToMove() bool {
	return !s.botThinking &&
		s.chessGame.Outcome() == chess.NoOutcome &&
		s.chessGame.Position().Turn() != s.playerColor
}

// TryMove plays the human move from -> to. Pawns reaching the last rank become queens.
func (s *Session) TryMove(from, to chess.Square) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chessGame.Outcome() != chess.NoOutcome {
		return ErrGameOver
	}
	if s.botThinking || s.chessGame.Position().Turn() != s.playerColor {
		return ErrNotYourTurn
	}

	move := findMove(s.chessGame, from, to)
	if move == nil {
		return fmt.Errorf("%s%s: %w", from, to, ErrIllegalMove)
	}
	if err := s.chessGame.Move(move); err != nil {
		return fmt.Errorf("%s: %w", move, ErrIllegalMove)
	}
	return nil
}

// PlayBotMove asks the selector for a reply at the current tier and plays it.
// It returns the move played, or nil when it is not the bot's turn.
func (s *Session) PlayBotMove() (*chess.Move, error) {
	s.botMu.Lock()
	defer s.botMu.Unlock()

	s.mu.Lock()
	if !s.botToMove() {
		s.mu.Unlock()
		return nil, nil
	}
	s.botThinking = true
	snapshot := s.chessGame.Clone()
	tier := s.tier
	s.mu.Unlock()

	move := s.selector.SelectMove(snapshot, tier)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.botThinking = false
	if move == nil {
		return nil, nil
	}
	if s.chessGame.Position().Hash() != snapshot.Position().Hash() {
		// The game was reset while the bot was thinking.
		return nil, nil
	}
	if err := s.chessGame.Move(move); err != nil {
		s.logger.Error("bot move rejected", zap.String("move", move.String()), zap.Error(err))
		return nil, fmt.Errorf("bot move %s: %w", move, err)
	}
	s.logger.Debug("bot moved", zap.Int("tier", int(tier)), zap.String("move", move.String()))
	return move, nil
}

func findMove(game *chess.Game, from, to chess.Square) *chess.Move {
	var found *chess.Move
	for _, m := range game.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			return m
		}
		found = m
	}
	return found
}
