package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/CharaWein/chessGo/bots"

	"github.com/notnil/chess"
)

func newSession(color chess.Color, tier bots.Tier) *Session {
	selector := bots.NewSelector(bots.WithRand(rand.New(rand.NewSource(1))))
	return NewSession(color, tier, selector, nil)
}

func TestSessionHumanThenBot(t *testing.T) {
	s := newSession(chess.White, 1)

	if s.BotToMove() {
		t.Fatal("BotToMove() = true before the human moved")
	}
	if err := s.TryMove(chess.E2, chess.E4); err != nil {
		t.Fatalf("TryMove(e2e4) error: %v", err)
	}
	if !s.BotToMove() {
		t.Fatal("BotToMove() = false after the human moved")
	}

	move, err := s.PlayBotMove()
	if err != nil {
		t.Fatalf("PlayBotMove() error: %v", err)
	}
	if move == nil {
		t.Fatal("PlayBotMove() = nil, want a reply")
	}
	if got := s.Position().Turn(); got != chess.White {
		t.Errorf("Turn() = %v after the reply, want White", got)
	}
	if s.BotThinking() {
		t.Error("BotThinking() = true after the reply")
	}
}

func TestSessionRejectsMoves(t *testing.T) {
	s := newSession(chess.White, 3)

	if err := s.TryMove(chess.E2, chess.E5); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("TryMove(e2e5) error = %v, want ErrIllegalMove", err)
	}
	if err := s.TryMove(chess.E2, chess.E4); err != nil {
		t.Fatalf("TryMove(e2e4) error: %v", err)
	}
	if err := s.TryMove(chess.D2, chess.D4); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("TryMove(d2d4) on the bot's turn error = %v, want ErrNotYourTurn", err)
	}
}

func TestSessionBotPlaysWhite(t *testing.T) {
	s := newSession(chess.Black, 2)
	if !s.BotToMove() {
		t.Fatal("BotToMove() = false, bot has White")
	}
	if move, err := s.PlayBotMove(); err != nil || move == nil {
		t.Fatalf("PlayBotMove() = %v, %v", move, err)
	}
	if move, err := s.PlayBotMove(); err != nil || move != nil {
		t.Errorf("second PlayBotMove() = %v, %v; want nil, nil", move, err)
	}
}

func TestSessionGameOver(t *testing.T) {
	s := newSession(chess.White, 5)
	if err := s.Load("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2"); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	move, err := s.PlayBotMove()
	if err != nil {
		t.Fatalf("PlayBotMove() error: %v", err)
	}
	if move == nil || move.String() != "d8h4" {
		t.Fatalf("PlayBotMove() = %v, want d8h4", move)
	}

	outcome, method := s.Outcome()
	if outcome != chess.BlackWon || method != chess.Checkmate {
		t.Fatalf("Outcome() = %v, %v; want 0-1 by checkmate", outcome, method)
	}
	if err := s.TryMove(chess.A2, chess.A3); !errors.Is(err, ErrGameOver) {
		t.Errorf("TryMove after mate error = %v, want ErrGameOver", err)
	}

	s.Reset()
	if outcome, _ := s.Outcome(); outcome != chess.NoOutcome {
		t.Errorf("Outcome() after Reset = %v", outcome)
	}
}

func TestSessionSetTier(t *testing.T) {
	s := newSession(chess.White, 4)
	if err := s.SetTier(9); err != nil {
		t.Fatalf("SetTier(9) error: %v", err)
	}
	if got := s.Tier(); got != 9 {
		t.Errorf("Tier() = %v, want 9", got)
	}
	if err := s.SetTier(0); !errors.Is(err, bots.ErrInvalidTier) {
		t.Errorf("SetTier(0) error = %v, want ErrInvalidTier", err)
	}
}

func TestSessionLoadRejectsBadFEN(t *testing.T) {
	s := newSession(chess.White, 1)
	if err := s.Load("not a fen"); err == nil {
		t.Error("Load(bad fen) error = nil")
	}
}

func TestFindMovePromotesToQueen(t *testing.T) {
	opt, err := chess.FEN("8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	move := findMove(chess.NewGame(opt), chess.E7, chess.E8)
	if move == nil || move.Promo() != chess.Queen {
		t.Errorf("findMove(e7e8) = %v, want queen promotion", move)
	}
}
