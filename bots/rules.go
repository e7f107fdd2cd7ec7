package bots

import (
	"fmt"

	"github.com/notnil/chess"
)

// Everything the bots need to know about chess rules goes through notnil/chess.

func isCheckmate(game *chess.Game) bool {
	return game.Position().Status() == chess.Checkmate
}

func isDraw(game *chess.Game) bool {
	if game.Position().Status() == chess.Stalemate || game.Outcome() == chess.Draw {
		return true
	}
	for _, method := range game.EligibleDraws() {
		if method == chess.ThreefoldRepetition {
			return true
		}
	}
	return false
}

func isTerminal(game *chess.Game) bool {
	return isCheckmate(game) || isDraw(game)
}

// isMaximizing reports whether the side to move is the one whose score is maximized.
func isMaximizing(game *chess.Game) bool {
	return game.Position().Turn() == chess.White
}

func isCapture(move *chess.Move) bool {
	return move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant)
}

// apply plays move on a private copy of game. The caller's game is never touched.
func apply(game *chess.Game, move *chess.Move) (*chess.Game, error) {
	next := game.Clone()
	if err := next.Move(move); err != nil {
		return nil, fmt.Errorf("apply %s: %w", move, err)
	}
	return next, nil
}
