package bots

import (
	"math"

	"github.com/notnil/chess"
)

// DefaultEvaluator combines material, piece-square bonuses and mobility.
// Positive scores favor White.
type DefaultEvaluator struct{}

// MobilityWeight scales the side to move's legal move count.
const MobilityWeight = 1

func (e DefaultEvaluator) Evaluate(game *chess.Game) float64 {
	if isCheckmate(game) {
		// The side to move is mated.
		if game.Position().Turn() == chess.White {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if isDraw(game) {
		return 0
	}

	return e.materialScore(game) + e.mobilityScore(game)*MobilityWeight
}

// materialScore sums piece values and table bonuses over the board.
func (e DefaultEvaluator) materialScore(game *chess.Game) float64 {
	var score float64
	board := game.Position().Board()

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := e.pieceValue(piece.Type())
		if table := pieceSquareTable(piece.Type()); table != nil {
			value += table[pstIndex(sq, piece.Color())]
		}
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func (e DefaultEvaluator) mobilityScore(game *chess.Game) float64 {
	moves := float64(len(game.ValidMoves()))
	if game.Position().Turn() == chess.White {
		return moves
	}
	return -moves
}

func (e DefaultEvaluator) pieceValue(piece chess.PieceType) float64 {
	switch piece {
	case chess.Pawn:
		return 100
	case chess.Knight:
		return 320
	case chess.Bishop:
		return 330
	case chess.Rook:
		return 500
	case chess.Queen:
		return 900
	case chess.King:
		return 20000
	default:
		return 0
	}
}
