package bots

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/notnil/chess"
)

const (
	startFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "k7/8/1Q6/8/8/8/8/7K b - - 0 1"
	backRankFEN  = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	onlyMoveFEN  = "8/8/4k3/8/8/8/3q4/3K4 w - - 0 1"
)

func newGame(t *testing.T, fen string) *chess.Game {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("chess.FEN(%q) error: %v", fen, err)
	}
	return chess.NewGame(opt)
}

func seeded(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func isLegal(game *chess.Game, move *chess.Move) bool {
	if move == nil {
		return false
	}
	for _, m := range game.ValidMoves() {
		if m.String() == move.String() {
			return true
		}
	}
	return false
}

// mirrorFEN flips the board by rank and swaps the colours.
func mirrorFEN(fen string) string {
	fields := strings.Fields(fen)

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		swapped := swapCase(fields[2])
		var castling strings.Builder
		for _, r := range "KQkq" {
			if strings.ContainsRune(swapped, r) {
				castling.WriteRune(r)
			}
		}
		fields[2] = castling.String()
	}

	if fields[3] != "-" {
		rank := fields[3][1]
		fields[3] = string(fields[3][0]) + string('1'+'8'-rank)
	}
	return strings.Join(fields, " ")
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		default:
			return r
		}
	}, s)
}
