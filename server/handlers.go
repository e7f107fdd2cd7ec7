package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/CharaWein/chessGo/bots"

	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"
	"go.uber.org/zap"
)

var errBadFEN = errors.New("invalid FEN")

type moveRequest struct {
	FEN  string `json:"fen" binding:"required"`
	Tier int    `json:"tier" binding:"required"`
}

type moveResponse struct {
	Move    *string `json:"move"`
	SAN     *string `json:"san"`
	FEN     string  `json:"fen"`
	Outcome string  `json:"outcome"`
	Method  string  `json:"method,omitempty"`
}

type evaluateRequest struct {
	FEN string `json:"fen" binding:"required"`
}

type evaluateResponse struct {
	Score float64 `json:"score"`
	Mate  int     `json:"mate,omitempty"` // +1 White has mated, -1 Black has mated
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SelectMove answers with the move the bot plays from fen at tier.
func (h *Handler) SelectMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier := bots.Tier(req.Tier)
	if !tier.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": bots.ErrInvalidTier.Error()})
		return
	}

	game, err := gameFromFEN(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selector := bots.NewSelector(bots.WithRand(h.rng()), bots.WithLogger(h.logger))
	move := selector.SelectMove(game, tier)

	resp := moveResponse{}
	if move != nil {
		uci := chess.UCINotation{}.Encode(game.Position(), move)
		san := chess.AlgebraicNotation{}.Encode(game.Position(), move)
		if err := game.Move(move); err != nil {
			h.logger.Error("selected move rejected", zap.String("move", uci), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "engine produced an illegal move"})
			return
		}
		resp.Move, resp.SAN = &uci, &san
	}
	resp.FEN = game.Position().String()
	resp.Outcome = string(game.Outcome())
	if game.Method() != chess.NoMethod {
		resp.Method = game.Method().String()
	}
	c.JSON(http.StatusOK, resp)
}

// Evaluate answers with the static score of fen. Positive favors White.
func (h *Handler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := gameFromFEN(req.FEN)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// JSON has no infinities, mates are reported separately.
	score := bots.DefaultEvaluator{}.Evaluate(game)
	resp := evaluateResponse{Score: score}
	switch {
	case math.IsInf(score, 1):
		resp.Score, resp.Mate = 0, 1
	case math.IsInf(score, -1):
		resp.Score, resp.Mate = 0, -1
	}
	c.JSON(http.StatusOK, resp)
}

func gameFromFEN(fen string) (*chess.Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadFEN, err)
	}
	return chess.NewGame(opt), nil
}
