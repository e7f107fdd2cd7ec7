package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"sync/atomic"
	"time"

	"github.com/CharaWein/chessGo/bots"
	"github.com/CharaWein/chessGo/config"
	"github.com/CharaWein/chessGo/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
	"go.uber.org/zap"
)

const (
	squareSize   = 80
	boardOffsetX = 20
	boardOffsetY = 60
	screenWidth  = squareSize*8 + boardOffsetX*2
	screenHeight = squareSize*8 + boardOffsetY + 40
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	selectedSq  = color.RGBA{246, 246, 105, 255}
	whiteSide   = color.RGBA{170, 70, 40, 255}
	blackSide   = color.RGBA{30, 30, 30, 255}
	outline     = color.RGBA{250, 250, 250, 255}
)

var tierKeys = map[ebiten.Key]bots.Tier{
	ebiten.Key1: 1, ebiten.Key2: 2, ebiten.Key3: 3, ebiten.Key4: 4, ebiten.Key5: 5,
	ebiten.Key6: 6, ebiten.Key7: 7, ebiten.Key8: 8, ebiten.Key9: 9, ebiten.Key0: 10,
}

type Game struct {
	session  *game.Session
	delay    time.Duration
	logger   *zap.Logger
	selected chess.Square
	dragging bool
	dragX    int
	dragY    int
	botTurn  atomic.Bool
}

func NewGame(cfg *config.Config, logger *zap.Logger) *Game {
	seed := cfg.Bot.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	selector := bots.NewSelector(
		bots.WithRand(rand.New(rand.NewSource(seed))),
		bots.WithLogger(logger),
	)
	return &Game{
		session: game.NewSession(cfg.Bot.PlayerColor, cfg.Bot.Tier, selector, logger),
		delay:   cfg.Bot.Delay,
		logger:  logger,
	}
}

func (g *Game) Update() error {
	for key, tier := range tierKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.session.SetTier(tier); err != nil {
				g.logger.Warn("tier not changed", zap.Error(err))
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if sq, ok := g.squareAt(ebiten.CursorPosition()); ok {
			piece := g.session.Position().Board().Piece(sq)
			if piece != chess.NoPiece && piece.Color() == g.session.PlayerColor() {
				g.selected = sq
				g.dragging = true
			}
		}
	}
	if g.dragging {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		if target, ok := g.squareAt(ebiten.CursorPosition()); ok && target != g.selected {
			if err := g.session.TryMove(g.selected, target); err != nil {
				g.logger.Debug("move refused", zap.Error(err))
			}
		}
		g.dragging = false
	}

	if g.session.BotToMove() && g.botTurn.CompareAndSwap(false, true) {
		go g.makeBotMove()
	}
	return nil
}

func (g *Game) makeBotMove() {
	defer g.botTurn.Store(false)
	time.Sleep(g.delay)
	if _, err := g.session.PlayBotMove(); err != nil {
		g.logger.Error("bot move failed", zap.Error(err))
	}
}

// squareAt maps screen coordinates to a board square.
func (g *Game) squareAt(x, y int) (chess.Square, bool) {
	x -= boardOffsetX
	y -= boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return 0, false
	}
	return boardSquare(x/squareSize, y/squareSize, g.session.PlayerColor() == chess.Black), true
}

func (g *Game) Draw(screen *ebiten.Image) {
	flipped := g.session.PlayerColor() == chess.Black
	board := g.session.Position().Board()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := boardSquare(x, y, flipped)
			clr := lightSquare
			if (x+y)%2 == 1 {
				clr = darkSquare
			}
			if g.dragging && sq == g.selected {
				clr = selectedSq
			}
			px := float32(x*squareSize + boardOffsetX)
			py := float32(y*squareSize + boardOffsetY)
			vector.DrawFilledRect(screen, px, py, squareSize, squareSize, clr, false)

			piece := board.Piece(sq)
			if piece == chess.NoPiece || (g.dragging && sq == g.selected) {
				continue
			}
			drawPiece(screen, piece, px+squareSize/2, py+squareSize/2)
		}
	}

	if g.dragging {
		if piece := board.Piece(g.selected); piece != chess.NoPiece {
			drawPiece(screen, piece, float32(g.dragX), float32(g.dragY))
		}
	}

	status := "Your move"
	if g.session.BotThinking() {
		status = "Bot is thinking..."
	} else if g.session.Position().Turn() != g.session.PlayerColor() {
		status = "Bot to move"
	}
	ebitenutil.DebugPrintAt(screen, status, boardOffsetX, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Difficulty: %d (keys 1-0, R resets)", int(g.session.Tier())), screenWidth/2, 20)

	if outcome, method := g.session.Outcome(); outcome != chess.NoOutcome {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Result: %s (%s)", outcome, method), boardOffsetX, screenHeight-30)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// boardSquare maps a screen column and row to a square, White at the bottom
// unless the board is flipped.
func boardSquare(x, y int, flipped bool) chess.Square {
	if flipped {
		return chess.Square((7 - x) + y*8)
	}
	return chess.Square(x + (7-y)*8)
}

func drawPiece(screen *ebiten.Image, piece chess.Piece, cx, cy float32) {
	fill := whiteSide
	letter := strings.ToUpper(piece.Type().String())
	if piece.Color() == chess.Black {
		fill = blackSide
		letter = strings.ToLower(letter)
	}
	vector.DrawFilledCircle(screen, cx, cy, squareSize*0.35, outline, true)
	vector.DrawFilledCircle(screen, cx, cy, squareSize*0.32, fill, true)
	ebitenutil.DebugPrintAt(screen, letter, int(cx)-3, int(cy)-8)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := cfg.Logs.NewLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("chessGo")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(NewGame(cfg, logger)); err != nil {
		log.Fatal(err)
	}
}
