package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"idiotchess/board"
	"idiotchess/bots"
)

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255} // светлые клетки
	darkSquare  = color.RGBA{181, 136, 99, 255}  // темные клетки
	selectColor = color.RGBA{246, 246, 105, 255}
	targetColor = color.RGBA{106, 135, 77, 255}
)

type Config struct {
	Bot   string
	Color string
	Seed  int64
}

type Game struct {
	log          zerolog.Logger
	seed         int64
	board        *board.Board
	pieces       map[board.Color]*ebiten.Image
	selected     board.Position
	targets      []board.Position
	dragging     *board.Piece
	dragX, dragY int
	playerColor  board.Color
	gameStarted  bool
	botThinking  bool
	boardOffsetX int
	boardOffsetY int
	botName      string
	currentBot   bots.ChessBot
	botMutex     sync.Mutex
}

func NewGame(cfg Config, log zerolog.Logger) (*Game, error) {
	// Получаем размеры экрана
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	// Вычисляем размер клетки (оставляем место для информации сверху)
	boardHeight := screenHeight - 80
	squareSize = boardHeight / 8
	if screenWidth/8 < squareSize {
		squareSize = screenWidth / 8
	}

	// Центрируем доску
	boardWidth := squareSize * 8
	g := &Game{
		log:          log,
		seed:         cfg.Seed,
		selected:     board.NoPosition,
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
	}
	if err := g.setBot(cfg.Bot); err != nil {
		return nil, err
	}
	g.loadPieceImages()

	switch cfg.Color {
	case "":
	case "white", "black":
		var c board.Color
		if err := c.UnmarshalText([]byte(cfg.Color)); err != nil {
			return nil, err
		}
		g.playerColor = c
		g.startGame()
	default:
		return nil, fmt.Errorf("unknown color %q", cfg.Color)
	}
	return g, nil
}

func (g *Game) setBot(name string) error {
	bot, err := bots.New(name, g.seed)
	if err != nil {
		return err
	}
	if mb, ok := bot.(*bots.MinimaxBot); ok {
		mb.TimeLimit = 5 * time.Second
		mb.Logger = g.log
	}
	g.botName = name
	g.currentBot = bot
	return nil
}

// loadPieceImages builds the round piece discs; the letter is printed on top
// when drawing.
func (g *Game) loadPieceImages() {
	g.pieces = make(map[board.Color]*ebiten.Image)
	for _, c := range []board.Color{board.White, board.Black} {
		clr := color.RGBA{250, 250, 250, 255}
		if c == board.Black {
			clr = color.RGBA{30, 30, 30, 255}
		}
		img := ebiten.NewImage(squareSize/2, squareSize/2)
		img.Fill(clr)
		g.pieces[c] = img
	}
}

func (g *Game) squareAt(x, y int) (board.Position, bool) {
	x -= g.boardOffsetX
	y -= g.boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return board.NoPosition, false
	}
	return board.Position{Row: y / squareSize, Col: x / squareSize}, true
}

func (g *Game) Update() error {
	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-btnWidth-20+btnWidth {
					g.playerColor = board.White
					g.startGame()
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					g.playerColor = board.Black
					g.startGame()
				}
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.switchBot()
	}

	g.botMutex.Lock()
	defer g.botMutex.Unlock()

	// Обработка хода игрока
	if g.board.Turn() != g.playerColor || g.botThinking {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := g.squareAt(x, y); ok {
			piece := g.board.PieceAt(sq)
			if piece != nil && piece.Color == g.playerColor {
				g.selected = sq
				g.targets = g.board.LegalMovesFrom(sq)
				g.dragging = piece
				g.dragX, g.dragY = x, y
			}
		}
	}
	if g.dragging != nil {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging != nil {
		x, y := ebiten.CursorPosition()
		if target, ok := g.squareAt(x, y); ok && target != g.selected {
			// превращение всегда в ферзя
			m := board.Move{From: g.selected, To: target}
			if err := g.board.Apply(m, true); err != nil {
				g.log.Debug().Err(err).Msg("move rejected")
			} else {
				g.log.Info().Stringer("move", m).Msg("player moved")
				g.requestBotMove(0)
			}
		}
		g.selected = board.NoPosition
		g.targets = nil
		g.dragging = nil
	}
	return nil
}

// switchBot cycles through the registered bots.
func (g *Game) switchBot() {
	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	if g.botThinking {
		return
	}
	names := bots.Names()
	next := names[0]
	for i, name := range names {
		if name == g.botName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := g.setBot(next); err != nil {
		g.log.Error().Err(err).Msg("switch bot")
		return
	}
	g.log.Info().Str("bot", g.currentBot.Name()).Msg("bot switched")
}

func (g *Game) startGame() {
	g.board = board.NewStandardBoard()
	g.gameStarted = true
	g.log.Info().
		Stringer("player", g.playerColor).
		Str("bot", g.currentBot.Name()).
		Msg("game started")
	if g.playerColor == board.Black {
		g.requestBotMove(500 * time.Millisecond) // Небольшая задержка для плавности
	}
}

// requestBotMove starts the bot on its own goroutine. The caller holds
// botMutex or owns the game exclusively.
func (g *Game) requestBotMove(delay time.Duration) {
	if g.board.Status(g.board.Turn()) == board.Checkmate || g.board.IsDraw(g.board.Turn()) {
		g.log.Info().Msg(g.board.Describe(g.board.Turn()))
		return
	}
	g.botThinking = true
	go func() {
		time.Sleep(delay)
		g.makeBotMove()
	}()
}

func (g *Game) makeBotMove() {
	g.botMutex.Lock()
	bot := g.currentBot
	pos := g.board.Clone()
	g.botMutex.Unlock()

	// бот думает без блокировки, на копии доски
	move, ok := bot.DecideMove(pos)

	g.botMutex.Lock()
	defer g.botMutex.Unlock()
	g.botThinking = false
	if !ok {
		return
	}
	if err := g.board.Apply(move, true); err != nil {
		g.log.Error().Err(err).Str("bot", bot.Name()).Msg("bot move error")
		return
	}
	g.log.Info().Str("bot", bot.Name()).Stringer("move", move).Msg("bot moved")
	if status := g.board.Status(g.board.Turn()); status == board.Checkmate || status == board.Draw {
		g.log.Info().Msg(g.board.Describe(g.board.Turn()))
	}
}

func (g *Game) drawPiece(screen *ebiten.Image, p *board.Piece, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x+squareSize/4), float64(y+squareSize/4))
	screen.DrawImage(g.pieces[p.Color], op)
	ebitenutil.DebugPrintAt(screen, p.Kind.Letter(), x+squareSize/2-3, y+squareSize/2-8)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.gameStarted {
		// Экран выбора цвета
		ebitenutil.DebugPrintAt(screen, "Шахматы на Go", screenWidth/2-70, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Выберите цвет фигур:", screenWidth/2-100, screenHeight/2)

		// Кнопка "Белые"
		whiteBtn := ebiten.NewImage(200, 60)
		whiteBtn.Fill(color.RGBA{200, 200, 200, 255})
		ebitenutil.DebugPrintAt(whiteBtn, "Играть белыми", 50, 20)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2-200-20), float64(screenHeight/2+100))
		screen.DrawImage(whiteBtn, op)

		// Кнопка "Черные"
		blackBtn := ebiten.NewImage(200, 60)
		blackBtn.Fill(color.RGBA{50, 50, 50, 255})
		ebitenutil.DebugPrintAt(blackBtn, "Играть черными", 50, 20)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2+20), float64(screenHeight/2+100))
		screen.DrawImage(blackBtn, op)
		return
	}

	g.botMutex.Lock()
	defer g.botMutex.Unlock()

	// Рисуем доску
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pos := board.Position{Row: row, Col: col}
			clr := lightSquare
			if (row+col)%2 == 1 {
				clr = darkSquare
			}
			if pos == g.selected {
				clr = selectColor
			}
			for _, t := range g.targets {
				if t == pos {
					clr = targetColor
				}
			}
			rect := ebiten.NewImage(squareSize, squareSize)
			rect.Fill(clr)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(col*squareSize+g.boardOffsetX), float64(row*squareSize+g.boardOffsetY))
			screen.DrawImage(rect, op)
		}
	}

	// Рисуем фигуры
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pos := board.Position{Row: row, Col: col}
			piece := g.board.PieceAt(pos)
			if piece != nil && (g.dragging == nil || pos != g.selected) {
				g.drawPiece(screen, piece, col*squareSize+g.boardOffsetX, row*squareSize+g.boardOffsetY)
			}
		}
	}

	// Рисуем перетаскиваемую фигуру
	if g.dragging != nil {
		g.drawPiece(screen, g.dragging, g.dragX-squareSize/2, g.dragY-squareSize/2)
	}

	// Статус игры
	status := "Ваш ход"
	if g.botThinking {
		status = "Бот думает..."
	} else if g.board.Turn() != g.playerColor {
		status = "Ход бота"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
	ebitenutil.DebugPrintAt(screen, g.board.Describe(g.board.Turn()), screenWidth/2-50, 20)
	ebitenutil.DebugPrintAt(screen, "Current bot: "+g.currentBot.Name()+" (B to switch)", 20, screenHeight-40)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.Bot, "bot", "minimax2", fmt.Sprintf("Opponent %v", bots.Names()))
	flag.StringVar(&cfg.Color, "color", "", "Play as white or black; empty shows the colour picker")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "Random seed for the bot")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("new game")
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Шахматы на Go")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
