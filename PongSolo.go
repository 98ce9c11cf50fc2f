package main

import (
	"SoloPong/core"
	"SoloPong/logger"
	"fmt"
	"github.com/gdamore/tcell"
	"os"
	"strconv"
	"time"
)

var screen tcell.Screen
var game *core.GameState

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號

func start() {
	frameDelay := core.ReadProperties("local")
	initScreen()
	game = core.NewGameState(time.Now().UnixNano())
	logger.Log.Info(logger.GameStartMsg)
	startGameLoop(frameDelay)
}

func startGameLoop(frameDelay int) {
	inputChan := initUserInput()
	dt := float64(frameDelay) / 1000
	for {
		key := userOperationHandle(inputChan)
		game.Tick(dt)
		drawView()
		time.Sleep(time.Duration(frameDelay) * time.Millisecond)
		releaseKey(key)
	}
}

// userOperationHandle 終端機沒有放開按鍵的事件，一次按鍵視為按住一個 tick
func userOperationHandle(inputChan chan string) core.Key {
	key := readInput(inputChan)
	switch key {
	case "Esc", "Ctrl-C":
		quitGame()
	case "Left":
		game.OnKeyDown(core.KeyLeft)
		return core.KeyLeft
	case "Down":
		game.OnKeyDown(core.KeyDown)
		return core.KeyDown
	case "Right":
		game.OnKeyDown(core.KeyRight)
		return core.KeyRight
	case "Up":
		game.OnKeyDown(core.KeyUp)
		return core.KeyUp
	}
	return core.KeyNone
}

func releaseKey(key core.Key) {
	if key != core.KeyNone {
		game.OnKeyUp(key)
	}
}

func quitGame() {
	screen.Fini()
	logger.Log.Info(fmt.Sprintf(logger.GameExitMsg, game.Score))
	os.Exit(0)
}

func initUserInput() chan string {
	//初始化channel，去接另一個goroutine丟回來的資料
	inputChan := make(chan string)

	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventResize:
				drawView()
			case *tcell.EventKey:
				inputChan <- ev.Name()
			}
		}
	}()

	return inputChan
}

func initScreen() {
	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if e := screen.Init(); e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
}

func readInput(inputChan chan string) string {
	var key string
	select {
	case key = <-inputChan:
	default:
		key = ""
	}
	return key
}

// drawView 把場地座標換算成終端機座標，場地 Y 軸朝上、終端機的 row 往下長
func drawView() {
	screen.Clear()
	windowWidth, windowHeight := screen.Size()

	//球
	ballCol := toScreenCol(game.Ball.Center.X, windowWidth)
	ballRow := toScreenRow(game.Ball.Center.Y, windowHeight)
	Print(ballRow, ballCol, 1, 1, BallSymbol)

	//球拍，固定貼在最右邊
	paddleRows := int(core.PaddleHeight * float64(windowHeight) / core.ArenaHeight)
	if paddleRows < 1 {
		paddleRows = 1
	}
	paddleCol := toScreenCol(game.Paddle.Center.X, windowWidth)
	paddleTopRow := toScreenRow(game.Paddle.Center.Y+core.PaddleHeight*0.5, windowHeight)
	Print(paddleTopRow, paddleCol, 1, paddleRows, PaddleSymbol)

	//分數更新
	drawScore()

	screen.Show()
}

func toScreenCol(x float64, windowWidth int) int {
	return int(x * float64(windowWidth) / core.ArenaWidth)
}

func toScreenRow(y float64, windowHeight int) int {
	return windowHeight - 1 - int(y*float64(windowHeight)/core.ArenaHeight)
}

func drawScore() {
	scoreText := "Score: " + strconv.Itoa(game.Score)
	for i, letter := range scoreText {
		screen.SetContent(1+i, 0, letter, nil, tcell.StyleDefault)
	}
}

func Print(row, col, width, height int, ch rune) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, tcell.StyleDefault)
		}
	}
}
