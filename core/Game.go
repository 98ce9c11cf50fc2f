package core

import (
	"SoloPong/logger"
	"fmt"
	"math"
	"math/rand"
)

// Key 方向鍵
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Handler 由外部畫面迴圈驅動的遊戲介面
type Handler interface {
	Tick(dt float64)
	OnKeyDown(key Key)
	OnKeyUp(key Key)
}

type GameState struct {
	Ball   *Ball
	Paddle *Paddle
	Score  int

	holdingUp   bool // Right/Up 按住中，球拍往上(Y增加)
	holdingDown bool // Left/Down 按住中，球拍往下(Y減少)

	rng *rand.Rand
}

func NewGameState(seed int64) *GameState {
	rng := rand.New(rand.NewSource(seed))
	return &GameState{
		Ball:   NewBall(rng),
		Paddle: NewPaddle(),
		rng:    rng,
	}
}

// Tick 每個畫面更新一次
// dt 目前沒有使用，球每個 tick 固定移動一次速度的距離
func (g *GameState) Tick(dt float64) {
	g.Ball.Advance()
	g.checkKeys()
	g.checkMiss()
	g.checkHit()
	g.checkBounce()
}

func (g *GameState) OnKeyDown(key Key) {
	switch key {
	case KeyLeft, KeyDown:
		g.holdingDown = true
	case KeyRight, KeyUp:
		g.holdingUp = true
	}
}

func (g *GameState) OnKeyUp(key Key) {
	switch key {
	case KeyLeft, KeyDown:
		g.holdingDown = false
	case KeyRight, KeyUp:
		g.holdingUp = false
	}
}

func (g *GameState) SetHoldUp(holding bool) {
	g.holdingUp = holding
}

func (g *GameState) SetHoldDown(holding bool) {
	g.holdingDown = holding
}

// checkKeys 球拍移動後必須整支留在場地內，會出界的移動不執行
func (g *GameState) checkKeys() {
	if g.holdingDown && g.Paddle.Center.Y-MoveAmount-PaddleHeight*0.5 >= 0 {
		g.Paddle.MoveDown()
	}

	if g.holdingUp && g.Paddle.Center.Y+MoveAmount+PaddleHeight*0.5 <= ArenaHeight {
		g.Paddle.MoveUp()
	}
}

// checkMiss 球飛出右邊界算漏接，扣分後重新發球，分數最低為 0
func (g *GameState) checkMiss() {
	if g.Ball.Center.X > ArenaWidth {
		if g.Score >= ScoreMiss {
			g.Score -= ScoreMiss
		} else {
			g.Score = 0
		}

		g.Ball.Restart(g.rng)
		logger.Log.Debug(fmt.Sprintf(logger.BallMissMsg, g.Score))
	}
}

// checkHit 球進入球拍範圍且還在往球拍方向飛才算擊中，往回飛的球不重複計分
func (g *GameState) checkHit() {
	tooCloseX := PaddleWidth*0.5 + BallRadius
	tooCloseY := PaddleHeight*0.5 + BallRadius

	if math.Abs(g.Ball.Center.X-g.Paddle.Center.X) < tooCloseX &&
		math.Abs(g.Ball.Center.Y-g.Paddle.Center.Y) < tooCloseY &&
		g.Ball.Velocity.X > 0 {
		g.Ball.BounceHorizontal()
		g.Score += ScoreHit
		logger.Log.Debug(fmt.Sprintf(logger.PaddleHitMsg, g.Score))
	}
}

// checkBounce 檢查三面牆，速度方向已經反轉的球不再反彈
func (g *GameState) checkBounce() {
	if g.Ball.Center.X-BallRadius < 0 && g.Ball.Velocity.X < 0 {
		g.Ball.BounceHorizontal()
	}

	if g.Ball.Center.Y-BallRadius < 0 && g.Ball.Velocity.Y < 0 {
		g.Ball.BounceVertical()
	}

	if g.Ball.Center.Y+BallRadius > ArenaHeight && g.Ball.Velocity.Y > 0 {
		g.Ball.BounceVertical()
	}
}
