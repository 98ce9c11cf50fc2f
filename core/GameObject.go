package core

import "math/rand"

type Vector2 struct {
	X, Y float64
}

type Ball struct {
	Center   Vector2
	Velocity Vector2
}

type Paddle struct {
	Center Vector2
}

func NewBall(rng *rand.Rand) *Ball {
	ball := &Ball{}
	ball.Restart(rng)
	return ball
}

// Advance 球依速度前進，邊界判斷由 GameState 負責
func (b *Ball) Advance() {
	b.Center.X += b.Velocity.X
	b.Center.Y += b.Velocity.Y
}

func (b *Ball) BounceHorizontal() {
	b.Velocity.X = -b.Velocity.X
}

func (b *Ball) BounceVertical() {
	b.Velocity.Y = -b.Velocity.Y
}

// Restart 把球放回左邊界重新發球，兩軸速度一律為正(往右下方飛向球拍)
func (b *Ball) Restart(rng *rand.Rand) {
	b.Center.X = 0
	b.Center.Y = rng.Float64() * ArenaHeight
	b.Velocity.X = randSpeed(rng)
	b.Velocity.Y = randSpeed(rng)
}

func randSpeed(rng *rand.Rand) float64 {
	return RestartSpeedMin + rng.Float64()*(RestartSpeedMax-RestartSpeedMin)
}

// NewPaddle 球拍固定在右邊界，X 整場不變
func NewPaddle() *Paddle {
	return &Paddle{
		Center: Vector2{X: ArenaWidth - PaddleWidth, Y: ArenaHeight * 0.5},
	}
}

func (p *Paddle) MoveUp() {
	p.Center.Y += MoveAmount
}

func (p *Paddle) MoveDown() {
	p.Center.Y -= MoveAmount
}
