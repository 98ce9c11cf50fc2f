package logger

const GameStartMsg = "遊戲開始！"
const GameExitMsg = "玩家離開遊戲，最終分數 %d"

const BallMissMsg = "漏接！重新發球 目前分數 %d"
const PaddleHitMsg = "擊中球拍！目前分數 %d"
