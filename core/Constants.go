package core

// 場地與物件的固定尺寸，不可變動否則玩法會跑掉
const ArenaWidth = 400.0  // 場地寬度
const ArenaHeight = 300.0 // 場地高度

const BallRadius = 10.0 // 球半徑

const PaddleWidth = 10.0  // 球拍寬度
const PaddleHeight = 50.0 // 球拍高度
const MoveAmount = 5.0    // 球拍單次移動距離

const ScoreHit = 1  // 擊中得分
const ScoreMiss = 5 // 漏接扣分

const RestartSpeedMin = 3.0 // 發球速度下限
const RestartSpeedMax = 5.0 // 發球速度上限
