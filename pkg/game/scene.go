package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏场景（对战、暂停等）
// 同一时刻只有一个场景的 Update 和 Draw 被调用
type Scene interface {
	// Update 推进场景逻辑
	// elapsedMs 是距上一帧经过的毫秒数；返回非 nil 错误时游戏退出
	Update(elapsedMs int64) error

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
