package entities

import (
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/config"
)

// Explosion 爆炸特效：纯视觉，没有碰撞盒，播放完毕后自行死亡
type Explosion struct {
	Base
	anim     components.FrameAnimation
	duration int
}

// NewExplosion 在指定位置创建爆炸特效（尚未存活）
func NewExplosion(pos components.Vec2, rotation float64, area components.Bounds, cfg config.ExplosionConfig) *Explosion {
	return &Explosion{
		Base: NewBase(pos, rotation, OrderExplosion, area),
		anim: components.FrameAnimation{
			FrameCount:    cfg.Frames,
			TicksPerFrame: cfg.TicksPerFrame,
		},
		duration: cfg.DurationTicks,
	}
}

// Ticks 返回已播放的 tick 数
func (e *Explosion) Ticks() int {
	return e.anim.Ticks
}

// Frame 返回当前动画帧
func (e *Explosion) Frame() int {
	return e.anim.CurrentFrame()
}

// Update 推进一帧动画，计数超过总时长后死亡
func (e *Explosion) Update(elapsedMs int64) {
	e.anim.Advance()
	if e.anim.Ticks > e.duration {
		e.Kill()
		return
	}
	e.Base.Update(elapsedMs)
}

// Draw 绘制爆炸
func (e *Explosion) Draw(surface Surface) {
	surface.DrawSprite(Sprite{Kind: SpriteExplosion, Frame: e.anim.CurrentFrame()},
		e.Position.X, e.Position.Y, e.Rotation)
}
