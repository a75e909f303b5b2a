package entities

import (
	"github.com/decker502/spacewar/pkg/clock"
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/config"
)

// ProjectileFrames 子弹动画帧数
const ProjectileFrames = 4

// Projectile 飞船发射的子弹
//
// 速度在创建时确定。发射后 InvulnerableMs 内碰撞盒为空，
// 避免刚出膛就击中发射者；超过寿命后自行死亡。
type Projectile struct {
	Base
	Velocity components.Vec2

	lifetime     components.LifetimeComponent
	invulnerable int64
	size         float64
	anim         components.FrameAnimation
	clock        clock.Clock
}

// NewProjectile 创建子弹（尚未存活）
func NewProjectile(pos components.Vec2, rotation float64, velocity components.Vec2, createdAt int64,
	area components.Bounds, cfg config.ProjectileConfig, clk clock.Clock) *Projectile {
	return &Projectile{
		Base:     NewBase(pos, rotation, OrderProjectile, area),
		Velocity: velocity,
		lifetime: components.LifetimeComponent{
			CreatedAt:   createdAt,
			MaxLifetime: cfg.LifespanMs,
		},
		invulnerable: cfg.InvulnerableMs,
		size:         cfg.Size,
		anim: components.FrameAnimation{
			FrameCount:    ProjectileFrames,
			TicksPerFrame: cfg.AnimTicksPerFrame,
			IsLooping:     true,
		},
		clock: clk,
	}
}

// Age 返回子弹当前年龄（毫秒）
func (p *Projectile) Age() int64 {
	return p.lifetime.Age(p.clock.Now())
}

// Collidable 子弹年龄超过无敌时间后才参与碰撞
func (p *Projectile) Collidable() bool {
	return p.Age() > p.invulnerable
}

// Update 推进子弹；超过寿命时死亡并停止本帧的其他处理
func (p *Projectile) Update(elapsedMs int64) {
	now := p.clock.Now()
	if p.lifetime.Expired(now) {
		p.Kill()
		return
	}

	p.Position = p.Position.Add(p.Velocity.Scale(motionStep(elapsedMs)))
	p.anim.Advance()
	p.Base.Update(elapsedMs)

	if p.lifetime.Age(now) > p.invulnerable {
		p.SetBounds(components.CenteredSquare(p.Position.X, p.Position.Y, p.size))
	} else {
		p.SetBounds(components.Rect{})
	}
}

// Draw 绘制子弹
func (p *Projectile) Draw(surface Surface) {
	surface.DrawSprite(Sprite{Kind: SpriteProjectile, Frame: p.anim.CurrentFrame()},
		p.Position.X, p.Position.Y, p.Rotation)
}
