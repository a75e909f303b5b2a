package entities

import (
	"github.com/decker502/spacewar/pkg/clock"
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/config"
)

// ThrustFrames 尾焰动画帧数（不含静止帧）
const ThrustFrames = 3

// Ship 玩家控制的飞船
//
// 飞船被击毁后不会被销毁，而是重置位置后重新加入生成队列。
type Ship struct {
	Base
	Player   int
	Velocity components.Vec2

	cfg           config.ShipConfig
	projectileCfg config.ProjectileConfig
	clock         clock.Clock
	spawner       Spawner

	cooldown   components.CooldownComponent
	enginesOn  bool
	thrustAnim components.FrameAnimation

	firedListeners []func(p *Projectile)
}

// NewShip 创建飞船（尚未存活，需要通过 Spawner 生成）
//
// 参数:
//   - player: 玩家序号（0 或 1）
//   - pos: 初始位置
//   - rotation: 初始朝向（度）
//   - area: 可玩区域
//   - cfg: 飞船参数
//   - projectileCfg: 发射的子弹参数
//   - clk: 游戏时钟
//   - spawner: 子弹生成请求的接收者
func NewShip(player int, pos components.Vec2, rotation float64, area components.Bounds,
	cfg config.ShipConfig, projectileCfg config.ProjectileConfig, clk clock.Clock, spawner Spawner) *Ship {
	s := &Ship{
		Base:          NewBase(pos, rotation, OrderShip, area),
		Player:        player,
		cfg:           cfg,
		projectileCfg: projectileCfg,
		clock:         clk,
		spawner:       spawner,
		cooldown:      components.NewCooldown(cfg.FireRateMs),
		thrustAnim: components.FrameAnimation{
			FrameCount:    ThrustFrames,
			TicksPerFrame: cfg.ThrustTicksPerFrame,
			IsLooping:     true,
		},
	}
	s.updateBounds()
	return s
}

// TurnLeft 逆时针旋转一个转向步长
func (s *Ship) TurnLeft() {
	s.Rotation -= s.cfg.TurnRate
}

// TurnRight 顺时针旋转一个转向步长
func (s *Ship) TurnRight() {
	s.Rotation += s.cfg.TurnRate
}

// SetEngines 开关引擎
func (s *Ship) SetEngines(on bool) {
	s.enginesOn = on
}

// EnginesOn 返回引擎是否开启
func (s *Ship) EnginesOn() bool {
	return s.enginesOn
}

// OnFired 注册射击回调
func (s *Ship) OnFired(fn func(p *Projectile)) {
	s.firedListeners = append(s.firedListeners, fn)
}

// Fire 发射一枚子弹
// 距上次射击不足 FireRateMs 时静默忽略
//
// 返回:
//   - bool: 是否成功发射
func (s *Ship) Fire() bool {
	now := s.clock.Now()
	if !s.cooldown.TryFire(now) {
		return false
	}

	// 子弹继承飞船自身的速度
	velocity := components.Heading(s.Rotation).Scale(s.cfg.BulletSpeed).Add(s.Velocity)
	p := NewProjectile(s.Position, s.Rotation, velocity, now, s.area, s.projectileCfg, s.clock)
	s.spawner.Spawn(p, now)

	for _, fn := range s.firedListeners {
		fn(p)
	}
	return true
}

// LastFireTime 返回上次成功射击的游戏时间
func (s *Ship) LastFireTime() int64 {
	return s.cooldown.LastFire
}

// Reset 把飞船移动到新位置并清零速度，用于重生
func (s *Ship) Reset(pos components.Vec2, rotation float64) {
	s.Position = pos
	s.Rotation = rotation
	s.Velocity = components.Vec2{}
	s.enginesOn = false
	s.thrustAnim.Reset()
	s.updateBounds()
}

// Update 推进飞船：加速、积分位置、环绕、更新碰撞盒
func (s *Ship) Update(elapsedMs int64) {
	step := motionStep(elapsedMs)

	if s.enginesOn {
		thrust := components.Heading(s.Rotation).Scale(s.cfg.Thrust * step)
		s.Velocity = s.Velocity.Add(thrust)
		s.thrustAnim.Advance()
	} else {
		s.thrustAnim.Reset()
	}

	s.Position = s.Position.Add(s.Velocity.Scale(step))
	s.Base.Update(elapsedMs)
	s.updateBounds()
}

// ThrustFrame 返回当前尾焰帧：0 为静止，1..ThrustFrames 为喷射动画
func (s *Ship) ThrustFrame() int {
	if !s.enginesOn {
		return 0
	}
	return 1 + s.thrustAnim.CurrentFrame()
}

// Draw 绘制飞船
func (s *Ship) Draw(surface Surface) {
	surface.DrawSprite(Sprite{Kind: SpriteShip, Player: s.Player, Frame: s.ThrustFrame()},
		s.Position.X, s.Position.Y, s.Rotation)
}

// updateBounds 机身碰撞盒：以位置为中心的固定正方形
func (s *Ship) updateBounds() {
	s.SetBounds(components.CenteredSquare(s.Position.X, s.Position.Y, s.cfg.BodySize))
}
