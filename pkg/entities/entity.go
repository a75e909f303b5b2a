// Package entities 定义游戏实体的生命周期契约及具体实体（飞船、子弹、爆炸）
//
// 实体只在 World 的两个固定时刻进出存活集合：生成队列提升和死亡剔除。
// 实体之间不互相持有引用，死亡副作用只通过 OnKilled 回调传递。
package entities

import (
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/ecs"
)

// 绘制/更新顺序，数值大的后绘制（在上层）
const (
	OrderProjectile = 0
	OrderShip       = 1
	OrderExplosion  = 2
)

// SpriteKind 贴图类别
type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpriteProjectile
	SpriteExplosion
)

// Sprite 描述一次绘制所需的贴图句柄
type Sprite struct {
	Kind   SpriteKind
	Player int // 飞船所属玩家（0 或 1），其他实体为 0
	Frame  int // 动画帧索引
}

// Surface 渲染目标，由前端（ebiten / 终端）实现
type Surface interface {
	DrawSprite(s Sprite, x, y, rotation float64)
}

// Spawner 接收生成请求，实体在游戏时间 at 之后才进入存活集合
type Spawner interface {
	Spawn(e Entity, at int64) ecs.EntityID
}

// Entity 所有实体共有的能力：可模拟、可碰撞、可绘制
type Entity interface {
	ecs.Lifecycle
	Update(elapsedMs int64)
	Draw(s Surface)
	Bounds() components.Rect
	Kill()
	OnKilled(fn func())
}

// Base 实体的公共状态，具体实体通过嵌入获得生命周期行为
type Base struct {
	id       ecs.EntityID
	alive    bool
	Position components.Vec2
	Rotation float64 // 角度（度），不做范围限制
	bounds   components.Rect
	order    int
	area     components.Bounds

	killedListeners []func()
}

// NewBase 创建一个尚未存活的实体基础状态
func NewBase(pos components.Vec2, rotation float64, order int, area components.Bounds) Base {
	return Base{
		Position: pos,
		Rotation: rotation,
		order:    order,
		area:     area,
	}
}

func (b *Base) ID() ecs.EntityID      { return b.id }
func (b *Base) SetID(id ecs.EntityID) { b.id = id }
func (b *Base) IsAlive() bool         { return b.alive }
func (b *Base) Activate()             { b.alive = true }
func (b *Base) DrawOrder() int        { return b.order }

// Bounds 返回当前碰撞盒，退化碰撞盒表示不参与碰撞
func (b *Base) Bounds() components.Rect {
	return b.bounds
}

// SetBounds 设置碰撞盒
func (b *Base) SetBounds(r components.Rect) {
	b.bounds = r
}

// Area 返回可玩区域尺寸
func (b *Base) Area() components.Bounds {
	return b.area
}

// OnKilled 注册死亡回调，按注册顺序调用
func (b *Base) OnKilled(fn func()) {
	b.killedListeners = append(b.killedListeners, fn)
}

// Kill 标记实体死亡并通知回调
// 只有 存活 -> 死亡 的转换会触发回调，重复调用无效果
func (b *Base) Kill() {
	if !b.alive {
		return
	}
	b.alive = false
	for _, fn := range b.killedListeners {
		fn()
	}
}

// Update 默认行为：屏幕环绕
// 具体实体在自己的更新逻辑之后调用它
func (b *Base) Update(elapsedMs int64) {
	b.Position = b.area.Wrap(b.Position)
}

// motionStep 把经过的毫秒数换算成标准帧数
func motionStep(elapsedMs int64) float64 {
	if elapsedMs <= 0 {
		return 0
	}
	return float64(elapsedMs) / config.FrameMillis
}
