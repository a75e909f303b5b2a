// Package world 实现游戏世界的逐帧状态机
//
// 每帧严格按顺序执行：
//  1. 提升：生成队列中激活时间已到的实体进入存活集合
//  2. 输入：存活的飞船应用玩家输入
//  3. 模拟：按集合顺序更新所有存活实体
//  4. 碰撞：两两检测，相交的实体被杀死
//  5. 剔除：移除所有死亡实体
//
// 死亡的副作用（爆炸、计分、重生）通过生成时注册的 Kill 回调完成，
// 回调只向生成队列追加请求，不直接修改存活集合。
package world

import (
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/clock"
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/ecs"
	"github.com/decker502/spacewar/pkg/entities"
	"github.com/decker502/spacewar/pkg/systems"
)

// PlayerCount 玩家数量
const PlayerCount = 2

// World 持有存活集合、生成队列、得分和游戏时钟
// 只能在主循环中使用
type World struct {
	cfg    *config.GameConfig
	logger *zap.Logger
	clock  *clock.GameClock
	random Random
	area   components.Bounds

	em        *ecs.EntityManager[entities.Entity]
	input     *systems.InputSystem
	collision *systems.CollisionSystem
	render    *systems.RenderSystem

	ships     [PlayerCount]*entities.Ship
	scores    [PlayerCount]int
	kills     int
	listeners []Listener
}

// NewWorld 创建游戏世界并为两名玩家各生成一艘飞船
//
// 飞船在第一帧的提升阶段进入存活集合。
//
// 参数:
//   - cfg: 已经 Sanitize 过的游戏配置
//   - input: 按键状态来源
//   - random: 重生位置的随机数来源
//   - logger: 日志，可为 nil
func NewWorld(cfg *config.GameConfig, input systems.InputSource, random Random, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &World{
		cfg:       cfg,
		logger:    logger.Named("World"),
		clock:     clock.NewGameClock(0),
		random:    random,
		area:      components.Bounds{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)},
		em:        ecs.NewEntityManager[entities.Entity](),
		input:     systems.NewInputSystem(input, cfg.Controls),
		collision: systems.NewCollisionSystem(logger),
		render:    systems.NewRenderSystem(),
	}

	starts := [PlayerCount]struct {
		pos      components.Vec2
		rotation float64
	}{
		{pos: components.Vec2{X: w.area.Width / 4, Y: w.area.Height / 2}, rotation: 0},
		{pos: components.Vec2{X: w.area.Width * 3 / 4, Y: w.area.Height / 2}, rotation: 180},
	}

	for player := range w.ships {
		ship := entities.NewShip(player, starts[player].pos, starts[player].rotation, w.area,
			cfg.Ship, cfg.Projectile, w.clock, w)
		ship.OnKilled(func() { w.onShipKilled(ship) })
		ship.OnFired(func(*entities.Projectile) { w.notify(func(l Listener) { l.ShipFired(ship.Player) }) })

		w.ships[player] = ship
		w.input.Bind(player, ship)
		w.Spawn(ship, w.clock.Now())
	}

	w.logger.Info("world created",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	return w
}

// AddListener 注册事件监听者
func (w *World) AddListener(l Listener) {
	w.listeners = append(w.listeners, l)
}

// Spawn 请求在游戏时间 at 之后生成实体
// 实现 entities.Spawner
func (w *World) Spawn(e entities.Entity, at int64) ecs.EntityID {
	return w.em.Spawn(e, at)
}

// Frame 推进一帧
//
// 参数:
//   - elapsedMs: 距上一帧经过的时间（毫秒），所有实体使用同一个值
func (w *World) Frame(elapsedMs int64) {
	now := w.clock.Advance(elapsedMs)

	// 1. 提升
	var wasAlive [PlayerCount]bool
	for i, s := range w.ships {
		wasAlive[i] = s.IsAlive()
	}
	if promoted := w.em.PromoteReady(now); promoted > 0 {
		w.logger.Debug("promoted", zap.Int("count", promoted), zap.Int64("now", now))
		for i, s := range w.ships {
			if !wasAlive[i] && s.IsAlive() {
				w.notify(func(l Listener) { l.ShipRespawned(s.Player) })
			}
		}
	}

	// 2. 输入
	w.input.Update()

	// 3. 模拟
	live := w.em.Entities()
	for _, e := range live {
		e.Update(elapsedMs)
	}

	// 4. 碰撞
	w.collision.Update(live)

	// 5. 剔除
	w.em.RemoveDead()
}

// Draw 按绘制顺序绘制所有存活实体
func (w *World) Draw(surface entities.Surface) {
	w.render.Draw(w.em.Entities(), surface)
}

// onShipKilled 飞船被击毁：生成爆炸、对手得分、重置位置并安排重生
func (w *World) onShipKilled(ship *entities.Ship) {
	now := w.clock.Now()

	explosion := entities.NewExplosion(ship.Position, ship.Rotation, w.area, w.cfg.Explosion)
	w.Spawn(explosion, now)

	opponent := (ship.Player + 1) % PlayerCount
	w.scores[opponent]++
	w.kills++

	pos := components.Vec2{
		X: float64(w.random.Next(0, w.cfg.Window.Width)),
		Y: float64(w.random.Next(0, w.cfg.Window.Height)),
	}
	rotation := float64(w.random.Next(0, 360))
	ship.Reset(pos, rotation)
	respawnAt := now + w.cfg.Respawn.DelayMs
	w.Spawn(ship, respawnAt)

	w.logger.Info("ship destroyed",
		zap.Int("player", ship.Player),
		zap.Ints("scores", w.scores[:]),
		zap.Int64("respawnAt", respawnAt))

	w.notify(func(l Listener) { l.ShipDestroyed(ship.Player) })
}

func (w *World) notify(fn func(l Listener)) {
	for _, l := range w.listeners {
		fn(l)
	}
}

// Ship 返回玩家的飞船
func (w *World) Ship(player int) *entities.Ship {
	if player < 0 || player >= PlayerCount {
		return nil
	}
	return w.ships[player]
}

// Scores 返回两名玩家的得分
func (w *World) Scores() [PlayerCount]int {
	return w.scores
}

// Now 返回当前游戏时间（毫秒）
func (w *World) Now() int64 {
	return w.clock.Now()
}

// Area 返回可玩区域尺寸
func (w *World) Area() components.Bounds {
	return w.area
}

// Entities 返回存活集合（只读）
func (w *World) Entities() []entities.Entity {
	return w.em.Entities()
}

// IsPending 检查实体是否在生成队列中
func (w *World) IsPending(id ecs.EntityID) bool {
	return w.em.IsPending(id)
}

// Snapshot 返回当前世界状态
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Now:     w.clock.Now(),
		Scores:  w.scores,
		Kills:   w.kills,
		Live:    w.em.LiveCount(),
		Pending: w.em.PendingCount(),
	}
}
