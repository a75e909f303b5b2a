// Package clock 提供游戏逻辑使用的单调时钟
//
// 所有寿命、射速、重生延迟的判断都基于同一个游戏时钟（毫秒），
// 而不是各实体独立计时。
package clock

// Clock 返回当前游戏时间（毫秒），单调不减
type Clock interface {
	Now() int64
}

// GameClock 由主循环逐帧推进的游戏时钟
// 只在主循环中调用 Advance，不需要加锁
type GameClock struct {
	now int64
}

// NewGameClock 创建一个从 start 毫秒开始计时的时钟
func NewGameClock(start int64) *GameClock {
	return &GameClock{now: start}
}

// Now 返回当前游戏时间（毫秒）
func (c *GameClock) Now() int64 {
	return c.now
}

// Advance 推进时钟，负值会被忽略以保证单调性
//
// 返回:
//   - int64: 推进后的当前时间
func (c *GameClock) Advance(elapsedMs int64) int64 {
	if elapsedMs > 0 {
		c.now += elapsedMs
	}
	return c.now
}
