package components

// CooldownComponent 冷却计时器（如射击间隔）
// 距上次触发至少 Interval 毫秒后才能再次触发
type CooldownComponent struct {
	Interval int64 // 冷却时长（毫秒）
	LastFire int64 // 上次触发的游戏时间
}

// NewCooldown 创建一个立即可用的冷却计时器
func NewCooldown(interval int64) CooldownComponent {
	return CooldownComponent{
		Interval: interval,
		LastFire: -interval,
	}
}

// Ready 判断 now 时刻是否已冷却完毕
func (c *CooldownComponent) Ready(now int64) bool {
	return now-c.LastFire >= c.Interval
}

// TryFire 冷却完毕时记录触发并返回 true，否则不做任何修改
func (c *CooldownComponent) TryFire(now int64) bool {
	if !c.Ready(now) {
		return false
	}
	c.LastFire = now
	return true
}
