package components

// LifetimeComponent 记录实体的创建时间和最大寿命（毫秒，基于游戏时钟）
// 用于子弹这类存在时间有上限的实体
type LifetimeComponent struct {
	CreatedAt   int64 // 创建时的游戏时间
	MaxLifetime int64 // 最大寿命
}

// Age 返回实体在 now 时刻的年龄
func (l LifetimeComponent) Age(now int64) int64 {
	return now - l.CreatedAt
}

// Expired 年龄严格大于最大寿命时过期
func (l LifetimeComponent) Expired(now int64) bool {
	return l.Age(now) > l.MaxLifetime
}
