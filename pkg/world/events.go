package world

import "fmt"

// Listener 接收世界中发生的事件（音效、日志等）
// 回调在主循环中同步调用，不能阻塞
type Listener interface {
	ShipFired(player int)
	ShipDestroyed(player int)
	ShipRespawned(player int)
}

// Snapshot 只读的世界状态，用于 HUD 和测试
type Snapshot struct {
	Now     int64  // 当前游戏时间（毫秒）
	Scores  [2]int // 两名玩家的得分
	Kills   int    // 飞船被击毁的总次数
	Live    int    // 存活实体数量
	Pending int    // 生成队列中的请求数量
}

// ScoreText 返回 HUD 上两名玩家的得分文本
func (s Snapshot) ScoreText() (left, right string) {
	return fmt.Sprintf("P1 %d", s.Scores[0]), fmt.Sprintf("P2 %d", s.Scores[1])
}
