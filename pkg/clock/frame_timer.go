package clock

import "time"

// MaxFrameMillis 单帧经过时间的上限（毫秒）
// 窗口被拖动或进程挂起后恢复时，避免实体一次移动过远
const MaxFrameMillis = 250

// FrameTimer 用墙上时间计算相邻两帧的间隔
type FrameTimer struct {
	last    time.Time
	started bool
}

// Tick 返回距上一次 Tick 经过的毫秒数
// 第一次调用返回 0；时间倒退时返回 0；超过 MaxFrameMillis 时截断
func (ft *FrameTimer) Tick(now time.Time) int64 {
	if !ft.started {
		ft.started = true
		ft.last = now
		return 0
	}

	elapsed := now.Sub(ft.last).Milliseconds()
	if elapsed < 0 {
		ft.last = now
		return 0
	}
	// 不足 1ms 的部分留到下一帧
	ft.last = ft.last.Add(time.Duration(elapsed) * time.Millisecond)

	if elapsed > MaxFrameMillis {
		elapsed = MaxFrameMillis
	}
	return elapsed
}
