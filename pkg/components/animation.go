package components

// FrameAnimation 基于 tick 计数的帧动画
// 每 TicksPerFrame 个 tick 切换一帧
type FrameAnimation struct {
	FrameCount    int  // 动画总帧数
	TicksPerFrame int  // 每帧保持的 tick 数
	Ticks         int  // 已经过的 tick 数
	IsLooping     bool // 是否循环播放
}

// Advance 推进一个 tick
func (a *FrameAnimation) Advance() {
	a.Ticks++
}

// Reset 回到第 0 个 tick
func (a *FrameAnimation) Reset() {
	a.Ticks = 0
}

// CurrentFrame 返回当前帧索引（0-based）
// 非循环动画播放完毕后停在最后一帧
func (a *FrameAnimation) CurrentFrame() int {
	if a.FrameCount <= 0 {
		return 0
	}
	per := a.TicksPerFrame
	if per <= 0 {
		per = 1
	}
	frame := a.Ticks / per
	if a.IsLooping {
		return frame % a.FrameCount
	}
	if frame >= a.FrameCount {
		return a.FrameCount - 1
	}
	return frame
}
