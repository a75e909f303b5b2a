package config

// 布局与时间基准常量

const (
	// DefaultWindowWidth 默认逻辑屏幕宽度（像素）
	DefaultWindowWidth = 800

	// DefaultWindowHeight 默认逻辑屏幕高度（像素）
	DefaultWindowHeight = 600

	// DefaultTPS 默认逻辑帧率（每秒 tick 数）
	DefaultTPS = 60

	// FrameMillis 一个标准帧的时长（毫秒）
	// 速度以"像素/标准帧"为单位，位移 = 速度 * (elapsedMs / FrameMillis)
	FrameMillis = 1000.0 / DefaultTPS

	// HUDMargin 比分文字距屏幕边缘的距离（像素）
	HUDMargin = 8
)
