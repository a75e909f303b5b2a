package components

// Rect 轴对齐碰撞盒（AABB），以左上角 + 宽高表示
// 宽或高为 0 的碰撞盒视为无效，永远不会与任何碰撞盒相交
type Rect struct {
	X      float64 // 左上角X（像素）
	Y      float64 // 左上角Y（像素）
	Width  float64 // 宽度（像素）
	Height float64 // 高度（像素）
}

// CenteredSquare 返回以 (cx, cy) 为中心、边长为 size 的正方形碰撞盒
func CenteredSquare(cx, cy, size float64) Rect {
	return Rect{
		X:      cx - size/2,
		Y:      cy - size/2,
		Width:  size,
		Height: size,
	}
}

// Empty 判断碰撞盒是否退化（面积为 0）
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects 检查两个碰撞盒是否重叠
// 边界刚好接触也算碰撞；任一碰撞盒退化时返回 false
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}

	// 如果任一轴上没有重叠，则没有碰撞
	return r.X+r.Width >= o.X &&
		r.X <= o.X+o.Width &&
		r.Y+r.Height >= o.Y &&
		r.Y <= o.Y+o.Height
}
