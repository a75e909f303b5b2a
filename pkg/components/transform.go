package components

import "math"

// Vec2 二维向量，用于位置和速度
type Vec2 struct {
	X float64
	Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 返回 v * k
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Heading 返回角度（度）对应的单位向量
// 0° 指向 +X，屏幕坐标系中顺时针为正
func Heading(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Bounds 可玩区域尺寸，坐标范围 [0, Width] x [0, Height]
type Bounds struct {
	Width  float64
	Height float64
}

// Wrap 屏幕环绕：超出某条边时吸附到对边（不是反弹）
func (b Bounds) Wrap(p Vec2) Vec2 {
	if p.X > b.Width {
		p.X = 0
	} else if p.X < 0 {
		p.X = b.Width
	}
	if p.Y > b.Height {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = b.Height
	}
	return p
}
