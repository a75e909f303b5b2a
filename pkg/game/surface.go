package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/spacewar/pkg/entities"
)

// EbitenSurface 把实体的绘制请求转换为 ebiten 绘图操作
// 贴图中心对齐实体位置，按实体角度旋转
type EbitenSurface struct {
	rm     *ResourceManager
	target *ebiten.Image
	drawn  int
}

// NewEbitenSurface 创建绘制表面
func NewEbitenSurface(rm *ResourceManager) *EbitenSurface {
	return &EbitenSurface{rm: rm}
}

// Begin 设置本帧的绘制目标
func (s *EbitenSurface) Begin(target *ebiten.Image) {
	s.target = target
	s.drawn = 0
}

// Drawn 返回本帧绘制的贴图数量
func (s *EbitenSurface) Drawn() int {
	return s.drawn
}

// DrawSprite 实现 entities.Surface
func (s *EbitenSurface) DrawSprite(sprite entities.Sprite, x, y, rotation float64) {
	if s.target == nil {
		return
	}
	img := s.rm.Sprite(sprite)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
	s.drawn++
}
