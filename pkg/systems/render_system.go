package systems

import (
	"github.com/decker502/spacewar/pkg/entities"
)

// RenderSystem 按存活集合的顺序（DrawOrder）绘制实体
// 只读取实体状态，不做任何修改
type RenderSystem struct{}

// NewRenderSystem 创建渲染系统
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw 把所有实体绘制到 surface
//
// 返回:
//   - int: 绘制的实体数量
func (rs *RenderSystem) Draw(live []entities.Entity, surface entities.Surface) int {
	for _, e := range live {
		e.Draw(surface)
	}
	return len(live)
}
