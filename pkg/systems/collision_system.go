package systems

import (
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/entities"
)

// CollisionSystem 对所有存活实体做两两 AABB 碰撞检测
//
// 实体数量只有几十个，O(n²) 的两两检测足够，不需要空间索引。
//
// 检测分两步：先基于本帧开始时的存活集合找出所有相交的实体对，
// 再统一 Kill。这样结果与遍历顺序无关，Kill 回调里的副作用
// （如飞船重置位置）也不会影响同一轮的其他检测。
type CollisionSystem struct {
	logger *zap.Logger
	hit    []bool // 复用，避免每帧分配
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(logger *zap.Logger) *CollisionSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollisionSystem{
		logger: logger.Named("Collision"),
	}
}

// Update 检测碰撞并杀死所有参与碰撞的实体
// 只标记死亡，不修改存活集合
//
// 返回:
//   - int: 相交的实体对数量
func (cs *CollisionSystem) Update(live []entities.Entity) int {
	n := len(live)
	if cap(cs.hit) < n {
		cs.hit = make([]bool, n)
	}
	hit := cs.hit[:n]
	clear(hit)

	pairs := 0
	for i := 0; i < n; i++ {
		a := live[i]
		if !a.IsAlive() {
			continue
		}
		boundsA := a.Bounds()
		if boundsA.Empty() {
			continue
		}

		for j := i + 1; j < n; j++ {
			b := live[j]
			if !b.IsAlive() {
				continue
			}
			if boundsA.Intersects(b.Bounds()) {
				hit[i] = true
				hit[j] = true
				pairs++
				cs.logger.Debug("collision",
					zap.Uint64("a", uint64(a.ID())),
					zap.Uint64("b", uint64(b.ID())))
			}
		}
	}

	for i, h := range hit {
		if h {
			live[i].Kill()
		}
	}
	return pairs
}
