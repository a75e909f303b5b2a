// Package ecs 管理实体的延迟生成队列与存活实体集合
//
// 存活集合只在两个时刻变化：PromoteReady（生成队列 -> 存活集合）
// 和 RemoveDead（移除已死亡实体）。两次调用之间对集合的遍历是安全的。
package ecs

import "slices"

// EntityID 是实体的唯一标识符
type EntityID uint64

// Lifecycle 是 EntityManager 对实体的最小要求
type Lifecycle interface {
	ID() EntityID
	SetID(id EntityID)
	IsAlive() bool
	// Activate 在实体进入存活集合时调用，将其标记为存活
	Activate()
	// DrawOrder 绘制/更新优先级，数值小的先处理
	DrawOrder() int
}

// spawnRequest 一条待生成记录：实体 + 最早激活时间
type spawnRequest[E Lifecycle] struct {
	entity E
	at     int64
}

// EntityManager 持有生成队列和按 DrawOrder 排序的存活集合
type EntityManager[E Lifecycle] struct {
	nextID uint64
	// 存活实体，按 DrawOrder 稳定排序
	live []E
	// 尚未激活的生成请求（无序）
	pending []spawnRequest[E]
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[E Lifecycle]() *EntityManager[E] {
	return &EntityManager[E]{
		nextID:  1, // ID从1开始,0保留为无效ID
		live:    make([]E, 0, 32),
		pending: make([]spawnRequest[E], 0, 8),
	}
}

// Spawn 请求在游戏时间 at 之后生成实体（不会立即进入存活集合）
//
// 首次生成的实体会被分配 ID；回收再生成的实体保留原 ID。
// 已经存活的实体不会重复入队。
//
// 返回:
//   - EntityID: 实体ID
func (em *EntityManager[E]) Spawn(e E, at int64) EntityID {
	if e.ID() == 0 {
		e.SetID(EntityID(em.nextID))
		em.nextID++
	}
	if e.IsAlive() {
		return e.ID()
	}
	em.pending = append(em.pending, spawnRequest[E]{entity: e, at: at})
	return e.ID()
}

// PromoteReady 把激活时间 <= now 的请求移入存活集合并标记存活
// 只有确实移入了实体时才重新排序
//
// 返回:
//   - int: 本次移入的实体数量
func (em *EntityManager[E]) PromoteReady(now int64) int {
	promoted := 0
	remaining := em.pending[:0]
	for _, req := range em.pending {
		if req.at > now {
			remaining = append(remaining, req)
			continue
		}
		req.entity.Activate()
		em.live = append(em.live, req.entity)
		promoted++
	}
	// 清空尾部引用，避免已移入的实体被底层数组持有
	clear(em.pending[len(remaining):])
	em.pending = remaining

	if promoted > 0 {
		slices.SortStableFunc(em.live, func(a, b E) int {
			return a.DrawOrder() - b.DrawOrder()
		})
	}
	return promoted
}

// RemoveDead 从存活集合中移除所有 IsAlive() == false 的实体
// 这是存活集合唯一的移除点
//
// 返回:
//   - int: 移除的实体数量
func (em *EntityManager[E]) RemoveDead() int {
	kept := em.live[:0]
	for _, e := range em.live {
		if e.IsAlive() {
			kept = append(kept, e)
		}
	}
	removed := len(em.live) - len(kept)
	clear(em.live[len(kept):])
	em.live = kept
	return removed
}

// Entities 返回存活集合（按 DrawOrder 排序）
// 返回的切片在下一次 PromoteReady/RemoveDead 之前有效，调用方不得修改
func (em *EntityManager[E]) Entities() []E {
	return em.live
}

// LiveCount 返回存活实体数量
func (em *EntityManager[E]) LiveCount() int {
	return len(em.live)
}

// PendingCount 返回生成队列中的请求数量
func (em *EntityManager[E]) PendingCount() int {
	return len(em.pending)
}

// IsPending 检查实体是否在生成队列中
func (em *EntityManager[E]) IsPending(id EntityID) bool {
	for _, req := range em.pending {
		if req.entity.ID() == id {
			return true
		}
	}
	return false
}

// IsLive 检查实体是否在存活集合中
func (em *EntityManager[E]) IsLive(id EntityID) bool {
	for _, e := range em.live {
		if e.ID() == id {
			return true
		}
	}
	return false
}
