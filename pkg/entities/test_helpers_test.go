package entities

import (
	"github.com/decker502/spacewar/pkg/clock"
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/ecs"
)

var testArea = components.Bounds{Width: 800, Height: 600}

// recordingSpawner 记录生成请求的测试 Spawner
type recordingSpawner struct {
	requests []spawnCall
}

type spawnCall struct {
	entity Entity
	at     int64
}

func (r *recordingSpawner) Spawn(e Entity, at int64) ecs.EntityID {
	r.requests = append(r.requests, spawnCall{entity: e, at: at})
	return ecs.EntityID(len(r.requests))
}

// recordingSurface 记录绘制调用的测试 Surface
type recordingSurface struct {
	sprites []Sprite
	xs, ys  []float64
}

func (r *recordingSurface) DrawSprite(s Sprite, x, y, rotation float64) {
	r.sprites = append(r.sprites, s)
	r.xs = append(r.xs, x)
	r.ys = append(r.ys, y)
}

func testConfig() *config.GameConfig {
	return config.DefaultGameConfig()
}

func newTestClock(start int64) *clock.GameClock {
	return clock.NewGameClock(start)
}
