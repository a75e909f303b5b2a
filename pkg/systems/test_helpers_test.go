package systems

import (
	"github.com/decker502/spacewar/pkg/components"
	"github.com/decker502/spacewar/pkg/entities"
)

// boxEntity 测试用实体：固定碰撞盒，不移动
type boxEntity struct {
	entities.Base
	box components.Rect
}

func newBox(x, y, size float64) *boxEntity {
	e := &boxEntity{
		Base: entities.NewBase(components.Vec2{X: x, Y: y}, 0, 0, components.Bounds{Width: 800, Height: 600}),
		box:  components.CenteredSquare(x, y, size),
	}
	e.SetBounds(e.box)
	e.Activate()
	return e
}

func (e *boxEntity) Update(elapsedMs int64) {}

func (e *boxEntity) Draw(s entities.Surface) {
	s.DrawSprite(entities.Sprite{Frame: int(e.ID())}, e.Position.X, e.Position.Y, e.Rotation)
}

// fakeInput 测试用按键状态
type fakeInput map[string]bool

func (f fakeInput) IsPressed(key string) bool {
	return f[key]
}

// fakeShip 记录收到的控制指令
type fakeShip struct {
	alive  bool
	turns  int
	engine bool
	shots  int
}

func (s *fakeShip) IsAlive() bool      { return s.alive }
func (s *fakeShip) TurnLeft()          { s.turns-- }
func (s *fakeShip) TurnRight()         { s.turns++ }
func (s *fakeShip) SetEngines(on bool) { s.engine = on }
func (s *fakeShip) Fire() bool {
	s.shots++
	return true
}

// orderSurface 记录绘制顺序
type orderSurface struct {
	frames []int
}

func (o *orderSurface) DrawSprite(s entities.Sprite, x, y, rotation float64) {
	o.frames = append(o.frames, s.Frame)
}

// manualClock 测试用时钟，直接设置 now
type manualClock struct {
	now int64
}

func newManualClock() *manualClock {
	return &manualClock{}
}

func (c *manualClock) Now() int64 {
	return c.now
}
