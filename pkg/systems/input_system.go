package systems

import (
	"github.com/decker502/spacewar/pkg/config"
)

// InputSource 每帧轮询一次的按键状态
// 按键名的含义由前端决定（ebiten 键名或终端按键名）
type InputSource interface {
	IsPressed(key string) bool
}

// Controllable 可以接收玩家输入的实体
type Controllable interface {
	IsAlive() bool
	TurnLeft()
	TurnRight()
	SetEngines(on bool)
	Fire() bool
}

// InputSystem 把按键状态转换为飞船控制
// 未存活（等待重生）的飞船不接收任何输入
type InputSystem struct {
	source   InputSource
	bindings [2]config.PlayerControls
	ships    [2]Controllable
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - source: 按键状态来源
//   - controls: 两名玩家的按键绑定
func NewInputSystem(source InputSource, controls config.ControlsConfig) *InputSystem {
	return &InputSystem{
		source:   source,
		bindings: controls.Players(),
	}
}

// Bind 把玩家序号与飞船关联
func (s *InputSystem) Bind(player int, ship Controllable) {
	if player < 0 || player >= len(s.ships) {
		return
	}
	s.ships[player] = ship
}

// Update 为每艘存活的飞船应用本帧输入
func (s *InputSystem) Update() {
	for player, ship := range s.ships {
		if ship == nil || !ship.IsAlive() {
			continue
		}
		keys := s.bindings[player]

		if s.source.IsPressed(keys.Left) {
			ship.TurnLeft()
		}
		if s.source.IsPressed(keys.Right) {
			ship.TurnRight()
		}
		ship.SetEngines(s.source.IsPressed(keys.Thrust))
		if s.source.IsPressed(keys.Fire) {
			ship.Fire()
		}
	}
}
