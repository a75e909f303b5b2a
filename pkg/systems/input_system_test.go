package systems

import (
	"testing"

	"github.com/decker502/spacewar/pkg/config"
)

func TestInputSystemAppliesBindings(t *testing.T) {
	controls := config.DefaultGameConfig().Controls
	input := fakeInput{
		controls.Player1.Left:   true,
		controls.Player1.Thrust: true,
		controls.Player2.Right:  true,
		controls.Player2.Fire:   true,
	}

	p1 := &fakeShip{alive: true}
	p2 := &fakeShip{alive: true}
	is := NewInputSystem(input, controls)
	is.Bind(0, p1)
	is.Bind(1, p2)

	is.Update()

	if p1.turns != -1 || !p1.engine || p1.shots != 0 {
		t.Errorf("unexpected player1 state: %+v", p1)
	}
	if p2.turns != 1 || p2.engine || p2.shots != 1 {
		t.Errorf("unexpected player2 state: %+v", p2)
	}
}

// TestInputSystemSkipsDeadShips 等待重生的飞船不接收输入
func TestInputSystemSkipsDeadShips(t *testing.T) {
	controls := config.DefaultGameConfig().Controls
	input := fakeInput{
		controls.Player1.Left:   true,
		controls.Player1.Thrust: true,
		controls.Player1.Fire:   true,
	}

	dead := &fakeShip{alive: false}
	is := NewInputSystem(input, controls)
	is.Bind(0, dead)
	is.Bind(5, &fakeShip{alive: true}) // 超出范围的玩家序号被忽略

	is.Update()

	if dead.turns != 0 || dead.engine || dead.shots != 0 {
		t.Errorf("dead ship should receive no input, got %+v", dead)
	}
}

// TestInputSystemReleaseThrust 松开推进键后引擎关闭
func TestInputSystemReleaseThrust(t *testing.T) {
	controls := config.DefaultGameConfig().Controls
	input := fakeInput{controls.Player1.Thrust: true}
	ship := &fakeShip{alive: true}
	is := NewInputSystem(input, controls)
	is.Bind(0, ship)

	is.Update()
	if !ship.engine {
		t.Fatal("engine should be on while thrust is held")
	}

	input[controls.Player1.Thrust] = false
	is.Update()
	if ship.engine {
		t.Error("engine should be off after thrust is released")
	}
}
