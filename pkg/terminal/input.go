package terminal

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// HoldDuration 终端只有按下事件没有抬起事件，
// 收到按键后在这段时间内视为仍然按住（依赖键盘自动重复续期）
const HoldDuration = 150 * time.Millisecond

// KeyState 把 tcell 按键事件转换为"按住"状态
// 实现 systems.InputSource，键名与 ebiten 键名一致（"A"、"ArrowLeft"、"Space"）
type KeyState struct {
	lastSeen map[string]time.Time
	now      func() time.Time
}

// NewKeyState 创建按键状态
func NewKeyState() *KeyState {
	return &KeyState{
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// HandleKey 记录一次按键事件，无法映射的按键被忽略
func (ks *KeyState) HandleKey(ev *tcell.EventKey) {
	ks.Press(KeyName(ev.Key(), ev.Rune()))
}

// Press 记录键名在当前时刻被按下
func (ks *KeyState) Press(name string) {
	if name != "" {
		ks.lastSeen[name] = ks.now()
	}
}

// IsPressed 实现 systems.InputSource
func (ks *KeyState) IsPressed(name string) bool {
	t, ok := ks.lastSeen[name]
	if !ok {
		return false
	}
	return ks.now().Sub(t) <= HoldDuration
}

// KeyName 把 tcell 按键转换为 ebiten 风格的键名，无法映射时返回空串
func KeyName(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyRune:
		switch {
		case r == ' ':
			return "Space"
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			return strings.ToUpper(string(r))
		case r >= '0' && r <= '9':
			return "Digit" + string(r)
		}
	}
	return ""
}
