// Package utils 提供前端通用的工具函数
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/spacewar/pkg/config"
)

// KeyboardInput 按配置中的键名查询 ebiten 键盘状态
// 实现 systems.InputSource
type KeyboardInput struct {
	keys    map[string]ebiten.Key
	pressed func(ebiten.Key) bool
}

// ParseKey 把键名（如 "A"、"ArrowLeft"、"Space"）解析为 ebiten.Key
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

// NewKeyboardInput 解析两名玩家的全部键名
//
// 返回:
//   - *KeyboardInput: 键盘输入
//   - error: 存在无法识别的键名时返回错误
func NewKeyboardInput(controls config.ControlsConfig) (*KeyboardInput, error) {
	in := &KeyboardInput{
		keys:    make(map[string]ebiten.Key),
		pressed: ebiten.IsKeyPressed,
	}
	for _, p := range controls.Players() {
		for _, name := range []string{p.Left, p.Right, p.Thrust, p.Fire} {
			k, err := ParseKey(name)
			if err != nil {
				return nil, err
			}
			in.keys[name] = k
		}
	}
	return in, nil
}

// IsPressed 查询键名对应的按键是否按下，未知键名返回 false
func (in *KeyboardInput) IsPressed(name string) bool {
	k, ok := in.keys[name]
	if !ok {
		return false
	}
	return in.pressed(k)
}
