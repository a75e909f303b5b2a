package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// SceneManager 控制当前激活的场景
type SceneManager struct {
	currentScene Scene
	logger       *zap.Logger
}

// NewSceneManager 创建场景管理器，初始没有激活的场景
func NewSceneManager(logger *zap.Logger) *SceneManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SceneManager{logger: logger.Named("SceneManager")}
}

// SwitchTo 切换到指定场景，从下一次 Update 开始生效
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.logger.Debug("switch scene", zap.String("scene", sceneName(scene)))
	sm.currentScene = scene
}

// GetCurrentScene 返回当前场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 推进当前场景
func (sm *SceneManager) Update(elapsedMs int64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(elapsedMs)
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func sceneName(scene Scene) string {
	if s, ok := scene.(interface{ Name() string }); ok {
		return s.Name()
	}
	return "unnamed"
}
