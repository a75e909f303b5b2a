// Package scenes 实现具体的游戏场景
package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/game"
	"github.com/decker502/spacewar/pkg/systems"
	"github.com/decker502/spacewar/pkg/world"
)

// Scene 与 game.Scene 相同
type Scene = game.Scene

var spaceColor = color.RGBA{R: 5, G: 5, B: 20, A: 255}

// BattleScene 双人对战场景
// 持有游戏世界，把 ebiten 的帧转换为 World.Frame 调用
type BattleScene struct {
	world   *world.World
	rm      *game.ResourceManager
	surface *game.EbitenSurface
	width   int

	// ShowDebug 为 true 时在 HUD 下方显示实体数量和游戏时间
	ShowDebug bool
}

// NewBattleScene 创建对战场景
//
// 参数:
//   - cfg: 游戏配置
//   - input: 按键状态来源
//   - random: 重生位置随机数来源
//   - listeners: 世界事件监听者（音效等），可以为空
//   - logger: 日志
func NewBattleScene(cfg *config.GameConfig, input systems.InputSource, random world.Random,
	listeners []world.Listener, logger *zap.Logger) *BattleScene {
	w := world.NewWorld(cfg, input, random, logger)
	for _, l := range listeners {
		w.AddListener(l)
	}

	rm := game.NewResourceManager(cfg)
	return &BattleScene{
		world:   w,
		rm:      rm,
		surface: game.NewEbitenSurface(rm),
		width:   cfg.Window.Width,
	}
}

// Name 场景名
func (s *BattleScene) Name() string {
	return "battle"
}

// World 返回场景持有的游戏世界
func (s *BattleScene) World() *world.World {
	return s.world
}

// Update 推进一帧
func (s *BattleScene) Update(elapsedMs int64) error {
	s.world.Frame(elapsedMs)
	return nil
}

// Draw 绘制背景、实体和 HUD
func (s *BattleScene) Draw(screen *ebiten.Image) {
	screen.Fill(spaceColor)

	s.surface.Begin(screen)
	s.world.Draw(s.surface)

	s.drawHUD(screen)
}

// drawHUD 左上角玩家1得分，右上角玩家2得分
func (s *BattleScene) drawHUD(screen *ebiten.Image) {
	snap := s.world.Snapshot()
	left, right := snap.ScoreText()

	ebitenutil.DebugPrintAt(screen, left, config.HUDMargin, config.HUDMargin)
	// DebugPrint 的字符宽度为 6 像素
	ebitenutil.DebugPrintAt(screen, right, s.width-config.HUDMargin-6*len(right), config.HUDMargin)

	if s.ShowDebug {
		info := fmt.Sprintf("t=%dms live=%d pending=%d sprites=%d fps=%.0f",
			snap.Now, snap.Live, snap.Pending, s.rm.CachedCount(), ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, info, config.HUDMargin, config.HUDMargin+16)
	}
}
