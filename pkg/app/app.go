// Package app 提供桌面端游戏应用的包装器
//
// 该包把配置、日志、音效和场景组装在一起，实现 ebiten.Game 接口。
// main.go 负责解析命令行和加载配置，然后调用 NewApp()。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/audio"
	"github.com/decker502/spacewar/pkg/clock"
	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/game"
	"github.com/decker502/spacewar/pkg/scenes"
	"github.com/decker502/spacewar/pkg/utils"
	"github.com/decker502/spacewar/pkg/world"
)

// Config 应用启动配置
type Config struct {
	// Game 已经 Sanitize 过的游戏配置
	Game *config.GameConfig
	// Verbose 显示调试 HUD
	Verbose bool
	// Seed 重生位置随机数种子，0 表示使用当前时间
	Seed uint64
}

// App 游戏应用，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	logger       *zap.Logger
	sceneManager *game.SceneManager
	battle       *scenes.BattleScene
	sound        *audio.SoundManager
	timer        clock.FrameTimer

	pendingWindowSizeReset   bool // 退出全屏后延迟恢复窗口大小
	windowSizeResetCountdown int
}

// NewApp 创建游戏应用
//
// 音频设备打开失败不会导致错误，游戏在静音状态下运行。
//
// 返回:
//   - *App: 游戏应用
//   - error: 按键配置无法识别时返回错误
func NewApp(cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("App")

	input, err := utils.NewKeyboardInput(cfg.Game.Controls)
	if err != nil {
		return nil, fmt.Errorf("keyboard controls: %w", err)
	}

	sound := audio.NewSoundManager(cfg.Game.Audio, logger)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, running muted", zap.Error(err))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	battle := scenes.NewBattleScene(cfg.Game, input, world.NewRandom(seed),
		[]world.Listener{sound}, logger)
	battle.ShowDebug = cfg.Verbose

	sceneManager := game.NewSceneManager(logger)
	sceneManager.SwitchTo(battle)

	log.Info("app ready", zap.Uint64("seed", seed), zap.Bool("audio", sound.Enabled()))

	return &App{
		cfg:          cfg.Game,
		logger:       log,
		sceneManager: sceneManager,
		battle:       battle,
		sound:        sound,
	}, nil
}

// Update 每个 tick 调用一次
// 按 Escape 时返回 ebiten.Termination 正常退出
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.logger.Info("escape pressed, quitting", zap.Ints("scores", scoresOf(a.battle)))
		return ebiten.Termination
	}

	a.handleWindowKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.battle.ShowDebug = !a.battle.ShowDebug
	}

	return a.sceneManager.Update(a.timer.Tick(time.Now()))
}

// handleWindowKeys F11 切换全屏
func (a *App) handleWindowKeys() {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 退出全屏后窗口管理器需要几帧时间，之后才能恢复窗口大小
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.logger.Debug("exit fullscreen")
	} else {
		ebiten.SetFullscreen(true)
		a.logger.Debug("enter fullscreen")
	}
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑边填充，线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸即可玩区域尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Close 释放音频设备
func (a *App) Close() {
	a.sound.Cleanup()
}

// Scores 返回当前比分
func (a *App) Scores() [world.PlayerCount]int {
	return a.battle.World().Scores()
}

func scoresOf(b *scenes.BattleScene) []int {
	s := b.World().Scores()
	return s[:]
}
