package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/app"
	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/embedded"
	"github.com/decker502/spacewar/pkg/logging"
)

const defaultConfigPath = "data/spacewar.yaml"

func main() {
	configPath := flag.String("config", "", "配置文件路径（.yaml/.yml/.toml），为空时使用内置配置")
	verbose := flag.Bool("verbose", false, "输出 debug 日志并显示调试 HUD")
	seed := flag.Uint64("seed", 0, "重生位置随机数种子，0 表示随机")
	flag.Parse()

	embedded.Init(dataFS)

	cfg, cfgErr := loadConfig(*configPath)
	fixed := cfg.Sanitize()

	logger, err := logging.New(cfg.Logging, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", zap.Error(cfgErr))
	}
	if len(fixed) > 0 {
		logger.Warn("invalid config values replaced with defaults", zap.Strings("fields", fixed))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	game, err := app.NewApp(app.Config{Game: cfg, Verbose: *verbose, Seed: *seed}, logger)
	if err != nil {
		logger.Fatal("failed to create app", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}

	scores := game.Scores()
	logger.Info("game over", zap.Int("player1", scores[0]), zap.Int("player2", scores[1]))
}

// loadConfig 读取 -config 指定的文件，未指定时读取内置配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return config.DefaultGameConfig(), fmt.Errorf("read embedded config: %w", err)
	}
	return config.ParseGameConfig(data, config.FormatYAML)
}
