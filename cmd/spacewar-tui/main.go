// spacewar-tui 在终端中运行双人对战
//
// 用法:
//
//	spacewar-tui [-config spacewar.yaml] [-log spacewar.log] [-verbose]
//
// 终端没有按键抬起事件，按住的键依赖键盘自动重复；Esc 或 Ctrl+C 退出。
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/audio"
	"github.com/decker502/spacewar/pkg/clock"
	"github.com/decker502/spacewar/pkg/config"
	"github.com/decker502/spacewar/pkg/logging"
	"github.com/decker502/spacewar/pkg/terminal"
	"github.com/decker502/spacewar/pkg/world"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（.yaml/.yml/.toml），为空时使用默认配置")
	logPath := flag.String("log", "", "日志文件路径，为空时不输出日志")
	verbose := flag.Bool("verbose", false, "输出 debug 日志")
	seed := flag.Uint64("seed", 0, "重生位置随机数种子，0 表示随机")
	flag.Parse()

	cfg := config.DefaultGameConfig()
	var cfgErr error
	if *configPath != "" {
		cfg, cfgErr = config.LoadGameConfig(*configPath)
	}
	fixed := cfg.Sanitize()

	logger := zap.NewNop()
	if *logPath != "" {
		l, err := logging.NewWithOutput(cfg.Logging, *verbose, *logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()

	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", zap.Error(cfgErr))
	}
	if len(fixed) > 0 {
		logger.Warn("invalid config values replaced with defaults", zap.Strings("fields", fixed))
	}

	if err := run(cfg, *seed, logger); err != nil {
		logger.Error("terminal frontend failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "spacewar-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.GameConfig, seed uint64, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio, logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, running muted", zap.Error(err))
	}
	defer sound.Cleanup()

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	keys := terminal.NewKeyState()
	w := world.NewWorld(cfg, keys, world.NewRandom(seed), logger)
	w.AddListener(sound)
	surface := terminal.NewSurface(screen, w.Area(), cfg.Explosion.Frames)

	// 唯一的额外 goroutine：阻塞读取终端事件，不接触游戏状态
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Window.TPS))
	defer ticker.Stop()

	var timer clock.FrameTimer
	timer.Tick(time.Now())

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					scores := w.Scores()
					logger.Info("game over", zap.Int("player1", scores[0]), zap.Int("player2", scores[1]))
					return nil
				}
				keys.HandleKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			w.Frame(timer.Tick(now))

			screen.Clear()
			w.Draw(surface)
			surface.DrawHUD(w.Snapshot().ScoreText())
			screen.Show()
		}
	}
}
