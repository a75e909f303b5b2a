package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		format   Format
		wantErr  bool
		validate func(*testing.T, *GameConfig)
	}{
		{
			name: "valid yaml",
			content: `
window:
  width: 1024
  height: 768
  vsync: false
ship:
  fireRateMs: 200
controls:
  player1:
    fire: LeftShift
`,
			format: FormatYAML,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
					t.Errorf("expected 1024x768, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Window.VSync {
					t.Error("expected vsync disabled")
				}
				if cfg.Ship.FireRateMs != 200 {
					t.Errorf("expected fireRateMs 200, got %d", cfg.Ship.FireRateMs)
				}
				// 未出现的字段保留默认值
				if cfg.Ship.BulletSpeed != 7 {
					t.Errorf("expected default bulletSpeed 7, got %f", cfg.Ship.BulletSpeed)
				}
				if cfg.Controls.Player1.Fire != "LeftShift" || cfg.Controls.Player1.Left != "A" {
					t.Errorf("unexpected player1 controls: %+v", cfg.Controls.Player1)
				}
			},
		},
		{
			name: "valid toml",
			content: `
[window]
width = 640
height = 480

[projectile]
lifespan_ms = 2500
invulnerable_ms = 1000

[controls.player2]
fire = "Slash"
`,
			format: FormatTOML,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
					t.Errorf("expected 640x480, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
				if cfg.Projectile.LifespanMs != 2500 || cfg.Projectile.InvulnerableMs != 1000 {
					t.Errorf("unexpected projectile config: %+v", cfg.Projectile)
				}
				if cfg.Controls.Player2.Fire != "Slash" {
					t.Errorf("expected player2 fire Slash, got %s", cfg.Controls.Player2.Fire)
				}
			},
		},
		{
			name: "malformed yaml falls back to defaults",
			content: `
window:
  width: wide
`,
			format:  FormatYAML,
			wantErr: true,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Width != DefaultWindowWidth {
					t.Errorf("expected default width, got %d", cfg.Window.Width)
				}
			},
		},
		{
			name:    "malformed toml falls back to defaults",
			content: "[window\nwidth = ",
			format:  FormatTOML,
			wantErr: true,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Window.Height != DefaultWindowHeight {
					t.Errorf("expected default height, got %d", cfg.Window.Height)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.content), tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGameConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cfg == nil {
				t.Fatal("ParseGameConfig() must never return nil config")
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(yamlPath, []byte("respawn:\n  delayMs: 1500\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	cfg, err := LoadGameConfig(yamlPath)
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if cfg.Respawn.DelayMs != 1500 {
		t.Errorf("expected delayMs 1500, got %d", cfg.Respawn.DelayMs)
	}

	tomlPath := filepath.Join(dir, "game.toml")
	if err := os.WriteFile(tomlPath, []byte("[respawn]\ndelay_ms = 2500\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	cfg, err = LoadGameConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadGameConfig() error = %v", err)
	}
	if cfg.Respawn.DelayMs != 2500 {
		t.Errorf("expected delayMs 2500, got %d", cfg.Respawn.DelayMs)
	}

	// 文件不存在：返回默认配置和错误
	cfg, err = LoadGameConfig(filepath.Join(dir, "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	if cfg == nil || cfg.Respawn.DelayMs != 2000 {
		t.Errorf("expected default config for missing file, got %+v", cfg)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.yaml":        FormatYAML,
		"a.yml":         FormatYAML,
		"a.TOML":        FormatTOML,
		"config/a.toml": FormatTOML,
		"noext":         FormatYAML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSanitize(t *testing.T) {
	cfg := DefaultGameConfig()
	if fixed := cfg.Sanitize(); len(fixed) != 0 {
		t.Errorf("default config should be valid, fixed: %v", fixed)
	}

	cfg.Window.Width = 0
	cfg.Window.Height = -10
	cfg.Ship.FireRateMs = -1
	cfg.Ship.BulletSpeed = 0
	cfg.Projectile.LifespanMs = 0
	cfg.Projectile.InvulnerableMs = 0
	cfg.Respawn.DelayMs = -5
	cfg.Controls.Player2.Fire = "  "
	cfg.Audio.Volume = 3
	cfg.Logging.Format = "xml"

	fixed := cfg.Sanitize()
	want := []string{
		"window.width", "window.height", "ship.fireRateMs", "ship.bulletSpeed",
		"projectile.lifespanMs", "respawn.delayMs", "controls.player2.fire",
		"audio.volume", "logging.format",
	}
	if len(fixed) != len(want) {
		t.Fatalf("expected %d fixes, got %d: %v", len(want), len(fixed), fixed)
	}
	joined := strings.Join(fixed, ",")
	for _, w := range want {
		if !strings.Contains(joined, w) {
			t.Errorf("expected %s to be fixed, got %v", w, fixed)
		}
	}

	def := DefaultGameConfig()
	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("window size not restored: %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	// 0ms 无敌时间是合法值
	if cfg.Projectile.InvulnerableMs != 0 {
		t.Errorf("zero invulnerableMs should be kept, got %d", cfg.Projectile.InvulnerableMs)
	}
	if cfg.Controls.Player2.Fire != def.Controls.Player2.Fire {
		t.Errorf("empty key binding not restored: %q", cfg.Controls.Player2.Fire)
	}
}
