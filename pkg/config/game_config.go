package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏配置
//
// 启动时加载一次，之后只读。
// 默认配置文件位置: data/spacewar.yaml（嵌入到可执行文件中）
type GameConfig struct {
	Window     WindowConfig     `yaml:"window" toml:"window"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Explosion  ExplosionConfig  `yaml:"explosion" toml:"explosion"`
	Respawn    RespawnConfig    `yaml:"respawn" toml:"respawn"`
	Controls   ControlsConfig   `yaml:"controls" toml:"controls"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// WindowConfig 窗口与主循环配置
type WindowConfig struct {
	Width      int    `yaml:"width" toml:"width"`   // 可玩区域宽度（像素）
	Height     int    `yaml:"height" toml:"height"` // 可玩区域高度（像素）
	Title      string `yaml:"title" toml:"title"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
	TPS        int    `yaml:"tps" toml:"tps"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
}

// ShipConfig 飞船参数
type ShipConfig struct {
	// Thrust 引擎开启时每个标准帧增加的速度（像素/帧²）
	Thrust float64 `yaml:"thrust" toml:"thrust"`
	// TurnRate 每次转向输入旋转的角度（度）
	TurnRate float64 `yaml:"turnRate" toml:"turn_rate"`
	// FireRateMs 两次射击的最小间隔（毫秒）
	FireRateMs int64 `yaml:"fireRateMs" toml:"fire_rate_ms"`
	// BulletSpeed 子弹相对飞船的出膛速度（像素/帧）
	BulletSpeed float64 `yaml:"bulletSpeed" toml:"bullet_speed"`
	// BodySize 机身碰撞盒边长，小于贴图尺寸
	BodySize float64 `yaml:"bodySize" toml:"body_size"`
	// ThrustTicksPerFrame 尾焰动画每帧保持的 tick 数
	ThrustTicksPerFrame int `yaml:"thrustTicksPerFrame" toml:"thrust_ticks_per_frame"`
}

// ProjectileConfig 子弹参数
type ProjectileConfig struct {
	LifespanMs     int64   `yaml:"lifespanMs" toml:"lifespan_ms"`
	InvulnerableMs int64   `yaml:"invulnerableMs" toml:"invulnerable_ms"` // 发射后不参与碰撞的时长
	Size           float64 `yaml:"size" toml:"size"`
	// AnimTicksPerFrame 子弹4帧动画每帧保持的 tick 数
	AnimTicksPerFrame int `yaml:"animTicksPerFrame" toml:"anim_ticks_per_frame"`
}

// ExplosionConfig 爆炸特效参数
type ExplosionConfig struct {
	Frames        int `yaml:"frames" toml:"frames"`
	TicksPerFrame int `yaml:"ticksPerFrame" toml:"ticks_per_frame"`
	DurationTicks int `yaml:"durationTicks" toml:"duration_ticks"` // 计数超过该值后特效结束
}

// RespawnConfig 飞船重生参数
type RespawnConfig struct {
	DelayMs int64 `yaml:"delayMs" toml:"delay_ms"`
}

// ControlsConfig 两名玩家的按键绑定
type ControlsConfig struct {
	Player1 PlayerControls `yaml:"player1" toml:"player1"`
	Player2 PlayerControls `yaml:"player2" toml:"player2"`
}

// PlayerControls 单个玩家的按键名
// 按键名由前端解释（ebiten 键名，如 "A"、"ArrowLeft"、"Space"）
type PlayerControls struct {
	Left   string `yaml:"left" toml:"left"`
	Right  string `yaml:"right" toml:"right"`
	Thrust string `yaml:"thrust" toml:"thrust"`
	Fire   string `yaml:"fire" toml:"fire"`
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" toml:"enabled"`
	Volume  float64 `yaml:"volume" toml:"volume"` // 0.0 ~ 1.0
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "json" or "console"
}

// Players 按玩家序号返回按键绑定
func (c ControlsConfig) Players() [2]PlayerControls {
	return [2]PlayerControls{c.Player1, c.Player2}
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "Spacewar",
			VSync:  true,
			TPS:    DefaultTPS,
		},
		Ship: ShipConfig{
			Thrust:              0.1,
			TurnRate:            5,
			FireRateMs:          350,
			BulletSpeed:         7,
			BodySize:            20,
			ThrustTicksPerFrame: 4,
		},
		Projectile: ProjectileConfig{
			LifespanMs:        3000,
			InvulnerableMs:    1600,
			Size:              6,
			AnimTicksPerFrame: 3,
		},
		Explosion: ExplosionConfig{
			Frames:        10,
			TicksPerFrame: 2,
			DurationTicks: 19,
		},
		Respawn: RespawnConfig{
			DelayMs: 2000,
		},
		Controls: ControlsConfig{
			Player1: PlayerControls{Left: "A", Right: "D", Thrust: "W", Fire: "Space"},
			Player2: PlayerControls{Left: "ArrowLeft", Right: "ArrowRight", Thrust: "ArrowUp", Fire: "Enter"},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Format 配置文件格式
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatOf 根据扩展名判断配置格式，未知扩展名按 YAML 处理
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadGameConfig 从磁盘加载配置
//
// 读取或解析失败时返回默认配置和错误，调用方可以记录警告后继续运行。
//
// 参数:
//   - path: 配置文件路径（.yaml/.yml/.toml）
//
// 返回:
//   - *GameConfig: 永远不为 nil
//   - error: 读取或解析失败时的错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultGameConfig(), fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	return ParseGameConfig(data, FormatOf(path))
}

// ParseGameConfig 解析配置内容，未出现的字段保留默认值
//
// 返回:
//   - *GameConfig: 永远不为 nil；解析失败时为完整的默认配置
//   - error: 解析失败时的错误
func ParseGameConfig(data []byte, format Format) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return DefaultGameConfig(), fmt.Errorf("failed to parse game config: %w", err)
	}

	return cfg, nil
}

// Sanitize 把非法的数值替换为默认值
//
// 返回:
//   - []string: 被替换的字段名（用于日志），全部合法时为空
func (c *GameConfig) Sanitize() []string {
	def := DefaultGameConfig()
	var fixed []string

	fixInt := func(name string, v *int, d int) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, name)
		}
	}
	fixMs := func(name string, v *int64, d int64, allowZero bool) {
		if *v < 0 || (*v == 0 && !allowZero) {
			*v = d
			fixed = append(fixed, name)
		}
	}
	fixFloat := func(name string, v *float64, d float64) {
		if *v <= 0 {
			*v = d
			fixed = append(fixed, name)
		}
	}
	fixKey := func(name string, v *string, d string) {
		if strings.TrimSpace(*v) == "" {
			*v = d
			fixed = append(fixed, name)
		}
	}

	fixInt("window.width", &c.Window.Width, def.Window.Width)
	fixInt("window.height", &c.Window.Height, def.Window.Height)
	fixInt("window.tps", &c.Window.TPS, def.Window.TPS)
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}

	fixFloat("ship.thrust", &c.Ship.Thrust, def.Ship.Thrust)
	fixFloat("ship.turnRate", &c.Ship.TurnRate, def.Ship.TurnRate)
	fixMs("ship.fireRateMs", &c.Ship.FireRateMs, def.Ship.FireRateMs, true)
	fixFloat("ship.bulletSpeed", &c.Ship.BulletSpeed, def.Ship.BulletSpeed)
	fixFloat("ship.bodySize", &c.Ship.BodySize, def.Ship.BodySize)
	fixInt("ship.thrustTicksPerFrame", &c.Ship.ThrustTicksPerFrame, def.Ship.ThrustTicksPerFrame)

	fixMs("projectile.lifespanMs", &c.Projectile.LifespanMs, def.Projectile.LifespanMs, false)
	fixMs("projectile.invulnerableMs", &c.Projectile.InvulnerableMs, def.Projectile.InvulnerableMs, true)
	fixFloat("projectile.size", &c.Projectile.Size, def.Projectile.Size)
	fixInt("projectile.animTicksPerFrame", &c.Projectile.AnimTicksPerFrame, def.Projectile.AnimTicksPerFrame)

	fixInt("explosion.frames", &c.Explosion.Frames, def.Explosion.Frames)
	fixInt("explosion.ticksPerFrame", &c.Explosion.TicksPerFrame, def.Explosion.TicksPerFrame)
	fixInt("explosion.durationTicks", &c.Explosion.DurationTicks, def.Explosion.DurationTicks)

	fixMs("respawn.delayMs", &c.Respawn.DelayMs, def.Respawn.DelayMs, true)

	fixKey("controls.player1.left", &c.Controls.Player1.Left, def.Controls.Player1.Left)
	fixKey("controls.player1.right", &c.Controls.Player1.Right, def.Controls.Player1.Right)
	fixKey("controls.player1.thrust", &c.Controls.Player1.Thrust, def.Controls.Player1.Thrust)
	fixKey("controls.player1.fire", &c.Controls.Player1.Fire, def.Controls.Player1.Fire)
	fixKey("controls.player2.left", &c.Controls.Player2.Left, def.Controls.Player2.Left)
	fixKey("controls.player2.right", &c.Controls.Player2.Right, def.Controls.Player2.Right)
	fixKey("controls.player2.thrust", &c.Controls.Player2.Thrust, def.Controls.Player2.Thrust)
	fixKey("controls.player2.fire", &c.Controls.Player2.Fire, def.Controls.Player2.Fire)

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
		fixed = append(fixed, "audio.volume")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		c.Logging.Format = def.Logging.Format
		fixed = append(fixed, "logging.format")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}

	return fixed
}
