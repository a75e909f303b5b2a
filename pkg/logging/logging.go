// Package logging 根据配置创建 zap 日志器
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/decker502/spacewar/pkg/config"
)

// New 创建日志器
//
// Format 为 "json" 时使用生产配置，否则使用带颜色的控制台输出。
// 无法识别的 Level 按 info 处理。
//
// 参数:
//   - cfg: 日志配置
//   - verbose: 为 true 时强制使用 debug 级别（对应命令行 -verbose）
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	return NewWithOutput(cfg, verbose, "stderr")
}

// NewWithOutput 与 New 相同，但日志写入 path（文件路径或 "stderr"/"stdout"）
// 终端前端占用了标准输出，日志必须写到文件
func NewWithOutput(cfg config.LoggingConfig, verbose bool, path string) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	return zapCfg.Build()
}
