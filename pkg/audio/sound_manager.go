// Package audio 用 beep 合成并播放游戏音效
//
// 所有音效都在运行时合成，不依赖音频文件。
// 没有可用的音频设备时 SoundManager 静默降级，游戏照常运行。
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/decker502/spacewar/pkg/config"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager 管理音效播放，同时作为世界事件的监听者
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *zap.Logger
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager 创建音效管理器（尚未打开音频设备）
func NewSoundManager(cfg config.AudioConfig, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		cfg:    cfg,
		logger: logger.Named("Audio"),
		mixer:  &beep.Mixer{},
	}
}

// Initialize 打开音频设备
//
// 音频被禁用时直接返回 nil；设备打开失败时返回错误，
// 之后的播放请求全部被忽略。
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", zap.Int("sampleRate", int(sampleRate)), zap.Float64("volume", sm.cfg.Volume))
	return nil
}

// Cleanup 停止所有声音
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Enabled 音频设备是否可用
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played 返回已提交播放的音效数量
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// play 把音效加入混音器
// 混音器在 speaker 的 goroutine 中读取，必须持有 speaker 锁
func (sm *SoundManager) play(create func(volume float64, rate beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := create(sm.cfg.Volume, sampleRate)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// ShipFired 飞船射击
func (sm *SoundManager) ShipFired(player int) {
	sm.play(CreateFireSound)
}

// ShipDestroyed 飞船被击毁
func (sm *SoundManager) ShipDestroyed(player int) {
	sm.logger.Debug("explosion sound", zap.Int("player", player))
	sm.play(CreateExplosionSound)
}

// ShipRespawned 飞船重新出现
func (sm *SoundManager) ShipRespawned(player int) {
	sm.play(CreateRespawnSound)
}
