package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// 音效参数
const (
	fireDuration      = 90 * time.Millisecond
	fireStartFreq     = 1400.0
	fireEndFreq       = 500.0
	explosionDuration = 600 * time.Millisecond
	explosionRumble   = 55.0
	respawnDuration   = 180 * time.Millisecond
	respawnFreq       = 660.0
)

// oscillator 生成原始波形，频率可以在持续时间内线性滑动
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator 创建固定频率的振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep 创建频率从 startFreq 线性滑动到 endFreq 的振荡器
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope 给流加上起音和释音，超过 duration 后流结束
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转换为 beep 的对数音量，0 表示静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFireSound 射击：短促的下滑方波
func CreateFireSound(volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(fireStartFreq, fireEndFreq, fireDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, fireDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, volume*0.3)
}

// CreateExplosionSound 爆炸：噪声叠加低频轰鸣，缓慢衰减
func CreateExplosionSound(volume float64, rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
	rumble := NewSweep(explosionRumble*2, explosionRumble, explosionDuration, WaveSine, rate)

	mixed := &beep.Mixer{}
	mixed.Add(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.5),
	)
	bounded := beep.Take(rate.N(explosionDuration), mixed)
	shaped := NewEnvelope(bounded, explosionDuration, 10*time.Millisecond, 450*time.Millisecond, rate)
	return newVolume(shaped, volume*0.5)
}

// CreateRespawnSound 重生：上扬的正弦音
func CreateRespawnSound(volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(respawnFreq, respawnFreq*1.5, respawnDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, respawnDuration, 20*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(shaped, volume*0.3)
}
