package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain 读完整个流，返回样本数和最大振幅
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"正弦波", WaveSine},
		{"方波", WaveSquare},
		{"噪声", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			n, peak := drain(osc)
			if n != rate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, want %d", n, rate.N(100*time.Millisecond))
			}
			if peak > 1.0 {
				t.Errorf("peak %f out of [-1, 1]", peak)
			}
			if osc.Err() != nil {
				t.Errorf("unexpected error %v", osc.Err())
			}
		})
	}
}

func TestOscillatorDrained(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, beep.SampleRate(44100))
	drain(osc)

	n, ok := osc.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("drained oscillator returned (%d, %v), want (0, false)", n, ok)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // 频率为 0 的方波恒为 1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("envelope length %d, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full volume, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release should fade out: %f -> %f", buf[90][0], buf[99][0])
	}
}

func TestSoundEffectsFinish(t *testing.T) {
	tests := []struct {
		name   string
		create func(float64, beep.SampleRate) beep.Streamer
	}{
		{"射击", CreateFireSound},
		{"爆炸", CreateExplosionSound},
		{"重生", CreateRespawnSound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.create(1.0, sampleRate))
			if n == 0 {
				t.Error("sound effect produced no samples")
			}
			if n > sampleRate.N(time.Second) {
				t.Errorf("sound effect too long: %d samples", n)
			}
			if peak == 0 {
				t.Error("sound effect is silent")
			}

			_, mutedPeak := drain(tt.create(0, sampleRate))
			if mutedPeak != 0 {
				t.Errorf("zero volume should be silent, peak %f", mutedPeak)
			}
		})
	}
}
