package clock

import "testing"

// TestGameClockAdvance 测试时钟推进与单调性
func TestGameClockAdvance(t *testing.T) {
	tests := []struct {
		name  string
		start int64
		steps []int64
		want  int64
	}{
		{name: "正常推进", start: 0, steps: []int64{16, 17, 17}, want: 50},
		{name: "负值被忽略", start: 100, steps: []int64{-50, 10}, want: 110},
		{name: "零值不变", start: 42, steps: []int64{0, 0}, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGameClock(tt.start)
			prev := c.Now()
			for _, step := range tt.steps {
				now := c.Advance(step)
				if now < prev {
					t.Fatalf("clock went backwards: %d -> %d", prev, now)
				}
				prev = now
			}
			if c.Now() != tt.want {
				t.Errorf("Now() = %d, want %d", c.Now(), tt.want)
			}
		})
	}
}
