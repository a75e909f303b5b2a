package components

import "testing"

// TestCooldownTryFire 测试冷却计时器
func TestCooldownTryFire(t *testing.T) {
	c := NewCooldown(350)

	if !c.TryFire(0) {
		t.Fatal("新建的冷却计时器应该立即可用")
	}
	if c.TryFire(349) {
		t.Error("间隔不足 350ms 时不应该触发")
	}
	if c.LastFire != 0 {
		t.Errorf("失败的触发不应修改 LastFire, got %d", c.LastFire)
	}
	if !c.TryFire(350) {
		t.Error("间隔恰好 350ms 时应该触发")
	}
	if c.LastFire != 350 {
		t.Errorf("LastFire = %d, want 350", c.LastFire)
	}
}

// TestFrameAnimation 测试帧动画的循环与停帧
func TestFrameAnimation(t *testing.T) {
	loop := FrameAnimation{FrameCount: 3, TicksPerFrame: 2, IsLooping: true}
	want := []int{0, 0, 1, 1, 2, 2, 0}
	for i, w := range want {
		if got := loop.CurrentFrame(); got != w {
			t.Errorf("loop tick %d: frame = %d, want %d", i, got, w)
		}
		loop.Advance()
	}

	once := FrameAnimation{FrameCount: 2, TicksPerFrame: 1}
	for i := 0; i < 5; i++ {
		once.Advance()
	}
	if got := once.CurrentFrame(); got != 1 {
		t.Errorf("非循环动画结束后应停在最后一帧, got %d", got)
	}
}

// TestLifetimeExpired 测试寿命判断（严格大于才过期）
func TestLifetimeExpired(t *testing.T) {
	l := LifetimeComponent{CreatedAt: 1000, MaxLifetime: 3000}
	if l.Expired(4000) {
		t.Error("age == MaxLifetime 不应过期")
	}
	if !l.Expired(4001) {
		t.Error("age > MaxLifetime 应该过期")
	}
	if l.Age(1500) != 500 {
		t.Errorf("Age(1500) = %d, want 500", l.Age(1500))
	}
}
