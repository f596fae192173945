package wizard

import "time"

// Usage 会话内累计的可见时长
type Usage struct {
	Reading time.Duration
	Total   time.Duration
}

// Timer 只在页面可见时计时，阅读步骤的时长单独累计
type Timer struct {
	visible bool
	last    time.Time
	// 已累计但尚未结算的时长
	reading time.Duration
	total   time.Duration
	// 阅读总时长，结算后也保留，用于阅读门槛
	readingSeen time.Duration
	step        Step
}

func NewTimer(now time.Time) *Timer {
	return &Timer{visible: true, last: now, step: StepReading}
}

// Tick 将 last 到 now 之间的可见时长计入当前步骤
func (t *Timer) Tick(now time.Time) {
	if t.visible && now.After(t.last) {
		d := now.Sub(t.last)
		t.total += d
		if t.step == StepReading {
			t.reading += d
			t.readingSeen += d
		}
	}
	if now.After(t.last) {
		t.last = now
	}
}

// SetStep 结算后切换计时所属步骤
func (t *Timer) SetStep(step Step, now time.Time) {
	t.Tick(now)
	t.step = step
}

func (t *Timer) SetVisible(visible bool, now time.Time) {
	t.Tick(now)
	t.visible = visible
}

func (t *Timer) Visible() bool {
	return t.visible
}

// Reading 截至 now 的阅读时长
func (t *Timer) Reading(now time.Time) time.Duration {
	d := t.readingSeen
	if t.visible && t.step == StepReading && now.After(t.last) {
		d += now.Sub(t.last)
	}
	return d
}

// Drain 返回未结算的时长并清零
func (t *Timer) Drain() Usage {
	u := Usage{Reading: t.reading, Total: t.total}
	t.reading, t.total = 0, 0
	return u
}
