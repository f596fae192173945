// Package wizard 实现单日课程的 阅读 → 任务 → 反思 流程，不依赖 HTTP 层，时间由调用方传入。
package wizard

import (
	"fmt"
	"mindset_backend/internal/util"
	"time"
)

type Step string

const (
	StepReading    Step = "reading"
	StepTask       Step = "task"
	StepReflection Step = "reflection"
)

// DefaultMinReading 阅读步骤的最短建议时长
const DefaultMinReading = 300 * time.Second

const paragraphBreak = "\n\n"

// Session 某模块某一天的一次访问
type Session struct {
	ModuleID string `json:"moduleId"`
	Day      int    `json:"day"`
	Step     Step   `json:"step"`

	TaskResponse string `json:"taskResponse"`
	Reflection   string `json:"reflection"`
	Prompt       string `json:"prompt"`

	// ReadingSkipped 阅读未满最短时长即确认
	ReadingSkipped bool `json:"readingSkipped"`
	Completed      bool `json:"completed"`
	Closed         bool `json:"closed"`

	MinReading time.Duration `json:"-"`
	Timer      *Timer        `json:"-"`
}

func NewSession(moduleID string, day int, minReading time.Duration, now time.Time) *Session {
	if minReading <= 0 {
		minReading = DefaultMinReading
	}
	return &Session{
		ModuleID:   moduleID,
		Day:        day,
		Step:       StepReading,
		MinReading: minReading,
		Timer:      NewTimer(now),
	}
}

// ReadingUnlocked 阅读时长是否已达到最短要求
func (s *Session) ReadingUnlocked(now time.Time) bool {
	return s.Timer.Reading(now) >= s.MinReading
}

// ReadingRemaining 距离解锁还需的阅读时长
func (s *Session) ReadingRemaining(now time.Time) time.Duration {
	left := s.MinReading - s.Timer.Reading(now)
	if left < 0 {
		return 0
	}
	return left
}

// SetVisible 页面可见性变化，隐藏时计时暂停
func (s *Session) SetVisible(visible bool, now time.Time) {
	s.Timer.SetVisible(visible, now)
}

// ConfirmReading 总是接受，未达最短时长时记为跳过
func (s *Session) ConfirmReading(now time.Time) (skipped bool, err error) {
	if err := s.expect(StepReading); err != nil {
		return false, err
	}
	skipped = !s.ReadingUnlocked(now)
	s.ReadingSkipped = skipped
	s.moveTo(StepTask, now)
	return skipped, nil
}

func (s *Session) SubmitTask(response string, now time.Time) error {
	if err := s.expect(StepTask); err != nil {
		return err
	}
	s.TaskResponse = response
	s.moveTo(StepReflection, now)
	return nil
}

// Back 反思 → 任务 → 阅读
func (s *Session) Back(now time.Time) error {
	if s.Closed || s.Completed {
		return util.ErrInvalidTransition
	}
	switch s.Step {
	case StepReflection:
		s.moveTo(StepTask, now)
	case StepTask:
		s.moveTo(StepReading, now)
	default:
		return fmt.Errorf("%w: already at %s", util.ErrInvalidTransition, s.Step)
	}
	return nil
}

func (s *Session) UpdateReflection(text string) error {
	if err := s.expect(StepReflection); err != nil {
		return err
	}
	s.Reflection = text
	return nil
}

// Deepen 换一个反思提示，已有文字后追加段落分隔
func (s *Session) Deepen(prompt string) error {
	if err := s.expect(StepReflection); err != nil {
		return err
	}
	s.Prompt = prompt
	if s.Reflection != "" {
		s.Reflection += paragraphBreak
	}
	return nil
}

// Complete 在反思已持久化后调用
func (s *Session) Complete(now time.Time) error {
	if err := s.expect(StepReflection); err != nil {
		return err
	}
	s.Timer.Tick(now)
	s.Completed = true
	return nil
}

// Close 结束会话并返回本次访问的可见时长，重复调用返回零
func (s *Session) Close(now time.Time) Usage {
	if s.Closed {
		return Usage{}
	}
	s.Timer.Tick(now)
	s.Closed = true
	return s.Timer.Drain()
}

func (s *Session) expect(step Step) error {
	if s.Closed || s.Completed {
		return fmt.Errorf("%w: session finished", util.ErrInvalidTransition)
	}
	if s.Step != step {
		return fmt.Errorf("%w: at %s, want %s", util.ErrInvalidTransition, s.Step, step)
	}
	return nil
}

func (s *Session) moveTo(step Step, now time.Time) {
	s.Timer.SetStep(step, now)
	s.Step = step
}

// View 会话在 now 时刻的只读快照
type View struct {
	ModuleID         string `json:"moduleId"`
	Day              int    `json:"day"`
	Step             Step   `json:"step"`
	TaskResponse     string `json:"taskResponse"`
	Reflection       string `json:"reflection"`
	Prompt           string `json:"prompt"`
	Visible          bool   `json:"visible"`
	ReadingSeconds   int64  `json:"readingSeconds"`
	ReadingUnlocked  bool   `json:"readingUnlocked"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	ReadingSkipped   bool   `json:"readingSkipped"`
	Completed        bool   `json:"completed"`
}

func (s *Session) View(now time.Time) View {
	return View{
		ModuleID:         s.ModuleID,
		Day:              s.Day,
		Step:             s.Step,
		TaskResponse:     s.TaskResponse,
		Reflection:       s.Reflection,
		Prompt:           s.Prompt,
		Visible:          s.Timer.Visible(),
		ReadingSeconds:   int64(s.Timer.Reading(now) / time.Second),
		ReadingUnlocked:  s.ReadingUnlocked(now),
		RemainingSeconds: int64(s.ReadingRemaining(now) / time.Second),
		ReadingSkipped:   s.ReadingSkipped,
		Completed:        s.Completed,
	}
}
