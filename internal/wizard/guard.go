package wizard

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/util"
	"time"
)

type Outcome string

const (
	OutcomeInvalid          Outcome = "invalid"
	OutcomeLocked           Outcome = "locked"
	OutcomeComeBackTomorrow Outcome = "come_back_tomorrow"
	OutcomeReview           Outcome = "review"
	OutcomeOpen             Outcome = "open"
)

// Entry 进入某一天前的检查结果
type Entry struct {
	Outcome Outcome `json:"outcome"`
	Day     int     `json:"day"`
	// NextDay 当前可学习的天数，Locked 时用于重定向
	NextDay   int           `json:"nextDay"`
	UnlockAt  time.Time     `json:"unlockAt,omitempty"`
	Remaining time.Duration `json:"-"`
}

// Allowed 是否可以开始会话
func (e Entry) Allowed() bool {
	return e.Outcome == OutcomeReview || e.Outcome == OutcomeOpen
}

// Err 将不可进入的结果映射为哨兵错误
func (e Entry) Err() error {
	switch e.Outcome {
	case OutcomeInvalid:
		return util.ErrInvalidDay
	case OutcomeLocked:
		return util.ErrDayLocked
	case OutcomeComeBackTomorrow:
		return util.ErrComeBackTomorrow
	}
	return nil
}

// CheckEntry 判断能否进入模块的第 day 天。progress 为 nil 表示模块尚未开始。
// 日历日按 now 的时区计算。override 为跳过等待的临时授权。
func CheckEntry(progress *model.ModuleProgress, day, totalDays int, now time.Time, override bool) Entry {
	next := progress.NextDay()
	e := Entry{Day: day, NextDay: next}

	switch {
	case day < 1 || day > totalDays:
		e.Outcome = OutcomeInvalid
	case day > next:
		e.Outcome = OutcomeLocked
	case day < next:
		e.Outcome = OutcomeReview
	default:
		lock := NextDayLock(progress, now)
		if lock.Locked && !override {
			e.Outcome = OutcomeComeBackTomorrow
			e.UnlockAt = lock.UnlockAt
			e.Remaining = lock.Remaining
		} else {
			e.Outcome = OutcomeOpen
		}
	}
	return e
}

// Lock 完成当天课程后的时间锁
type Lock struct {
	Locked    bool          `json:"locked"`
	UnlockAt  time.Time     `json:"unlockAt,omitempty"`
	Remaining time.Duration `json:"-"`
}

// NextDayLock 最近一次完成发生在今天时，下一天锁定到本地零点
func NextDayLock(progress *model.ModuleProgress, now time.Time) Lock {
	last, ok := progress.LastCompletionAt()
	if !ok {
		return Lock{}
	}
	loc := now.Location()
	if !util.StartOfDay(last, loc).Equal(util.StartOfDay(now, loc)) {
		return Lock{}
	}
	unlock := util.NextMidnight(now, loc)
	return Lock{Locked: true, UnlockAt: unlock, Remaining: unlock.Sub(now)}
}
