package util

import "time"

// DateKey 返回 t 在 loc 时区下的 "YYYY-MM-DD"
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateFormat)
}

// StartOfDay 返回 t 所在日历日的零点
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// NextMidnight 返回 t 之后的下一个本地零点
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t, loc).AddDate(0, 0, 1)
}

// ValidHourMinute 检查 "HH:mm" 格式
func ValidHourMinute(s string) bool {
	_, err := time.Parse(HourMinute, s)
	return err == nil && len(s) == 5
}
