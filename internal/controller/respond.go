package controller

import (
	"context"
	"errors"
	"fmt"
	"mindset_backend/internal/model"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"
	"mindset_backend/internal/wizard"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// errorStatus 业务错误到 HTTP 状态码，按顺序匹配
var errorStatus = []struct {
	err  error
	code int
}{
	{util.ErrRevisionMismatch, http.StatusPreconditionFailed},
	{util.ErrModuleNotFound, http.StatusNotFound},
	{util.ErrDayNotFound, http.StatusNotFound},
	{util.ErrGoalNotFound, http.StatusNotFound},
	{util.ErrSessionNotFound, http.StatusNotFound},
	{repository.ErrKeyNotFound, http.StatusNotFound},
	{os.ErrNotExist, http.StatusNotFound},
	{util.ErrInvalidDay, http.StatusBadRequest},
	{util.ErrEmptyGoalText, http.StatusBadRequest},
	{util.ErrInvalidTheme, http.StatusBadRequest},
	{util.ErrInvalidReminderTime, http.StatusBadRequest},
	{util.ErrInvalidImportFile, http.StatusBadRequest},
	{util.ErrUnsupportedVersion, http.StatusBadRequest},
	{util.ErrConfirmRequired, http.StatusBadRequest},
	{util.ErrTooManyActiveJourneys, http.StatusConflict},
	{util.ErrInvalidTransition, http.StatusConflict},
	{util.ErrNothingToSkip, http.StatusConflict},
	{util.ErrInvalidPasscode, http.StatusUnauthorized},
	{util.ErrAuthDisabled, http.StatusNotFound},
	{util.ErrPermissionDenied, http.StatusForbidden},
}

// EntryDenial 进入某天被拒绝时返回的数据
type EntryDenial struct {
	Outcome          wizard.Outcome `json:"outcome"`
	Day              int            `json:"day"`
	NextDay          int            `json:"nextDay"`
	Redirect         string         `json:"redirect,omitempty"`
	UnlockAt         *time.Time     `json:"unlockAt,omitempty"`
	RemainingSeconds int64          `json:"remainingSeconds,omitempty"`
}

func denial(moduleID string, e wizard.Entry) EntryDenial {
	d := EntryDenial{Outcome: e.Outcome, Day: e.Day, NextDay: e.NextDay}
	if e.Outcome == wizard.OutcomeLocked {
		d.Redirect = fmt.Sprintf("/modules/%s/days/%d", moduleID, e.NextDay)
	}
	if !e.UnlockAt.IsZero() {
		unlockAt := e.UnlockAt
		d.UnlockAt = &unlockAt
		d.RemainingSeconds = int64(e.Remaining / time.Second)
	}
	return d
}

// respondError 把 service 返回的错误写成统一响应
func respondError(c *gin.Context, err error) {
	var denied *service.EntryDeniedError
	if errors.As(err, &denied) {
		code := http.StatusForbidden
		if denied.Entry.Outcome == wizard.OutcomeComeBackTomorrow {
			code = http.StatusLocked
		}
		if denied.Entry.Outcome == wizard.OutcomeInvalid {
			code = http.StatusBadRequest
		}
		moduleID := c.GetString("moduleId")
		if moduleID == "" {
			moduleID = c.Param("id")
		}
		util.ErrorWithData(c, code, denied.Entry.Err().Error(), denial(moduleID, denied.Entry))
		return
	}

	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			util.Error(c, m.code, err.Error())
			return
		}
	}
	util.LogInternalError(c, err)
}

// ifMatch 解析 If-Match 中的 revision，缺省或 * 时 present 为 false
func ifMatch(c *gin.Context) (rev int64, present bool, err error) {
	header := strings.TrimSpace(c.GetHeader("If-Match"))
	if header == "" || header == "*" {
		return 0, false, nil
	}
	header = strings.TrimPrefix(header, "W/")
	rev, err = strconv.ParseInt(strings.Trim(header, `"`), 10, 64)
	if err != nil || rev < 0 {
		return 0, false, errors.New("If-Match must be a state revision")
	}
	return rev, true, nil
}

// requestContext 带上 If-Match 期望的 revision，解析失败时已写入 400
func requestContext(c *gin.Context) (context.Context, bool) {
	ctx := c.Request.Context()
	rev, present, err := ifMatch(c)
	if err != nil {
		util.BadRequest(c, err.Error())
		return nil, false
	}
	if !present {
		return ctx, true
	}
	return repository.WithExpectedRevision(ctx, rev), true
}

func setETag(c *gin.Context, state *model.UserState) {
	c.Header("ETag", strconv.Quote(strconv.FormatInt(state.Revision, 10)))
}

// respondState 返回状态并附带 ETag
func respondState(c *gin.Context, state *model.UserState) {
	setETag(c, state)
	util.Success(c, state)
}

func dayParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		util.BadRequest(c, "Invalid day")
		return 0, false
	}
	return day, true
}
