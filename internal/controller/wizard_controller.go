package controller

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// WizardController 课程向导：阅读 -> 任务 -> 反思。
// 会话操作不接受 If-Match，向导内部会刷新模块访问时间。
type WizardController struct {
	Wizard *service.WizardService
}

func NewWizardController(wizard *service.WizardService) *WizardController {
	return &WizardController{Wizard: wizard}
}

type OpenSessionRequest struct {
	ModuleID string `json:"moduleId" binding:"required"`
	Day      int    `json:"day" binding:"required"`
}

type OpenSessionResponse struct {
	Session *service.SessionView `json:"session"`
	Lesson  *model.LessonDay     `json:"lesson"`
}

type ConfirmReadingResponse struct {
	Session *service.SessionView `json:"session"`
	Skipped bool                 `json:"skipped"`
}

type VisibilityRequest struct {
	Visible bool `json:"visible"`
}

type TaskRequest struct {
	Response string `json:"response"`
}

type ReflectionRequest struct {
	Text string `json:"text"`
}

type SaveRequest struct {
	Reflection *string `json:"reflection"`
}

// @Summary 开始课程
// @Description 通过进入检查后创建会话。未解锁返回 403 和重定向目标，今日已完成返回 423 和倒计时
// @Tags 课程向导
// @Accept json
// @Produce json
// @Param request body OpenSessionRequest true "模块与天数"
// @Success 201 {object} util.Response{data=OpenSessionResponse}
// @Failure 403 {object} util.Response{data=EntryDenial}
// @Failure 423 {object} util.Response{data=EntryDenial}
// @Security BearerAuth
// @Router /wizard/sessions [post]
func (ctrl *WizardController) Open(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	c.Set("moduleId", req.ModuleID)

	view, lesson, err := ctrl.Wizard.Open(c.Request.Context(), req.ModuleID, req.Day)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, OpenSessionResponse{Session: view, Lesson: lesson})
}

// @Summary 会话状态
// @Tags 课程向导
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /wizard/sessions/{id} [get]
func (ctrl *WizardController) Get(c *gin.Context) {
	view, err := ctrl.Wizard.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, view)
}

// @Summary 页面可见性
// @Description 页面隐藏时暂停计时
// @Tags 课程向导
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param request body VisibilityRequest true "是否可见"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Security BearerAuth
// @Router /wizard/sessions/{id}/visibility [put]
func (ctrl *WizardController) SetVisible(c *gin.Context) {
	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	view, err := ctrl.Wizard.SetVisible(c.Param("id"), req.Visible)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, view)
}

// @Summary 确认阅读
// @Description 总是接受，阅读不足 5 分钟时 skipped 为 true
// @Tags 课程向导
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=ConfirmReadingResponse}
// @Failure 409 {object} util.Response
// @Security BearerAuth
// @Router /wizard/sessions/{id}/confirm-reading [post]
func (ctrl *WizardController) ConfirmReading(c *gin.Context) {
	view, skipped, err := ctrl.Wizard.ConfirmReading(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, ConfirmReadingResponse{Session: view, Skipped: skipped})
}

// @Summary 提交任务
// @Tags 课程向导
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param request body TaskRequest true "任务回答"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Security BearerAuth
// @Router /wizard/sessions/{id}/task [post]
func (ctrl *WizardController) SubmitTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	view, err := ctrl.Wizard.SubmitTask(c.Param("id"), req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, view)
}

// @Summary 返回上一步
// @Tags 课程向导
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Security BearerAuth
// @Router /wizard/sessions/{id}/back [post]
func (ctrl *WizardController) Back(c *gin.Context) {
	view, err := ctrl.Wizard.Back(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, view)
}

// @Summary 更新反思草稿
// @Tags 课程向导
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param request body ReflectionRequest true "反思内容"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Security BearerAuth
// @Router /wizard/sessions/{id}/reflection [put]
func (ctrl *WizardController) UpdateReflection(c *gin.Context) {
	var req ReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	view, err := ctrl.Wizard.UpdateReflection(c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, view)
}

// @Summary 深入反思
// @Description 换一个反思提示，非空内容后追加空行
// @Tags 课程向导
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=service.SessionView}
// @Security BearerAuth
// @Router /wizard/sessions/{id}/deepen [post]
func (ctrl *WizardController) Deepen(c *gin.Context) {
	view, err := ctrl.Wizard.Deepen(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, view)
}

// @Summary 保存并完成
// @Description 记录当天完成，返回新状态和下一天的时间锁
// @Tags 课程向导
// @Accept json
// @Produce json
// @Param id path string true "会话ID"
// @Param request body SaveRequest false "最终反思内容"
// @Success 200 {object} util.Response{data=service.SaveResult}
// @Security BearerAuth
// @Router /wizard/sessions/{id}/save [post]
func (ctrl *WizardController) Save(c *gin.Context) {
	var req SaveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			util.BadRequest(c, err.Error())
			return
		}
	}
	res, err := ctrl.Wizard.Save(c.Request.Context(), c.Param("id"), req.Reflection)
	if err != nil {
		respondError(c, err)
		return
	}
	setETag(c, res.State)
	util.Success(c, res)
}

type UsageResponse struct {
	ReadingSeconds int64 `json:"readingSeconds"`
	TotalSeconds   int64 `json:"totalSeconds"`
}

// @Summary 结束会话
// @Description 结算本次阅读和学习时长
// @Tags 课程向导
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response{data=UsageResponse}
// @Security BearerAuth
// @Router /wizard/sessions/{id} [delete]
func (ctrl *WizardController) Close(c *gin.Context) {
	usage, err := ctrl.Wizard.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, UsageResponse{
		ReadingSeconds: int64(usage.Reading.Seconds()),
		TotalSeconds:   int64(usage.Total.Seconds()),
	})
}
