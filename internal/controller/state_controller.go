package controller

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// StateController 整体状态、个人资料与偏好设置
type StateController struct {
	Progress *service.ProgressService
	Catalog  *service.CatalogService
}

func NewStateController(progress *service.ProgressService, catalog *service.CatalogService) *StateController {
	return &StateController{Progress: progress, Catalog: catalog}
}

// @Summary 获取状态
// @Description 获取完整的用户状态，ETag 为当前 revision
// @Tags 状态
// @Produce json
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /state [get]
func (ctrl *StateController) GetState(c *gin.Context) {
	respondState(c, ctrl.Progress.State(c.Request.Context()))
}

// @Summary 重置应用
// @Description 清除全部数据，恢复默认状态
// @Tags 状态
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 412 {object} util.Response
// @Security BearerAuth
// @Router /state [delete]
func (ctrl *StateController) ResetApp(c *gin.Context) {
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	if err := ctrl.Progress.ResetApp(ctx); err != nil {
		respondError(c, err)
		return
	}
	respondState(c, ctrl.Progress.State(ctx))
}

// @Summary 更新个人资料
// @Description 只修改请求中出现的字段
// @Tags 状态
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param profile body service.ProfileUpdate true "个人资料"
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /profile [put]
func (ctrl *StateController) UpdateProfile(c *gin.Context) {
	var req service.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.UpdateProfile(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// @Summary 设置语言
// @Tags 偏好设置
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param request body LanguageRequest true "语言"
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /preferences/language [put]
func (ctrl *StateController) SetLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.SetLanguage(ctx, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

type ThemeRequest struct {
	Theme model.Theme `json:"theme" binding:"required"`
}

// @Summary 设置主题
// @Tags 偏好设置
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param request body ThemeRequest true "主题 light/dark/system"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /preferences/theme [put]
func (ctrl *StateController) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.SetTheme(ctx, req.Theme)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 设置每日提醒
// @Tags 偏好设置
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param request body model.ReminderSettings true "提醒设置，时间格式 HH:mm"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /preferences/reminder [put]
func (ctrl *StateController) SetReminder(c *gin.Context) {
	var req model.ReminderSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.SetReminder(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 引导问卷
// @Tags 引导
// @Produce json
// @Success 200 {object} util.Response{data=[]model.QuizQuestion}
// @Security BearerAuth
// @Router /onboarding/quiz [get]
func (ctrl *StateController) GetQuiz(c *gin.Context) {
	util.Success(c, ctrl.Catalog.Quiz())
}

type OnboardingRequest struct {
	Name string `json:"name"`
	// Answers 问题 id 到选项 id
	Answers map[string]string `json:"answers"`
}

// @Summary 完成引导
// @Description 根据问卷答案推荐模块并标记引导完成
// @Tags 引导
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param request body OnboardingRequest true "姓名与问卷答案"
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /onboarding [post]
func (ctrl *StateController) CompleteOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.CompleteOnboarding(ctx, req.Name, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}
