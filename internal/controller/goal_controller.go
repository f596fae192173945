package controller

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalController 每日目标
type GoalController struct {
	Progress *service.ProgressService
	Stats    *service.StatsService
}

func NewGoalController(progress *service.ProgressService, stats *service.StatsService) *GoalController {
	return &GoalController{Progress: progress, Stats: stats}
}

type GoalRequest struct {
	Text string `json:"text" binding:"required"`
}

// @Summary 今日目标
// @Description 全部目标及今天是否完成
// @Tags 每日目标
// @Produce json
// @Success 200 {object} util.Response{data=[]service.TodayGoal}
// @Security BearerAuth
// @Router /goals [get]
func (ctrl *GoalController) List(c *gin.Context) {
	util.Success(c, ctrl.Stats.TodayGoals(c.Request.Context()))
}

// @Summary 添加目标
// @Tags 每日目标
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param request body GoalRequest true "目标内容"
// @Success 201 {object} util.Response{data=model.DailyGoal}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /goals [post]
func (ctrl *GoalController) Create(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	goal, err := ctrl.Progress.AddGoal(ctx, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, goal)
}

// @Summary 修改目标
// @Tags 每日目标
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "目标ID"
// @Param request body GoalRequest true "目标内容"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /goals/{id} [put]
func (ctrl *GoalController) Update(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.UpdateGoal(ctx, c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 删除目标
// @Tags 每日目标
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "目标ID"
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (ctrl *GoalController) Delete(c *gin.Context) {
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.DeleteGoal(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

type ToggleResponse struct {
	DoneToday bool             `json:"doneToday"`
	State     *model.UserState `json:"state"`
}

// @Summary 切换今日完成
// @Description 同一天内再次调用恢复原状
// @Tags 每日目标
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "目标ID"
// @Success 200 {object} util.Response{data=ToggleResponse}
// @Security BearerAuth
// @Router /goals/{id}/toggle [post]
func (ctrl *GoalController) Toggle(c *gin.Context) {
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	done, state, err := ctrl.Progress.ToggleGoal(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	setETag(c, state)
	util.Success(c, ToggleResponse{DoneToday: done, State: state})
}
