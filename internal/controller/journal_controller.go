package controller

import (
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// JournalController 反思日志与统计
type JournalController struct {
	Stats    *service.StatsService
	Progress *service.ProgressService
}

func NewJournalController(stats *service.StatsService, progress *service.ProgressService) *JournalController {
	return &JournalController{Stats: stats, Progress: progress}
}

// @Summary 日志列表
// @Description 按完成时间倒序，可按模块过滤
// @Tags 日志
// @Produce json
// @Param moduleId query string false "模块ID"
// @Success 200 {object} util.Response{data=[]service.JournalItem}
// @Security BearerAuth
// @Router /journal [get]
func (ctrl *JournalController) List(c *gin.Context) {
	util.Success(c, ctrl.Stats.Journal(c.Request.Context(), c.Query("moduleId")))
}

// @Summary 编辑日志
// @Description 修改已完成某天的反思和任务，不改变完成时间
// @Tags 日志
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "模块ID"
// @Param day path int true "第几天"
// @Param request body CompleteDayRequest true "反思与任务"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /journal/{id}/{day} [put]
func (ctrl *JournalController) Update(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req CompleteDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.SaveJournalEntry(ctx, c.Param("id"), day, req.Reflection, req.TaskResponse)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 个人统计
// @Description 连续天数、经验值、等级、进行中的旅程与徽章
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response{data=stats.Summary}
// @Security BearerAuth
// @Router /stats [get]
func (ctrl *JournalController) Summary(c *gin.Context) {
	util.Success(c, ctrl.Stats.Summary(c.Request.Context()))
}
