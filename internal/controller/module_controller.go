package controller

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/service"
	"mindset_backend/internal/stats"
	"mindset_backend/internal/util"
	"mindset_backend/internal/wizard"

	"github.com/gin-gonic/gin"
)

// ModuleController 模块目录、进度与时间锁
type ModuleController struct {
	Catalog  *service.CatalogService
	Progress *service.ProgressService
	Wizard   *service.WizardService
}

func NewModuleController(catalog *service.CatalogService, progress *service.ProgressService, wizard *service.WizardService) *ModuleController {
	return &ModuleController{Catalog: catalog, Progress: progress, Wizard: wizard}
}

// ModuleItem 模块及其当前进度
type ModuleItem struct {
	model.Module
	CategoryInfo model.CategoryInfo `json:"categoryInfo"`
	Journey      *stats.Journey     `json:"journey,omitempty"`
}

type DayItem struct {
	Day       int                 `json:"day"`
	Title     model.LocalizedText `json:"title"`
	Completed bool                `json:"completed"`
}

type ModuleDetail struct {
	ModuleItem
	Days []DayItem `json:"days"`
}

type LessonResponse struct {
	ModuleID string           `json:"moduleId"`
	Lesson   *model.LessonDay `json:"lesson"`
	Entry    wizard.Entry     `json:"entry"`
}

func (ctrl *ModuleController) journeys(state *model.UserState) map[string]stats.Journey {
	out := make(map[string]stats.Journey)
	for _, j := range stats.Journeys(state, ctrl.Catalog.TotalDays) {
		out[j.ModuleID] = j
	}
	return out
}

func itemOf(m model.Module, journeys map[string]stats.Journey) ModuleItem {
	item := ModuleItem{Module: m, CategoryInfo: m.Category.Info()}
	if j, ok := journeys[m.ID]; ok {
		item.Journey = &j
	}
	return item
}

// @Summary 模块列表
// @Description 全部模块及各自进度
// @Tags 模块
// @Produce json
// @Success 200 {object} util.Response{data=[]ModuleItem}
// @Security BearerAuth
// @Router /modules [get]
func (ctrl *ModuleController) List(c *gin.Context) {
	journeys := ctrl.journeys(ctrl.Progress.State(c.Request.Context()))
	modules := ctrl.Catalog.Modules()
	items := make([]ModuleItem, 0, len(modules))
	for _, m := range modules {
		items = append(items, itemOf(m, journeys))
	}
	util.Success(c, items)
}

// @Summary 模块详情
// @Tags 模块
// @Produce json
// @Param id path string true "模块ID"
// @Success 200 {object} util.Response{data=ModuleDetail}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /modules/{id} [get]
func (ctrl *ModuleController) Get(c *gin.Context) {
	m, err := ctrl.Catalog.Module(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	state := ctrl.Progress.State(c.Request.Context())
	p := state.Progress[m.ID]

	detail := ModuleDetail{ModuleItem: itemOf(*m, ctrl.journeys(state))}
	for _, d := range m.Days {
		detail.Days = append(detail.Days, DayItem{
			Day:       d.Number,
			Title:     d.Title,
			Completed: p.IsCompleted(d.Number),
		})
	}
	util.Success(c, detail)
}

// @Summary 课程内容
// @Description 返回某天的阅读、任务和反思提示，以及进入检查结果
// @Tags 模块
// @Produce json
// @Param id path string true "模块ID"
// @Param day path int true "第几天"
// @Success 200 {object} util.Response{data=LessonResponse}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /modules/{id}/days/{day} [get]
func (ctrl *ModuleController) Lesson(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	moduleID := c.Param("id")
	_, lesson, err := ctrl.Catalog.Lesson(moduleID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	entry, err := ctrl.Wizard.CheckEntry(c.Request.Context(), moduleID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, LessonResponse{ModuleID: moduleID, Lesson: lesson, Entry: entry})
}

// @Summary 开始模块
// @Description 开始或继续一个模块，未完成的旅程最多 5 个
// @Tags 模块
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "模块ID"
// @Success 200 {object} util.Response{data=model.UserState}
// @Failure 409 {object} util.Response
// @Security BearerAuth
// @Router /modules/{id}/start [post]
func (ctrl *ModuleController) Start(c *gin.Context) {
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.StartModule(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 重置模块进度
// @Tags 模块
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "模块ID"
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /modules/{id}/progress [delete]
func (ctrl *ModuleController) Reset(c *gin.Context) {
	ctx, ok := requestContext(c)
	if !ok {
		return
	}
	state, err := ctrl.Progress.ResetModule(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

type CompleteDayRequest struct {
	Reflection   string `json:"reflection"`
	TaskResponse string `json:"taskResponse"`
}

// @Summary 直接完成某天
// @Description 不经过课程向导记录完成，重复提交只覆盖日志
// @Tags 模块
// @Accept json
// @Produce json
// @Param If-Match header string false "期望的 revision"
// @Param id path string true "模块ID"
// @Param day path int true "第几天"
// @Param request body CompleteDayRequest true "反思与任务"
// @Success 200 {object} util.Response{data=model.UserState}
// @Security BearerAuth
// @Router /modules/{id}/days/{day}/complete [post]
func (ctrl *ModuleController) CompleteDay(c *gin.Context) {
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
	state, err := ctrl.Progress.CompleteDay(ctx, c.Param("id"), day, req.Reflection, req.TaskResponse)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, state)
}

// @Summary 下一天时间锁
// @Tags 模块
// @Produce json
// @Param id path string true "模块ID"
// @Success 200 {object} util.Response{data=service.LockView}
// @Security BearerAuth
// @Router /modules/{id}/lock [get]
func (ctrl *ModuleController) Lock(c *gin.Context) {
	lock, err := ctrl.Wizard.NextDayLock(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, lock)
}

type SkipWaitRequest struct {
	Confirm bool `json:"confirm"`
}

// @Summary 跳过等待
// @Description 需要显式确认，本地零点前放行下一天
// @Tags 模块
// @Accept json
// @Produce json
// @Param id path string true "模块ID"
// @Param request body SkipWaitRequest true "确认"
// @Success 200 {object} util.Response{data=service.LockView}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Security BearerAuth
// @Router /modules/{id}/skip-wait [post]
func (ctrl *ModuleController) SkipWait(c *gin.Context) {
	var req SkipWaitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	lock, err := ctrl.Wizard.SkipWait(c.Request.Context(), c.Param("id"), req.Confirm)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, lock)
}
