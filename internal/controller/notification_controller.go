package controller

import (
	"mindset_backend/internal/model"
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NotificationController 提醒通知
type NotificationController struct {
	Notifications *service.NotificationService
	Hub           *service.PushHub
	Auth          *service.AuthService
	Now           func() time.Time
}

func NewNotificationController(notifications *service.NotificationService, hub *service.PushHub, auth *service.AuthService) *NotificationController {
	return &NotificationController{Notifications: notifications, Hub: hub, Auth: auth, Now: time.Now}
}

type PermissionResponse struct {
	Permission model.NotificationPermission `json:"permission"`
	Channels   []service.ChannelStatus      `json:"channels"`
}

// @Summary 通知权限
// @Description 任一通道可用即为 granted，没有通道时为 unsupported
// @Tags 通知
// @Produce json
// @Success 200 {object} util.Response{data=PermissionResponse}
// @Security BearerAuth
// @Router /notifications/permission [get]
func (ctrl *NotificationController) Permission(c *gin.Context) {
	p, channels := ctrl.Notifications.Permission(c.Request.Context())
	util.Success(c, PermissionResponse{Permission: p, Channels: channels})
}

// @Summary 发送测试通知
// @Tags 通知
// @Accept json
// @Produce json
// @Param request body model.Notification false "通知内容"
// @Success 200 {object} util.Response
// @Security BearerAuth
// @Router /notifications/test [post]
func (ctrl *NotificationController) Test(c *gin.Context) {
	n := model.Notification{Title: "Test notification", Body: "Notifications are working."}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&n); err != nil {
			util.BadRequest(c, err.Error())
			return
		}
	}
	delivered := ctrl.Notifications.Show(c.Request.Context(), n)
	util.Success(c, gin.H{"delivered": delivered})
}

type ScheduleRequest struct {
	model.Notification
	// At 与 DelaySeconds 二选一
	At           *time.Time `json:"at"`
	DelaySeconds int        `json:"delaySeconds"`
}

// @Summary 定时通知
// @Tags 通知
// @Accept json
// @Produce json
// @Param request body ScheduleRequest true "通知内容与发送时间"
// @Success 201 {object} util.Response{data=model.ScheduledNotification}
// @Failure 400 {object} util.Response
// @Security BearerAuth
// @Router /notifications/scheduled [post]
func (ctrl *NotificationController) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	if req.Title == "" {
		util.BadRequest(c, "title is required")
		return
	}
	at := ctrl.Now().Add(time.Duration(req.DelaySeconds) * time.Second)
	if req.At != nil {
		at = *req.At
	}
	util.Created(c, ctrl.Notifications.Schedule(req.Notification, at))
}

// @Summary 待发送的定时通知
// @Tags 通知
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ScheduledNotification}
// @Security BearerAuth
// @Router /notifications/scheduled [get]
func (ctrl *NotificationController) Pending(c *gin.Context) {
	util.Success(c, ctrl.Notifications.Pending())
}

// @Summary 取消定时通知
// @Tags 通知
// @Produce json
// @Param id path string true "通知ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /notifications/scheduled/{id} [delete]
func (ctrl *NotificationController) Cancel(c *gin.Context) {
	if !ctrl.Notifications.Cancel(c.Param("id")) {
		util.NotFound(c)
		return
	}
	util.Success(c, nil)
}

// HandleWS godoc
// @Summary 通知推送连接
// @Description 建立 WebSocket 连接接收通知，并上报课程页面可见性
// @Tags 通知
// @Param token query string false "设备令牌"
// @Success 101 {string} string "Switching Protocols"
// @Security BearerAuth
// @Router /notifications/ws [get]
func (ctrl *NotificationController) HandleWS(c *gin.Context) {
	device := ctrl.Auth.CurrentDevice(c)
	if device == "" {
		device = c.ClientIP()
	}
	if ctrl.Hub == nil {
		util.Error(c, http.StatusServiceUnavailable, "Push hub unavailable")
		return
	}
	service.ServeWs(ctrl.Hub, c.Writer, c.Request, device)
}
