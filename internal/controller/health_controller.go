package controller

import (
	"context"
	"errors"
	"mindset_backend/internal/repository"
	"mindset_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCounter 进行中的课程会话数量
type SessionCounter interface {
	SessionCount() int
}

type HealthController struct {
	Store    repository.KeyValueStore
	Key      string
	Sessions SessionCounter
}

func NewHealthController(store repository.KeyValueStore, key string, sessions SessionCounter) *HealthController {
	return &HealthController{Store: store, Key: key, Sessions: sessions}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (ctrl *HealthController) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	// 检查存储读取
	if _, err := ctrl.Store.GetItem(ctx, ctrl.Key); err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		util.Error(c, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	util.Success(c, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": "up",
		},
		"sessions": ctrl.Sessions.SessionCount(),
	})
}
