package controller

import (
	"mindset_backend/internal/service"
	"mindset_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type TokenRequest struct {
	Device   string `json:"device"`
	Passcode string `json:"passcode" binding:"required"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// @Summary 获取设备令牌
// @Description 使用口令换取 JWT，仅在开启认证时可用
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body TokenRequest true "设备名与口令"
// @Success 200 {object} util.Response{data=TokenResponse}
// @Failure 401 {object} util.Response
// @Router /auth/token [post]
func (ctrl *AuthController) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}
	token, expiresAt, err := ctrl.AuthService.Login(req.Device, req.Passcode)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// @Summary 当前设备
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	util.Success(c, gin.H{
		"authEnabled": ctrl.AuthService.Enabled(),
		"device":      ctrl.AuthService.CurrentDevice(c),
	})
}
