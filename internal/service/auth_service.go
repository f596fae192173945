package service

import (
	"mindset_backend/internal/config"
	"mindset_backend/internal/util"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthService 单用户应用的设备令牌。开启后用口令换取 JWT。
type AuthService struct {
	Cfg *config.Config
	Now func() time.Time
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		Cfg: cfg,
		Now: time.Now,
	}
}

func (s *AuthService) Enabled() bool {
	return s.Cfg.Auth.Enabled
}

// Login 校验口令并为 device 签发令牌
func (s *AuthService) Login(device, passcode string) (string, time.Time, error) {
	if !s.Cfg.Auth.Enabled {
		return "", time.Time{}, util.ErrAuthDisabled
	}
	if s.Cfg.Auth.PasscodeHash == "" {
		return "", time.Time{}, util.ErrInvalidPasscode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.Cfg.Auth.PasscodeHash), []byte(passcode)); err != nil {
		return "", time.Time{}, util.ErrInvalidPasscode
	}
	return s.IssueToken(device)
}

// IssueToken 不校验口令直接签发，供本机 CLI 使用
func (s *AuthService) IssueToken(device string) (string, time.Time, error) {
	device = strings.TrimSpace(device)
	if device == "" {
		device = "default"
	}
	now := s.Now()
	token, err := util.GenerateJWT(device, s.Cfg.Auth.Secret, s.Cfg.Auth.ExpireTime, now)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, now.Add(s.Cfg.Auth.ExpireTime), nil
}

// HashPasscode 生成写入配置的口令哈希
func HashPasscode(passcode string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CurrentDevice 请求中令牌对应的设备名，未开启认证时为空
func (s *AuthService) CurrentDevice(c *gin.Context) string {
	claims := util.GetClaimsFromContext(c)
	if claims == nil {
		return ""
	}
	return claims.Device
}
