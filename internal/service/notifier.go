package service

import (
	"context"
	"fmt"
	"mindset_backend/internal/config"
	"mindset_backend/internal/model"
	"mindset_backend/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.uber.org/zap"
)

// Notifier 平台通知能力
type Notifier interface {
	Name() string
	RequestPermission(ctx context.Context) model.NotificationPermission
	Show(ctx context.Context, n model.Notification) error
}

// LogNotifier 只写日志，开发环境使用
type LogNotifier struct{}

func (LogNotifier) Name() string { return "log" }

func (LogNotifier) RequestPermission(ctx context.Context) model.NotificationPermission {
	return model.PermissionGranted
}

func (LogNotifier) Show(ctx context.Context, n model.Notification) error {
	logger.Log.Info("Notification",
		zap.String("title", n.Title),
		zap.String("body", n.Body),
		zap.String("targetUrl", n.TargetURL))
	return nil
}

// LinePusher 便于测试替换
type LinePusher interface {
	PushText(to, text string) error
}

type lineBotPusher struct {
	client *linebot.Client
}

func (p *lineBotPusher) PushText(to, text string) error {
	message := linebot.NewTextMessage(text).
		WithSender(&linebot.Sender{
			Name: "Mindset Reminder",
		})
	_, err := p.client.PushMessage(to, message).Do()
	return err
}

// LineNotifier 通过 LINE 推送消息给固定用户
type LineNotifier struct {
	Pusher LinePusher
	UserID string
}

// NewLineNotifier 未配置时返回 nil
func NewLineNotifier(cfg config.LineConfig) (*LineNotifier, error) {
	if cfg.ChannelSecret == "" || cfg.ChannelToken == "" || cfg.UserID == "" {
		return nil, nil
	}
	client, err := linebot.New(cfg.ChannelSecret, cfg.ChannelToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create line bot client: %w", err)
	}
	return &LineNotifier{Pusher: &lineBotPusher{client: client}, UserID: cfg.UserID}, nil
}

func (n *LineNotifier) Name() string { return "line" }

func (n *LineNotifier) RequestPermission(ctx context.Context) model.NotificationPermission {
	if n.Pusher == nil || n.UserID == "" {
		return model.PermissionUnsupported
	}
	return model.PermissionGranted
}

func (n *LineNotifier) Show(ctx context.Context, msg model.Notification) error {
	text := msg.Title
	if msg.Body != "" {
		text += "\n" + msg.Body
	}
	return n.Pusher.PushText(n.UserID, text)
}
