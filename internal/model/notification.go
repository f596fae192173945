package model

import "time"

const DefaultNotificationTarget = "/home"

type NotificationPermission string

const (
	PermissionDefault     NotificationPermission = "default"
	PermissionGranted     NotificationPermission = "granted"
	PermissionDenied      NotificationPermission = "denied"
	PermissionUnsupported NotificationPermission = "unsupported"
)

// Notification 本地通知内容，点击后跳转到 TargetURL
// swagger:model Notification
type Notification struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	TargetURL string `json:"targetUrl"`
}

func (n Notification) WithDefaults() Notification {
	if n.TargetURL == "" {
		n.TargetURL = DefaultNotificationTarget
	}
	return n
}

// ScheduledNotification 等待轮询发送的通知
type ScheduledNotification struct {
	ID           string       `json:"id"`
	At           time.Time    `json:"at"`
	Notification Notification `json:"notification"`
}
