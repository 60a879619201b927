package entity

import "time"

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification короткое сообщение для баннера; Key - ключ каталога сообщений
type Notification struct {
	Type      NotificationType
	Key       string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Visible сообщает, показывается ли уведомление в момент now
func (n *Notification) Visible(now time.Time) bool {
	return n != nil && now.Before(n.ExpiresAt)
}
