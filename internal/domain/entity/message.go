package entity

import "time"

type ChatMessage struct {
	MessageID  string
	SessionID  string
	SenderID   string
	SenderName string
	Text       string
	Timestamp  time.Time
}
