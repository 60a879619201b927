package entity

import "time"

type SharedFile struct {
	SessionID string
	Name      string
	AddedAt   time.Time
}
