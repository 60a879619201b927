package entity

import "time"

// Session состояние одного пользователя от открытия страницы до закрытия.
// User и Team заполняются при отправке анкеты и больше не меняются.
type Session struct {
	SessionID   string
	LocalUserID string
	User        *User
	Team        *Team
	CreatedAt   time.Time
}

// IsOnboarded сообщает, отправлена ли анкета
func (s *Session) IsOnboarded() bool {
	return s.User != nil && s.Team != nil
}

// DisplayName имя пользователя или пустая строка до анкеты
func (s *Session) DisplayName() string {
	if s.User == nil {
		return ""
	}
	return s.User.Name
}
