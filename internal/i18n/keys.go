package i18n

// Ключи уведомлений
const (
	KeySessionStarted = "notification.session_started"
	KeyTaskAdded      = "notification.task_added"
	KeyTaskUpdated    = "notification.task_updated"
	KeyTaskDeleted    = "notification.task_deleted"
	KeyFileAdded      = "notification.file_added"
	KeyEmptyTitle     = "notification.empty_title"
	KeyEmptyMessage   = "notification.empty_message"
	KeyEmptyFileName  = "notification.empty_file_name"
	KeyMissingFields  = "notification.missing_fields"
	KeyInvalidStatus  = "notification.invalid_status"
	KeyOnboarded      = "notification.already_onboarded"
)

// ErrorKey возвращает ключ текста для кода доменной ошибки
func ErrorKey(code string) string {
	return "error." + code
}
