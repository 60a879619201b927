package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Notifications
	message.SetString(lang, KeySessionStarted, "Session started and team assigned!")
	message.SetString(lang, KeyTaskAdded, "Task added successfully!")
	message.SetString(lang, KeyTaskUpdated, "Task updated!")
	message.SetString(lang, KeyTaskDeleted, "Task deleted!")
	message.SetString(lang, KeyFileAdded, "File added to list!")
	message.SetString(lang, KeyEmptyTitle, "Task title cannot be empty.")
	message.SetString(lang, KeyEmptyMessage, "Cannot send empty message or missing team/user info.")
	message.SetString(lang, KeyEmptyFileName, "File name cannot be empty.")
	message.SetString(lang, KeyMissingFields, "Please fill in all required fields.")
	message.SetString(lang, KeyInvalidStatus, "Unknown task status.")
	message.SetString(lang, KeyOnboarded, "Your team has already been assigned.")

	// Errors
	message.SetString(lang, ErrorKey("EMPTY_TITLE"), "task title cannot be empty")
	message.SetString(lang, ErrorKey("EMPTY_TEXT"), "message text cannot be empty")
	message.SetString(lang, ErrorKey("EMPTY_FILE_NAME"), "file name cannot be empty")
	message.SetString(lang, ErrorKey("MISSING_FIELDS"), "please fill in all required fields")
	message.SetString(lang, ErrorKey("INVALID_STATUS"), "status must be one of todo, in-progress, done")
	message.SetString(lang, ErrorKey("NO_SESSION"), "no active team or user session")
	message.SetString(lang, ErrorKey("ALREADY_ONBOARDED"), "session already has a team")
	message.SetString(lang, ErrorKey("NOT_FOUND"), "resource not found")
	message.SetString(lang, ErrorKey("INVALID_INPUT"), "invalid request")
	message.SetString(lang, ErrorKey("INTERNAL_ERROR"), "internal server error")
}
