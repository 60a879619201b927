package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	// Notificaciones
	message.SetString(lang, KeySessionStarted, "¡Sesión iniciada y equipo asignado!")
	message.SetString(lang, KeyTaskAdded, "¡Tarea agregada con éxito!")
	message.SetString(lang, KeyTaskUpdated, "¡Tarea actualizada!")
	message.SetString(lang, KeyTaskDeleted, "¡Tarea eliminada!")
	message.SetString(lang, KeyFileAdded, "¡Archivo agregado a la lista!")
	message.SetString(lang, KeyEmptyTitle, "El título de la tarea no puede estar vacío.")
	message.SetString(lang, KeyEmptyMessage, "No se puede enviar un mensaje vacío o sin datos de equipo/usuario.")
	message.SetString(lang, KeyEmptyFileName, "El nombre del archivo no puede estar vacío.")
	message.SetString(lang, KeyMissingFields, "Por favor completa todos los campos obligatorios.")
	message.SetString(lang, KeyInvalidStatus, "Estado de tarea desconocido.")
	message.SetString(lang, KeyOnboarded, "Tu equipo ya fue asignado.")

	// Errores
	message.SetString(lang, ErrorKey("EMPTY_TITLE"), "el título de la tarea no puede estar vacío")
	message.SetString(lang, ErrorKey("EMPTY_TEXT"), "el mensaje no puede estar vacío")
	message.SetString(lang, ErrorKey("EMPTY_FILE_NAME"), "el nombre del archivo no puede estar vacío")
	message.SetString(lang, ErrorKey("MISSING_FIELDS"), "por favor completa todos los campos obligatorios")
	message.SetString(lang, ErrorKey("INVALID_STATUS"), "el estado debe ser todo, in-progress o done")
	message.SetString(lang, ErrorKey("NO_SESSION"), "no hay una sesión de equipo o usuario activa")
	message.SetString(lang, ErrorKey("ALREADY_ONBOARDED"), "la sesión ya tiene un equipo")
	message.SetString(lang, ErrorKey("NOT_FOUND"), "recurso no encontrado")
	message.SetString(lang, ErrorKey("INVALID_INPUT"), "solicitud inválida")
	message.SetString(lang, ErrorKey("INTERNAL_ERROR"), "error interno del servidor")
}
