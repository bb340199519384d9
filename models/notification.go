package models

// NotificationLevel classifies a notification for the presentation layer.
type NotificationLevel int

const (
	NotificationInfo NotificationLevel = iota
	NotificationSuccess
	NotificationError
)

// Notification is a single toast-like message requested by the form engine.
type Notification struct {
	Level   NotificationLevel
	FormID  string
	Message string
}
