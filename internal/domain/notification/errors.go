package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotOwnNotification   = errors.New("notification belongs to another employee")
)
