package notification

import "context"

// Service queues and delivers notifications. Notify is fire-and-forget:
// callers never fail a business operation because a notification could not
// be enqueued or written.
type Service interface {
	Notify(recipientID string, typ Type, title, message string, referenceID *string)
	List(ctx context.Context, unreadOnly bool, limit, offset int) ([]*Response, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int, error)
	Shutdown()
}
