package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/identity"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/sse"
)

// Config holds notification worker configuration.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan *notification.Notification
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewService creates a notification service backed by background workers
// that batch database writes and push accepted rows to SSE subscribers.
func NewService(repo notification.Repository, hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan *notification.Notification, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("notification service started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval,
	)

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]*notification.Notification, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			slog.Error("notification batch insert failed", "worker", id, "count", len(batch), "error", err)
		} else {
			for _, n := range batch {
				s.hub.Publish(n.RecipientID, sse.Event{
					EmployeeID: n.RecipientID,
					Event:      "notification",
					Data:       notification.ToResponse(n),
				})
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case n := <-s.queue:
			batch = append(batch, n)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is still queued before the final flush
			for {
				select {
				case n := <-s.queue:
					batch = append(batch, n)
					if len(batch) >= s.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

// Notify implements notification.Service. The notification is queued for a
// worker; when the queue is full it falls back to a direct insert. Failures
// are logged, never returned, so business operations cannot be failed by a
// notification problem.
func (s *service) Notify(recipientID string, typ notification.Type, title, message string, referenceID *string) {
	n := &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Type:        typ,
		Title:       title,
		Message:     message,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}

	select {
	case s.queue <- n:
	default:
		// Queue full, insert directly
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.repo.Create(ctx, n); err != nil {
			slog.Error("notification direct insert failed", "recipient", recipientID, "type", typ, "error", err)
			return
		}
		s.hub.Publish(n.RecipientID, sse.Event{
			EmployeeID: n.RecipientID,
			Event:      "notification",
			Data:       notification.ToResponse(n),
		})
	}
}

// List implements notification.Service.
func (s *service) List(ctx context.Context, unreadOnly bool, limit, offset int) ([]*notification.Response, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByRecipient(ctx, caller.EmployeeID, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}

	return notification.ToResponseList(items), nil
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, id string) error {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != caller.EmployeeID {
		return notification.ErrNotOwnNotification
	}

	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead implements notification.Service.
func (s *service) MarkAllRead(ctx context.Context) (int64, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.repo.MarkAllRead(ctx, caller.EmployeeID)
}

// UnreadCount implements notification.Service.
func (s *service) UnreadCount(ctx context.Context) (int, error) {
	caller, err := identity.FromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.repo.CountUnread(ctx, caller.EmployeeID)
}

// Shutdown drains the queue and stops the workers.
func (s *service) Shutdown() {
	close(s.stopCh)
	s.wg.Wait()
	slog.Info("notification service stopped")
}
