package notification

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenith-hr/workforce-backend-go/internal/domain/notification"
	"github.com/zenith-hr/workforce-backend-go/internal/pkg/sse"
)

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []*notification.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(_ context.Context, batch []*notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, batch...)
	return nil
}

func (f *fakeNotificationRepo) ListByRecipient(context.Context, string, bool, int, int) ([]*notification.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) GetByID(context.Context, string) (*notification.Notification, error) {
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkRead(context.Context, string) error { return nil }

func (f *fakeNotificationRepo) MarkAllRead(context.Context, string) (int64, error) { return 0, nil }

func (f *fakeNotificationRepo) CountUnread(context.Context, string) (int, error) { return 0, nil }

func (f *fakeNotificationRepo) stored() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func TestShutdownDrainsQueue(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, sse.NewHub(), Config{
		WorkerCount:   1,
		BatchSize:     100,
		FlushInterval: time.Hour,
		QueueSize:     64,
	})

	for i := 0; i < 10; i++ {
		svc.Notify(fmt.Sprintf("EMP%03d", i), notification.TypeLeaveApplied, "Leave Applied", "pending review", nil)
	}

	// Nothing forces a flush before shutdown: the interval is an hour away
	// and the batch is under size. Shutdown must still persist every
	// queued notification.
	svc.Shutdown()

	require.Equal(t, 10, repo.stored())
}

func TestNotifyFallsBackWhenQueueFull(t *testing.T) {
	repo := &fakeNotificationRepo{}
	s := &service{
		repo:   repo,
		hub:    sse.NewHub(),
		config: Config{BatchSize: 100},
		queue:  make(chan *notification.Notification), // unbuffered, no worker
		stopCh: make(chan struct{}),
	}

	s.Notify("EMP001", notification.TypePayslipGenerated, "Payslip Generated", "ready", nil)

	assert.Equal(t, 1, repo.stored())
}
