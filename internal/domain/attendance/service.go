package attendance

import (
	"context"
	"time"
)

// Service is the attendance session tracker.
type Service interface {
	CheckIn(ctx context.Context, req *CaptureRequest) (*CheckInResponse, error)
	CheckOut(ctx context.Context, req *CaptureRequest) (*CheckOutResponse, error)
	MyAttendance(ctx context.Context, start, end *time.Time, limit, offset int) ([]*Response, error)
	Today(ctx context.Context) (*TodayStatus, error)
	Overview(ctx context.Context) (*TodayOverview, error)
	Stats(ctx context.Context, employeeID string, start, end time.Time) (*Stats, error)
}
