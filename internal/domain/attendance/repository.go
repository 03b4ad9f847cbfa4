package attendance

import (
	"context"
	"time"
)

// ListFilter narrows attendance listings.
type ListFilter struct {
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *Status
	Limit      int
	Offset     int
}

// Repository persists attendance sessions. Create must fail with
// ErrActiveSession when the employee already has a session without a
// check-out; the postgres implementation enforces this with a partial
// unique index rather than a read-then-write check.
type Repository interface {
	Create(ctx context.Context, a *Attendance) error
	GetByID(ctx context.Context, id string) (*Attendance, error)
	GetOpenSession(ctx context.Context, employeeID string) (*Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	HasRecordForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]*Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]*Attendance, error)
	ListForDate(ctx context.Context, date time.Time) ([]*Attendance, error)
	CountDistinctDaysByStatus(ctx context.Context, employeeID string, start, end time.Time, statuses []Status) (int, error)
}
