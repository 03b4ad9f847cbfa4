package holiday

import "context"

func ToResponseList(items []*Holiday) []*Response {
	out := make([]*Response, 0, len(items))
	for _, h := range items {
		out = append(out, ToResponse(h))
	}
	return out
}

// Service maintains the holiday calendar. Reads are open to any
// authenticated employee; writes are admin only.
type Service interface {
	List(ctx context.Context, year int) ([]*Response, error)
	Create(ctx context.Context, req *CreateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}
