package holiday

import "time"

// Holiday is one non-working calendar day. Optional holidays do not reduce
// the working-day count unless the employee opted in.
type Holiday struct {
	ID         string
	Name       string
	Date       time.Time
	IsOptional bool
	CreatedAt  time.Time
}

type Response struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	IsOptional bool   `json:"is_optional"`
}

type CreateRequest struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	IsOptional bool   `json:"is_optional"`
}

func ToResponse(h *Holiday) *Response {
	return &Response{
		ID:         h.ID,
		Name:       h.Name,
		Date:       h.Date.Format("2006-01-02"),
		IsOptional: h.IsOptional,
	}
}
