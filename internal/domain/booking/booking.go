package booking

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ParseReviewStatus accepts only the outcomes an admin may set.
func ParseReviewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAccepted, StatusRejected:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Booking holds canonical date ("2006-01-02") and time ("15:04") strings so
// that lexical order equals chronological order.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	Status    Status    `json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListFilter narrows List. A zero Date means every day.
type ListFilter struct {
	Date Date
}
