package reviews

import (
	"time"

	"github.com/guregu/null/v5"
)

// Status is the moderation state assigned by the server.
type Status string

const (
	StatusAllowed     Status = "allowed"
	StatusPending     Status = "pending"
	StatusToBeDeleted Status = "to_be_deleted"
)

// Review is a user-submitted review. Everything except Content is assigned
// by the server.
type Review struct {
	ID           int64     `json:"id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	Status       Status    `json:"status,omitempty"`
	RiskCategory string    `json:"risk_category,omitempty"`
	Confidence   float64   `json:"confidence"`
	ModeratedAt  null.Time `json:"moderated_at" swaggertype:"string" format:"date-time"`
}

// Published reports whether the server lists the review publicly. Records
// without a status predate moderation and are treated as published.
func (r Review) Published() bool {
	return r.Status == "" || r.Status == StatusAllowed
}

// CreateReviewPayload is the body of a create request.
type CreateReviewPayload struct {
	Content string `json:"content" validate:"required,max=5000"`
}
