package domain

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo implements the request lifecycle: a pending request may be
// accepted or rejected, an accepted request may be completed. Rejected and
// completed are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected
	case StatusAccepted:
		return next == StatusCompleted
	default:
		return false
	}
}

// SwapRequest is a proposal from one user to exchange a specific offered
// skill for a specific wanted skill with another user.
//
// The from/to name and avatar fields are snapshots of the participants'
// display data taken when the request is sent. They are intentionally never
// re-synced with later profile edits.
type SwapRequest struct {
	ID             uuid.UUID  `json:"id"`
	FromUserID     uuid.UUID  `json:"from_user_id"`
	ToUserID       uuid.UUID  `json:"to_user_id"`
	FromUserName   string     `json:"from_user_name"`
	ToUserName     string     `json:"to_user_name"`
	FromUserAvatar string     `json:"from_user_avatar,omitempty"`
	ToUserAvatar   string     `json:"to_user_avatar,omitempty"`
	SkillOffered   string     `json:"skill_offered"`
	SkillRequested string     `json:"skill_requested"`
	Message        string     `json:"message,omitempty"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
