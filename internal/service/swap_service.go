package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/skillswap/internal/domain"
	"github.com/vedran77/skillswap/internal/repository"
)

var (
	ErrSwapNotFound      = errors.New("swap request not found")
	ErrSwapUserNotFound  = errors.New("user not found")
	ErrInvalidStatus     = errors.New("unknown status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotReceiver       = errors.New("only the request receiver can perform this action")
	ErrNotSender         = errors.New("only the request sender can delete")
	ErrNotParticipant    = errors.New("only a request participant can perform this action")
	ErrNotDeletable      = errors.New("only pending or rejected requests can be deleted")
)

// Notifier pushes swap-request events to connected participants.
type Notifier interface {
	NotifySwapCreated(req *domain.SwapRequest)
	NotifySwapUpdated(req *domain.SwapRequest)
	NotifySwapDeleted(req *domain.SwapRequest)
}

// SwapService owns the swap-request ledger and its status lifecycle.
type SwapService struct {
	swapRepo repository.SwapRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository, notifier Notifier) *SwapService {
	return &SwapService{
		swapRepo: swapRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type SendSwapInput struct {
	ToUserID       uuid.UUID `json:"to_user_id"`
	SkillOffered   string    `json:"skill_offered"`
	SkillRequested string    `json:"skill_requested"`
	Message        string    `json:"message"`
}

// Send appends a new pending request to the ledger. The sender's and
// receiver's display data are snapshotted onto the record at this point.
// Sending the same offer twice creates two independent records, that is
// intended behavior, not a defect.
func (s *SwapService) Send(ctx context.Context, from *domain.User, input SendSwapInput) (*domain.SwapRequest, error) {
	target, err := s.userRepo.GetByID(ctx, input.ToUserID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return nil, ErrSwapUserNotFound
	}

	req := &domain.SwapRequest{
		ID:             uuid.New(),
		FromUserID:     from.ID,
		ToUserID:       target.ID,
		FromUserName:   from.Name,
		ToUserName:     target.Name,
		FromUserAvatar: from.Avatar,
		ToUserAvatar:   target.Avatar,
		SkillOffered:   input.SkillOffered,
		SkillRequested: input.SkillRequested,
		Message:        input.Message,
		Status:         domain.StatusPending,
		CreatedAt:      time.Now(),
	}

	if err := s.swapRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("creating swap request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifySwapCreated(req)
	}

	return req, nil
}

// UpdateStatus moves a request through its lifecycle. Accept and reject are
// the receiver's decision; completing is open to either participant.
// Transitions outside the lifecycle table are rejected.
func (s *SwapService) UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, next domain.Status) (*domain.SwapRequest, error) {
	if !next.Valid() || next == domain.StatusPending {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
	}

	req, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrSwapNotFound
	}

	switch next {
	case domain.StatusAccepted, domain.StatusRejected:
		if req.ToUserID != actorID {
			return nil, ErrNotReceiver
		}
	case domain.StatusCompleted:
		if req.FromUserID != actorID && req.ToUserID != actorID {
			return nil, ErrNotParticipant
		}
	}

	if !req.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.Status, next)
	}

	req.Status = next
	if next == domain.StatusCompleted {
		now := time.Now()
		req.CompletedAt = &now
	}

	if err := s.swapRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("updating swap request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifySwapUpdated(req)
	}

	return req, nil
}

// Delete removes a request from the ledger. Only the sender may delete,
// and only while the request is pending or rejected; the ledger itself
// removes any record by id unconditionally.
func (s *SwapService) Delete(ctx context.Context, actorID, requestID uuid.UUID) error {
	req, err := s.swapRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrSwapNotFound
	}
	if req.FromUserID != actorID {
		return ErrNotSender
	}
	if req.Status != domain.StatusPending && req.Status != domain.StatusRejected {
		return fmt.Errorf("%w: %s", ErrNotDeletable, req.Status)
	}

	if err := s.swapRepo.Delete(ctx, requestID); err != nil {
		return fmt.Errorf("deleting swap request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifySwapDeleted(req)
	}

	return nil
}

type UserSwapRequests struct {
	Sent     []domain.SwapRequest `json:"sent"`
	Received []domain.SwapRequest `json:"received"`
}

// ListForUser partitions the ledger into requests the user sent and
// requests the user received, each in ledger insertion order.
func (s *SwapService) ListForUser(ctx context.Context, userID uuid.UUID) (*UserSwapRequests, error) {
	sent, err := s.swapRepo.ListBySender(ctx, userID)
	if err != nil {
		return nil, err
	}
	received, err := s.swapRepo.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	if sent == nil {
		sent = []domain.SwapRequest{}
	}
	if received == nil {
		received = []domain.SwapRequest{}
	}

	return &UserSwapRequests{Sent: sent, Received: received}, nil
}
