package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/skillswap/internal/domain"
	"github.com/vedran77/skillswap/internal/repository/memory"
)

type fakeNotifier struct {
	created []uuid.UUID
	updated []uuid.UUID
	deleted []uuid.UUID
}

func (f *fakeNotifier) NotifySwapCreated(req *domain.SwapRequest) { f.created = append(f.created, req.ID) }
func (f *fakeNotifier) NotifySwapUpdated(req *domain.SwapRequest) { f.updated = append(f.updated, req.ID) }
func (f *fakeNotifier) NotifySwapDeleted(req *domain.SwapRequest) { f.deleted = append(f.deleted, req.ID) }

func newSwapFixture(t *testing.T) (*SwapService, *fakeNotifier, *domain.User, *domain.User) {
	t.Helper()
	ctx := context.Background()

	users := memory.NewUserRepo()
	alice := &domain.User{
		ID:            uuid.New(),
		Name:          "Alice",
		Avatar:        "alice.png",
		SkillsOffered: []string{"Go"},
		SkillsWanted:  []string{"Photography"},
	}
	bob := &domain.User{
		ID:            uuid.New(),
		Name:          "Bob",
		Avatar:        "bob.png",
		SkillsOffered: []string{"Photography"},
		SkillsWanted:  []string{"Go"},
	}
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	notifier := &fakeNotifier{}
	return NewSwapService(memory.NewSwapRepo(), users, notifier), notifier, alice, bob
}

func sendSwap(t *testing.T, svc *SwapService, from *domain.User, to *domain.User) *domain.SwapRequest {
	t.Helper()
	req, err := svc.Send(context.Background(), from, SendSwapInput{
		ToUserID:       to.ID,
		SkillOffered:   from.SkillsOffered[0],
		SkillRequested: to.SkillsOffered[0],
		Message:        "let's swap",
	})
	require.NoError(t, err)
	return req
}

func TestSendCreatesPendingRequest(t *testing.T) {
	svc, notifier, alice, bob := newSwapFixture(t)

	req := sendSwap(t, svc, alice, bob)

	assert.Equal(t, domain.StatusPending, req.Status)
	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.False(t, req.CreatedAt.IsZero())
	assert.Nil(t, req.CompletedAt)
	assert.Equal(t, "Alice", req.FromUserName)
	assert.Equal(t, "Bob", req.ToUserName)
	assert.Equal(t, "alice.png", req.FromUserAvatar)
	assert.Equal(t, "bob.png", req.ToUserAvatar)
	assert.Equal(t, []uuid.UUID{req.ID}, notifier.created)
}

func TestSendUnknownReceiver(t *testing.T) {
	svc, _, alice, _ := newSwapFixture(t)

	_, err := svc.Send(context.Background(), alice, SendSwapInput{
		ToUserID:     uuid.New(),
		SkillOffered: "Go", SkillRequested: "Photography",
	})
	assert.ErrorIs(t, err, ErrSwapUserNotFound)
}

func TestSendDoesNotDeduplicate(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)

	first := sendSwap(t, svc, alice, bob)
	second := sendSwap(t, svc, alice, bob)
	assert.NotEqual(t, first.ID, second.ID)

	reqs, err := svc.ListForUser(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, reqs.Sent, 2, "the same offer sent twice creates two records")
}

func TestListForUserPartitions(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)

	req := sendSwap(t, svc, alice, bob)

	fromSide, err := svc.ListForUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, fromSide.Sent, 1)
	assert.Equal(t, req.ID, fromSide.Sent[0].ID)
	assert.Empty(t, fromSide.Received)

	toSide, err := svc.ListForUser(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, toSide.Received, 1)
	assert.Equal(t, req.ID, toSide.Received[0].ID)
	assert.Empty(t, toSide.Sent)
}

func TestListForUserEmptyLedger(t *testing.T) {
	svc, _, alice, _ := newSwapFixture(t)

	reqs, err := svc.ListForUser(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, reqs.Sent)
	assert.NotNil(t, reqs.Received)
	assert.Empty(t, reqs.Sent)
	assert.Empty(t, reqs.Received)
}

func TestUpdateStatusAcceptAndComplete(t *testing.T) {
	svc, notifier, alice, bob := newSwapFixture(t)
	ctx := context.Background()

	req := sendSwap(t, svc, alice, bob)

	accepted, err := svc.UpdateStatus(ctx, bob.ID, req.ID, domain.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, accepted.Status)
	assert.Nil(t, accepted.CompletedAt)

	before := time.Now()
	completed, err := svc.UpdateStatus(ctx, alice.ID, req.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.False(t, completed.CompletedAt.Before(before))

	assert.Equal(t, []uuid.UUID{req.ID, req.ID}, notifier.updated)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)

	sendSwap(t, svc, alice, bob)

	_, err := svc.UpdateStatus(context.Background(), bob.ID, uuid.New(), domain.StatusAccepted)
	assert.ErrorIs(t, err, ErrSwapNotFound)

	// The ledger is unchanged.
	reqs, err := svc.ListForUser(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, reqs.Received, 1)
	assert.Equal(t, domain.StatusPending, reqs.Received[0].Status)
}

func TestUpdateStatusRejectsInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		via  []domain.Status
		next domain.Status
	}{
		{"pending_to_completed", nil, domain.StatusCompleted},
		{"rejected_is_terminal", []domain.Status{domain.StatusRejected}, domain.StatusCompleted},
		{"completed_is_terminal", []domain.Status{domain.StatusAccepted, domain.StatusCompleted}, domain.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, alice, bob := newSwapFixture(t)
			ctx := context.Background()

			req := sendSwap(t, svc, alice, bob)
			for _, s := range tt.via {
				_, err := svc.UpdateStatus(ctx, bob.ID, req.ID, s)
				require.NoError(t, err)
			}

			_, err := svc.UpdateStatus(ctx, bob.ID, req.ID, tt.next)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateStatusActorChecks(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)
	ctx := context.Background()

	req := sendSwap(t, svc, alice, bob)

	// Only the receiver may accept or reject.
	_, err := svc.UpdateStatus(ctx, alice.ID, req.ID, domain.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotReceiver)

	_, err = svc.UpdateStatus(ctx, bob.ID, req.ID, domain.StatusAccepted)
	require.NoError(t, err)

	// A stranger may not complete.
	_, err = svc.UpdateStatus(ctx, uuid.New(), req.ID, domain.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotParticipant)

	// Either participant may complete; here the sender does.
	_, err = svc.UpdateStatus(ctx, alice.ID, req.ID, domain.StatusCompleted)
	require.NoError(t, err)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)

	req := sendSwap(t, svc, alice, bob)

	_, err := svc.UpdateStatus(context.Background(), bob.ID, req.ID, domain.Status("cancelled"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), bob.ID, req.ID, domain.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeleteRemovesFromBothPartitions(t *testing.T) {
	svc, notifier, alice, bob := newSwapFixture(t)
	ctx := context.Background()

	req := sendSwap(t, svc, alice, bob)

	require.NoError(t, svc.Delete(ctx, alice.ID, req.ID))

	fromSide, err := svc.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, fromSide.Sent)

	toSide, err := svc.ListForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, toSide.Received)

	assert.Equal(t, []uuid.UUID{req.ID}, notifier.deleted)
}

func TestDeleteOnlyBySender(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)

	req := sendSwap(t, svc, alice, bob)

	err := svc.Delete(context.Background(), bob.ID, req.ID)
	assert.ErrorIs(t, err, ErrNotSender)
}

func TestDeleteOnlyWhilePendingOrRejected(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected_is_deletable", func(t *testing.T) {
		svc, _, alice, bob := newSwapFixture(t)
		req := sendSwap(t, svc, alice, bob)

		_, err := svc.UpdateStatus(ctx, bob.ID, req.ID, domain.StatusRejected)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, alice.ID, req.ID))
	})

	t.Run("accepted_is_not", func(t *testing.T) {
		svc, _, alice, bob := newSwapFixture(t)
		req := sendSwap(t, svc, alice, bob)

		_, err := svc.UpdateStatus(ctx, bob.ID, req.ID, domain.StatusAccepted)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Delete(ctx, alice.ID, req.ID), ErrNotDeletable)
	})

	t.Run("completed_is_not", func(t *testing.T) {
		svc, _, alice, bob := newSwapFixture(t)
		req := sendSwap(t, svc, alice, bob)

		_, err := svc.UpdateStatus(ctx, bob.ID, req.ID, domain.StatusAccepted)
		require.NoError(t, err)
		_, err = svc.UpdateStatus(ctx, alice.ID, req.ID, domain.StatusCompleted)
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Delete(ctx, alice.ID, req.ID), ErrNotDeletable)

		// The record survives the refused deletion.
		reqs, err := svc.ListForUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, reqs.Sent, 1)
		assert.Equal(t, domain.StatusCompleted, reqs.Sent[0].Status)
	})
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _, alice, _ := newSwapFixture(t)

	err := svc.Delete(context.Background(), alice.ID, uuid.New())
	assert.ErrorIs(t, err, ErrSwapNotFound)
}

func TestSnapshotsSurviveProfileEdits(t *testing.T) {
	svc, _, alice, bob := newSwapFixture(t)
	ctx := context.Background()

	sendSwap(t, svc, alice, bob)

	// Renaming the sender after the fact must not touch the snapshot.
	alice.Name = "Alicia"

	reqs, err := svc.ListForUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, reqs.Received, 1)
	assert.Equal(t, "Alice", reqs.Received[0].FromUserName)
}
