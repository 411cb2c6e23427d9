package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/skillswap/internal/domain"
)

func newRequest(from, to uuid.UUID, skill string) *domain.SwapRequest {
	return &domain.SwapRequest{
		ID:           uuid.New(),
		FromUserID:   from,
		ToUserID:     to,
		SkillOffered: skill,
		Status:       domain.StatusPending,
		CreatedAt:    time.Now(),
	}
}

func TestSwapRepoListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSwapRepo()
	alice, bob := uuid.New(), uuid.New()

	var ids []uuid.UUID
	for _, skill := range []string{"Go", "React", "Spanish"} {
		req := newRequest(alice, bob, skill)
		require.NoError(t, repo.Create(ctx, req))
		ids = append(ids, req.ID)
	}

	sent, err := repo.ListBySender(ctx, alice)
	require.NoError(t, err)
	require.Len(t, sent, 3)
	for i, req := range sent {
		assert.Equal(t, ids[i], req.ID)
	}
}

func TestSwapRepoGetByIDUnknown(t *testing.T) {
	repo := NewSwapRepo()

	req, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, req)
}

func TestSwapRepoUpdateReplacesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewSwapRepo()

	req := newRequest(uuid.New(), uuid.New(), "Go")
	require.NoError(t, repo.Create(ctx, req))

	req.Status = domain.StatusAccepted
	require.NoError(t, repo.Update(ctx, req))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusAccepted, got.Status)
}

func TestSwapRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSwapRepo()

	req := newRequest(uuid.New(), uuid.New(), "Go")
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	got.Status = domain.StatusCompleted

	again, err := repo.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status, "mutating a returned record must not touch the ledger")
}

func TestSwapRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSwapRepo()
	alice, bob := uuid.New(), uuid.New()

	first := newRequest(alice, bob, "Go")
	second := newRequest(alice, bob, "React")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.Delete(ctx, first.ID))

	sent, err := repo.ListBySender(ctx, alice)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, second.ID, sent[0].ID)

	// Deleting an unknown id is a silent no-op at the repo level.
	require.NoError(t, repo.Delete(ctx, uuid.New()))
}
