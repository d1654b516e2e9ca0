package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()
	userId := uuid.New()

	session, err := repo.Create(ctx, userId)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, userId, session.UserId)
	assert.Nil(t, session.ChildId)
	assert.Nil(t, session.ResultId)

	got, found := repo.Get(ctx, session.Token)
	assert.True(t, found)
	assert.Equal(t, userId, got.UserId)

	childId := uuid.New()
	assert.NoError(t, repo.SetActiveChild(ctx, session.Token, childId))

	resultId := uuid.New()
	assert.NoError(t, repo.SetActiveResult(ctx, session.Token, resultId))

	got, found = repo.Get(ctx, session.Token)
	assert.True(t, found)
	assert.Equal(t, childId, *got.ChildId)
	assert.Equal(t, resultId, *got.ResultId)

	repo.Delete(ctx, session.Token)
	_, found = repo.Get(ctx, session.Token)
	assert.False(t, found)
}

func TestUnknownToken(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	ctx := context.Background()

	_, found := repo.Get(ctx, "not-a-token")
	assert.False(t, found)

	assert.Error(t, repo.SetActiveChild(ctx, "not-a-token", uuid.New()))
	assert.Error(t, repo.SetActiveResult(ctx, "not-a-token", uuid.New()))
}

func TestSessionExpiry(t *testing.T) {
	repo := NewSessionRepository(20 * time.Millisecond)
	ctx := context.Background()

	session, err := repo.Create(ctx, uuid.New())
	assert.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, found := repo.Get(ctx, session.Token)
	assert.False(t, found)
}
