package memory

import (
	"context"
	"time"

	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository builds the default in-process session store.
// Expired sessions are purged every ttl/6 but at least every 10 minutes.
func NewSessionRepository(ttl time.Duration) contract.SessionRepository {
	purge := ttl / 6
	if purge > 10*time.Minute {
		purge = 10 * time.Minute
	}
	return &SessionRepository{
		cache: cache.New(ttl, purge),
	}
}

func (r *SessionRepository) Create(_ context.Context, userId uuid.UUID) (*store.Session, error) {
	session := &store.Session{
		Token:  uuid.New().String(),
		UserId: userId,
	}
	r.cache.Set(session.Token, session, cache.DefaultExpiration)
	return session, nil
}

func (r *SessionRepository) Get(_ context.Context, token string) (*store.Session, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) SetActiveChild(ctx context.Context, token string, childId uuid.UUID) error {
	session, found := r.Get(ctx, token)
	if !found {
		return apperror.Auth("session expired")
	}
	session.ChildId = &childId
	r.cache.Set(token, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) SetActiveResult(ctx context.Context, token string, resultId uuid.UUID) error {
	session, found := r.Get(ctx, token)
	if !found {
		return apperror.Auth("session expired")
	}
	session.ResultId = &resultId
	r.cache.Set(token, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, token string) {
	r.cache.Delete(token)
}
