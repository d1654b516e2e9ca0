// Package redisstore is the redis-backed alternative to the in-process
// session store, for running more than one instance behind a balancer.
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"child-screening-be/internal/pkg/apperror"
	"child-screening-be/internal/repository/contract"
	"child-screening-be/pkg/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) contract.SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) save(ctx context.Context, session *store.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+session.Token, payload, r.ttl).Err()
}

func (r *SessionRepository) Create(ctx context.Context, userId uuid.UUID) (*store.Session, error) {
	session := &store.Session{
		Token:  uuid.New().String(),
		UserId: userId,
	}
	if err := r.save(ctx, session); err != nil {
		return nil, apperror.Storage("failed to create session", err)
	}
	return session, nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (*store.Session, bool) {
	payload, err := r.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) SetActiveChild(ctx context.Context, token string, childId uuid.UUID) error {
	session, found := r.Get(ctx, token)
	if !found {
		return apperror.Auth("session expired")
	}
	session.ChildId = &childId
	if err := r.save(ctx, session); err != nil {
		return apperror.Storage("failed to update session", err)
	}
	return nil
}

func (r *SessionRepository) SetActiveResult(ctx context.Context, token string, resultId uuid.UUID) error {
	session, found := r.Get(ctx, token)
	if !found {
		return apperror.Auth("session expired")
	}
	session.ResultId = &resultId
	if err := r.save(ctx, session); err != nil {
		return apperror.Storage("failed to update session", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) {
	r.client.Del(ctx, keyPrefix+token)
}
