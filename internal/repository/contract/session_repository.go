package contract

import (
	"context"

	"child-screening-be/pkg/store"

	"github.com/google/uuid"
)

// SessionRepository maps opaque tokens to workflow state. Backed by
// process memory or redis; either way sessions expire by TTL and are
// not expected to survive a restart.
type SessionRepository interface {
	// Create issues a fresh session bound to userId and returns its token.
	Create(ctx context.Context, userId uuid.UUID) (*store.Session, error)
	Get(ctx context.Context, token string) (*store.Session, bool)
	// SetActiveChild and SetActiveResult attach workflow state after the
	// corresponding record exists.
	SetActiveChild(ctx context.Context, token string, childId uuid.UUID) error
	SetActiveResult(ctx context.Context, token string, resultId uuid.UUID) error
	Delete(ctx context.Context, token string)
}
