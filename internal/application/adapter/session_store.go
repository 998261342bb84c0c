package adapter

import (
	"context"

	"github.com/budget-bot/backend/internal/domain/entity"
)

// SessionStore keeps at most one in-flight report session per user. Sessions
// are transient dialogue state with no durability requirement; a store may
// expire abandoned sessions.
type SessionStore interface {
	// Get retrieves the user's session. Returns (nil, nil) when no session
	// is in flight.
	Get(ctx context.Context, userID int64) (*entity.ReportSession, error)

	// Set stores the session, replacing any previous one for the same user.
	Set(ctx context.Context, session *entity.ReportSession) error

	// Clear discards the user's session. Clearing an absent session is a
	// no-op.
	Clear(ctx context.Context, userID int64) error
}
