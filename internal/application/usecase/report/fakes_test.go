package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
)

// fakeSessionStore is an in-memory session store with injectable failures.
type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*entity.ReportSession
	getErr   error
	setErr   error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[int64]*entity.ReportSession)}
}

func (s *fakeSessionStore) Get(_ context.Context, userID int64) (*entity.ReportSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	session, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessionStore) Set(_ context.Context, session *entity.ReportSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	copied := *session
	s.sessions[session.UserID] = &copied
	return nil
}

func (s *fakeSessionStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func (s *fakeSessionStore) stored(userID int64) *entity.ReportSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[userID]
}

// fakeRecordRepo serves canned aggregation results.
type fakeRecordRepo struct {
	mu   sync.Mutex
	sums map[entity.Category]decimal.Decimal
	rows map[entity.Category][]adapter.PeriodRow
	err  error

	sumCalls int
	rowCalls int
}

func (r *fakeRecordRepo) Create(context.Context, *entity.ExpenseRecord) error { return nil }

func (r *fakeRecordRepo) FindRecent(context.Context, int64, entity.Category, int) ([]*entity.ExpenseRecord, error) {
	return nil, nil
}

func (r *fakeRecordRepo) Delete(context.Context, uuid.UUID, int64) (int64, error) { return 0, nil }

func (r *fakeRecordRepo) SumByCategoryAndRange(
	_ context.Context, _ int64, category entity.Category, _, _ time.Time,
) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sumCalls++
	if r.err != nil {
		return decimal.Zero, r.err
	}
	return r.sums[category], nil
}

func (r *fakeRecordRepo) RowsByCategoryAndRange(
	_ context.Context, _ int64, category entity.Category, _, _ time.Time, _ adapter.PeriodBucket,
) ([]adapter.PeriodRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rowCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.rows[category], nil
}

// fakeLimitRepo serves a single limit set.
type fakeLimitRepo struct {
	set *entity.LimitSet
	err error
}

func (r *fakeLimitRepo) Read(context.Context, int64) (*entity.LimitSet, error) {
	return r.set, r.err
}

func (r *fakeLimitRepo) Upsert(context.Context, int64, entity.Category, decimal.Decimal) error {
	return nil
}

// fakeUserRepo serves a single user.
type fakeUserRepo struct {
	user *entity.User
	err  error
}

func (r *fakeUserRepo) Create(context.Context, *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(context.Context, int64) (*entity.User, error) {
	return r.user, r.err
}

func (r *fakeUserRepo) UpdateTimezone(context.Context, int64, int) error { return nil }

// stubFormatter renders a fixed marker so tests can recognize the artifact.
type stubFormatter struct {
	format entity.OutputFormat
}

func (f *stubFormatter) ContentType() string { return "application/octet-stream" }

func (f *stubFormatter) FileName(userID int64) string {
	return fmt.Sprintf("report_%d.%s", userID, f.format)
}

func (f *stubFormatter) Render(tables []ReportTable) ([]byte, error) {
	return []byte(fmt.Sprintf("%s:%d", f.format, len(tables))), nil
}

// stubResolver resolves every known format to a stub formatter.
type stubResolver struct{}

func (stubResolver) Resolve(format entity.OutputFormat) (Formatter, error) {
	return &stubFormatter{format: format}, nil
}
