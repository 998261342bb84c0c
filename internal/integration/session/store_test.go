package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
)

// runStoreTests exercises the SessionStore contract against any
// implementation.
func runStoreTests(t *testing.T, store adapter.SessionStore) {
	ctx := context.Background()

	t.Run("get on an absent session returns nil", func(t *testing.T) {
		session, err := store.Get(ctx, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session != nil {
			t.Errorf("expected nil session, got %+v", session)
		}
	})

	t.Run("set then get round-trips the session", func(t *testing.T) {
		stored := entity.NewReportSession(2)
		stored.Granularity = entity.GranularityFullDate
		stored.State = entity.StateCollectEndDay
		stored.Start = entity.PeriodEdge{Year: 2024, Month: 3, Day: 1}
		stored.End = entity.PeriodEdge{Year: 2024, Month: 3}
		stored.GroupType = entity.GroupByPeriod
		stored.SubPeriod = entity.SubPeriodMonth
		stored.Format = entity.FormatJSON

		if err := store.Set(ctx, stored); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected the stored session back")
		}
		if *got != *stored {
			t.Errorf("got %+v, want %+v", got, stored)
		}
	})

	t.Run("set replaces the previous session", func(t *testing.T) {
		first := entity.NewReportSession(3)
		first.State = entity.StateChooseFormat
		if err := store.Set(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second := entity.NewReportSession(3)
		if err := store.Set(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.State != entity.StateChooseGranularity {
			t.Errorf("state = %s, want the fresh session", got.State)
		}
	})

	t.Run("clear discards the session", func(t *testing.T) {
		if err := store.Set(ctx, entity.NewReportSession(4)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Clear(ctx, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := store.Get(ctx, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil after clear, got %+v", got)
		}
	})

	t.Run("clearing an absent session is a no-op", func(t *testing.T) {
		if err := store.Clear(ctx, 404); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sessions are isolated per user", func(t *testing.T) {
		a := entity.NewReportSession(5)
		a.Granularity = entity.GranularityYear
		b := entity.NewReportSession(6)
		b.Granularity = entity.GranularityFullDate

		if err := store.Set(ctx, a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Set(ctx, b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gotA, _ := store.Get(ctx, 5)
		gotB, _ := store.Get(ctx, 6)
		if gotA.Granularity != entity.GranularityYear || gotB.Granularity != entity.GranularityFullDate {
			t.Error("sessions leaked between users")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	runStoreTests(t, store)

	t.Run("callers never share state with the store", func(t *testing.T) {
		ctx := context.Background()
		original := entity.NewReportSession(9)
		if err := store.Set(ctx, original); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Mutating the session after Set must not affect the stored copy.
		original.State = entity.StateReady

		got, _ := store.Get(ctx, 9)
		if got.State != entity.StateChooseGranularity {
			t.Error("store must copy sessions on write")
		}

		// Mutating the returned session must not affect the stored copy.
		got.State = entity.StateReady
		again, _ := store.Get(ctx, 9)
		if again.State != entity.StateChooseGranularity {
			t.Error("store must copy sessions on read")
		}
	})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, time.Minute)
	runStoreTests(t, store)

	t.Run("abandoned sessions expire", func(t *testing.T) {
		ctx := context.Background()
		if err := store.Set(ctx, entity.NewReportSession(10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mr.FastForward(2 * time.Minute)

		got, err := store.Get(ctx, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected the session to expire, got %+v", got)
		}
	})

	t.Run("non-positive ttl falls back to the default", func(t *testing.T) {
		fallback := NewRedisStore(client, 0)
		if fallback.ttl != DefaultSessionTTL {
			t.Errorf("ttl = %v, want %v", fallback.ttl, DefaultSessionTTL)
		}
	})
}
