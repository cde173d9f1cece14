package table

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/compozy/members/engine/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls atomic.Int32
	users []user.User
	err   error
	block chan struct{}
}

func (f *fakeFetcher) ListMembers(ctx context.Context) ([]user.User, error) {
	f.calls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.users, f.err
}

func TestLoader_Load(t *testing.T) {
	t.Run("Should fetch exactly once", func(t *testing.T) {
		fetcher := &fakeFetcher{users: makeUsers(3)}
		loader := NewLoader(fetcher)

		first := loader.Load(t.Context())
		second := loader.Load(t.Context())

		assert.Equal(t, int32(1), fetcher.calls.Load())
		assert.Equal(t, first, second)
		assert.Len(t, first, 3)
		assert.NoError(t, loader.Err())
	})

	t.Run("Should fetch once under concurrent callers", func(t *testing.T) {
		fetcher := &fakeFetcher{users: makeUsers(2)}
		loader := NewLoader(fetcher)
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Len(t, loader.Load(t.Context()), 2)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), fetcher.calls.Load())
	})

	t.Run("Should return copies callers can mutate", func(t *testing.T) {
		loader := NewLoader(&fakeFetcher{users: makeUsers(2)})

		got := loader.Load(t.Context())
		got[0].Name = "changed"

		assert.Equal(t, "User 1", loader.Load(t.Context())[0].Name)
	})

	t.Run("Should collapse a failed fetch into an empty list", func(t *testing.T) {
		boom := errors.New("boom")
		fetcher := &fakeFetcher{err: boom}
		loader := NewLoader(fetcher)

		users := loader.Load(t.Context())

		assert.Empty(t, users)
		assert.ErrorIs(t, loader.Err(), boom)
		loader.Load(t.Context())
		assert.Equal(t, int32(1), fetcher.calls.Load())
	})

	t.Run("Should discard results when canceled", func(t *testing.T) {
		fetcher := &fakeFetcher{users: makeUsers(2), block: make(chan struct{})}
		loader := NewLoader(fetcher)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		users := loader.Load(ctx)

		assert.Empty(t, users)
		require.Error(t, loader.Err())
		assert.ErrorIs(t, loader.Err(), context.Canceled)
	})

	t.Run("Should discard a result that arrives after cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		fetcher := &lateFetcher{cancel: cancel, users: makeUsers(2)}
		loader := NewLoader(fetcher)

		assert.Empty(t, loader.Load(ctx))
		assert.ErrorIs(t, loader.Err(), context.Canceled)
	})

	t.Run("Should keep duplicated ids", func(t *testing.T) {
		users := []user.User{{ID: "1"}, {ID: "1"}}
		loader := NewLoader(&fakeFetcher{users: users})

		assert.Len(t, loader.Load(t.Context()), 2)
	})
}

// lateFetcher cancels its own context before returning a successful result.
type lateFetcher struct {
	cancel context.CancelFunc
	users  []user.User
}

func (f *lateFetcher) ListMembers(context.Context) ([]user.User, error) {
	f.cancel()
	return f.users, nil
}
