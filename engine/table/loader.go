package table

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/compozy/members/engine/user"
	"github.com/compozy/members/pkg/logger"
)

// Fetcher reads the user feed
type Fetcher interface {
	ListMembers(ctx context.Context) ([]user.User, error)
}

// Loader performs the initial fetch exactly once. Failures are logged and
// collapse into an empty list; callers never see an error state.
type Loader struct {
	fetcher Fetcher
	once    sync.Once
	users   []user.User
	err     error
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load runs the fetch on first call and returns its result on every call.
// If ctx is canceled before the fetch completes the result is empty.
func (l *Loader) Load(ctx context.Context) []user.User {
	l.once.Do(func() {
		log := logger.FromContext(ctx)
		users, err := l.fetcher.ListMembers(ctx)
		if err == nil {
			err = ctx.Err()
		}
		if err != nil {
			l.err = err
			if errors.Is(err, context.Canceled) {
				log.Debug("user fetch canceled")
				return
			}
			log.Error("error fetching users", "error", err)
			return
		}
		if dups := user.DuplicateIDs(users); len(dups) > 0 {
			log.Warn("user feed contains duplicate ids", "ids", dups)
		}
		log.Debug("users fetched", "count", len(users))
		l.users = users
	})
	return slices.Clone(l.users)
}

// Err is the diagnostic of a failed fetch, nil on success or before Load.
func (l *Loader) Err() error {
	return l.err
}
