package finboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Materializer turns due recurring occurrences into real transactions and
// advances the stored schedule pointers. It is the only mutating path of the
// engine: projection never writes, materialization always does.
//
// Runs for the same user are serialized with a per-user lock, so a background
// scheduler and an on-demand trigger cannot race to materialize the same
// occurrence twice. Against writers outside this process, every occurrence
// goes through the store's atomic MaterializeOccurrence: the insert and the
// conditional pointer advance commit together or not at all, so a run working
// from a stale definition snapshot inserts nothing.
type Materializer struct {
	store Store
	log   zerolog.Logger
	now   func() Date

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

// NewMaterializer creates a materializer over the given store.
func NewMaterializer(store Store, log zerolog.Logger) *Materializer {
	return &Materializer{
		store: store,
		log:   log,
		now:   Today,
		users: make(map[string]*sync.Mutex),
	}
}

// userLock returns the lock serializing materialization for one user.
func (m *Materializer) userLock(user string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.users[user]
	if !ok {
		l = &sync.Mutex{}
		m.users[user] = l
	}
	return l
}

// Run materializes every due occurrence of the user's active definitions:
// one transaction per missed occurrence, catching up definitions that are
// overdue by more than one period, then persists the advanced pointer. Each
// pointer advance commits together with the transaction covering it, so a
// write failure leaves the definition due and retriable.
//
// Run returns the number of transactions inserted and the per-definition
// failures joined together; one failing definition does not abort the batch.
// Invoking Run again immediately is a no-op: every pointer is already in the
// future.
func (m *Materializer) Run(ctx context.Context, user string) (int, error) {
	if user == "" {
		return 0, errors.New("missing user")
	}

	lock := m.userLock(user)
	lock.Lock()
	defer lock.Unlock()

	defs, err := m.store.ActiveDefinitions(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("reading active definitions: %w", err)
	}

	now := m.now()
	var inserted int
	var errs error
	for _, def := range defs {
		n, err := m.materialize(ctx, def, now)
		inserted += n
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("definition %s (%s): %w", def.ID, def.Title, err))
		}
	}
	return inserted, errs
}

// materialize catches up one definition. Each occurrence is committed on its
// own through the store's atomic insert-and-advance, so a failure in the
// middle of a catch-up keeps the already-covered occurrences advanced and
// leaves the rest due. A stale pointer means another writer materialized the
// occurrence already; the catch-up stops without treating that as a failure.
func (m *Materializer) materialize(ctx context.Context, def RecurringDefinition, now Date) (int, error) {
	var inserted int
	for on := def.NextOccurrence; !on.After(now); on = def.Frequency.Next(on) {
		tx := def.transaction(uuid.NewString(), on)
		next := def.Frequency.Next(on)
		if err := m.store.MaterializeOccurrence(ctx, tx, def.ID, on, next); err != nil {
			if errors.Is(err, ErrStaleDefinition) {
				m.log.Warn().Str("definition", def.ID).Stringer("occurrence", on).
					Msg("pointer advanced concurrently, stopping catch-up")
				return inserted, nil
			}
			return inserted, fmt.Errorf("materializing occurrence on %s: %w", on, err)
		}
		inserted++
		m.log.Info().Str("user", def.User).Str("definition", def.ID).
			Stringer("occurrence", on).Stringer("next", next).
			Msg("materialized recurring transaction")
	}
	return inserted, nil
}
