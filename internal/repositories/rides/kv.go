// Package rides owns the persisted ride collection: create, list, lookup,
// capacity-checked join and owner-only delete.
//
// Every operation re-reads the whole collection from the store, transforms
// it in memory and writes the whole collection back. A failed write leaves
// the previous blob untouched, so the collection is never partially
// updated. There is no cross-call locking: two mutating calls issued
// without awaiting completion can both read the same snapshot and the
// second write wins (lost update). Single user, single device makes that
// acceptable here.
package rides

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/unicaronas/unicaronas/internal/codec"
	"github.com/unicaronas/unicaronas/internal/common"
	"github.com/unicaronas/unicaronas/internal/kv"
	"github.com/unicaronas/unicaronas/internal/models"
)

// StorageKey is the canonical key for the ride collection blob. It must
// stay stable across app versions to avoid silent data loss.
const StorageKey = "unicaronas:rides"

// KVRepository implements Repository over a kv.Store.
type KVRepository struct {
	store kv.Store
}

// NewKVRepository returns a Repository bound to the given store.
func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) load(ctx context.Context) ([]models.Ride, error) {
	blob, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	rides, err := codec.DecodeCollection[models.Ride](blob)
	if err != nil {
		return nil, fmt.Errorf("ride collection: %w", err)
	}
	return rides, nil
}

func (r *KVRepository) save(ctx context.Context, rides []models.Ride) error {
	blob, err := codec.EncodeCollection(rides)
	if err != nil {
		return fmt.Errorf("ride collection: %w", err)
	}
	return r.store.Set(ctx, StorageKey, blob)
}

func (r *KVRepository) List(ctx context.Context) ([]models.Ride, error) {
	return r.load(ctx)
}

func (r *KVRepository) Create(ctx context.Context, draft models.Ride) (models.Ride, error) {
	rides, err := r.load(ctx)
	if err != nil {
		return models.Ride{}, err
	}

	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now().UTC()
	if draft.Passengers == nil {
		draft.Passengers = []string{}
	}

	if err := r.save(ctx, append(rides, draft)); err != nil {
		return models.Ride{}, err
	}
	return draft, nil
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (models.Ride, error) {
	rides, err := r.load(ctx)
	if err != nil {
		return models.Ride{}, err
	}
	for _, ride := range rides {
		if ride.ID == id {
			return ride, nil
		}
	}
	return models.Ride{}, fmt.Errorf("ride %s: %w", id, common.ErrNotFound)
}

func (r *KVRepository) Join(ctx context.Context, id string, passenger string) (models.Ride, error) {
	rides, err := r.load(ctx)
	if err != nil {
		return models.Ride{}, err
	}

	for i := range rides {
		if rides[i].ID != id {
			continue
		}
		if rides[i].IsFull() {
			return models.Ride{}, fmt.Errorf("ride %s: %w", id, common.ErrRideFull)
		}
		rides[i].Passengers = append(rides[i].Passengers, passenger)
		if err := r.save(ctx, rides); err != nil {
			return models.Ride{}, err
		}
		return rides[i], nil
	}
	return models.Ride{}, fmt.Errorf("ride %s: %w", id, common.ErrNotFound)
}

func (r *KVRepository) Delete(ctx context.Context, id string, requesterID string) error {
	rides, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range rides {
		if rides[i].ID != id {
			continue
		}
		if rides[i].DriverID != requesterID {
			return fmt.Errorf("ride %s: %w", id, common.ErrUnauthorized)
		}
		return r.save(ctx, append(rides[:i:i], rides[i+1:]...))
	}
	return fmt.Errorf("ride %s: %w", id, common.ErrNotFound)
}
