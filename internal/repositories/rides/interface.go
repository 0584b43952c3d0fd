package rides

import (
	"context"

	"github.com/unicaronas/unicaronas/internal/models"
)

// Repository describes the operations on the ride collection.
// Implementations are backed by the local key-value store.
type Repository interface {
	// List returns every stored ride in insertion order.
	List(ctx context.Context) ([]models.Ride, error)

	// Create assigns an ID and creation time to draft, appends it to the
	// collection and persists it. The ride is only reported as created
	// once the write has succeeded.
	Create(ctx context.Context, draft models.Ride) (models.Ride, error)

	// GetByID returns the ride with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (models.Ride, error)

	// Join appends passenger to the ride's passenger list and persists the
	// collection. Fails with common.ErrNotFound if the ride is absent and
	// with common.ErrRideFull when every seat is taken; on failure the
	// stored collection is left unchanged.
	Join(ctx context.Context, id string, passenger string) (models.Ride, error)

	// Delete removes the ride with the given id. Only the owning driver may
	// delete; any other requester gets common.ErrUnauthorized.
	Delete(ctx context.Context, id string, requesterID string) error
}
