// Package accounts owns the persisted user collection and the single
// current-session slot.
//
// Passwords are stored and compared verbatim, matching the app's observed
// behavior since the first release; this layer is not a security model and
// deliberately does not pretend to be one. Like the ride collection, every
// operation is a whole-collection read-modify-write with no cross-call
// locking (see the rides package for the lost-update note).
package accounts

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

// Canonical storage keys, mirroring the @UniCaronas namespace the app has
// always written. They must stay stable across versions.
const (
	UsersKey   = "unicaronas:users"
	SessionKey = "unicaronas:currentUser"
)

// KVRepository implements Repository over a kv.Store.
type KVRepository struct {
	store kv.Store
}

// NewKVRepository returns a Repository bound to the given store.
func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) load(ctx context.Context) ([]models.Account, error) {
	blob, err := r.store.Get(ctx, UsersKey)
	if err != nil {
		return nil, err
	}
	users, err := codec.DecodeCollection[models.Account](blob)
	if err != nil {
		return nil, fmt.Errorf("user collection: %w", err)
	}
	return users, nil
}

func (r *KVRepository) save(ctx context.Context, users []models.Account) error {
	blob, err := codec.EncodeCollection(users)
	if err != nil {
		return fmt.Errorf("user collection: %w", err)
	}
	return r.store.Set(ctx, UsersKey, blob)
}

func (r *KVRepository) Register(ctx context.Context, draft models.Account) (models.Account, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	// Case-sensitive on purpose: the app has always compared emails
	// exactly, and stored data depends on it.
	for _, u := range users {
		if u.Email == draft.Email {
			return models.Account{}, fmt.Errorf("%s: %w", draft.Email, common.ErrDuplicateEmail)
		}
	}

	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now().UTC()

	if err := r.save(ctx, append(users, draft)); err != nil {
		return models.Account{}, err
	}
	return draft, nil
}

func (r *KVRepository) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u.WithoutPassword(), nil
		}
	}
	return models.Account{}, common.ErrInvalidCredentials
}

func (r *KVRepository) CurrentSession(ctx context.Context) (*models.Account, error) {
	blob, err := r.store.Get(ctx, SessionKey)
	if err != nil {
		return nil, err
	}
	session, err := codec.DecodeRecord[models.Account](blob)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return session, nil
}

func (r *KVRepository) SetCurrentSession(ctx context.Context, account models.Account) error {
	blob, err := codec.EncodeRecord(account.WithoutPassword())
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return r.store.Set(ctx, SessionKey, blob)
}

func (r *KVRepository) ClearSession(ctx context.Context) error {
	return r.store.Remove(ctx, SessionKey)
}

func (r *KVRepository) UpdateProfile(ctx context.Context, id string, patch Patch) (models.Account, error) {
	users, err := r.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		applyPatch(&users[i], patch)
		if err := r.save(ctx, users); err != nil {
			return models.Account{}, err
		}

		session, err := r.CurrentSession(ctx)
		if err != nil {
			return models.Account{}, err
		}
		if session != nil && session.ID == id {
			if err := r.SetCurrentSession(ctx, users[i]); err != nil {
				return models.Account{}, err
			}
		}
		return users[i].WithoutPassword(), nil
	}
	return models.Account{}, fmt.Errorf("account %s: %w", id, common.ErrNotFound)
}

func applyPatch(account *models.Account, patch Patch) {
	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.University != nil {
		account.University = *patch.University
	}
	if patch.ProfileImage != nil {
		account.ProfileImage = *patch.ProfileImage
	}
}

// ResetPassword is a notification simulation carried over from the original
// product behavior: a known email gets a success message and nothing else
// happens. Do not "fix" this into a real reset flow without product intent.
func (r *KVRepository) ResetPassword(ctx context.Context, email string) (ResetResult, error) {
	users, err := r.load(ctx)
	if err != nil {
		return ResetResult{}, err
	}

	for _, u := range users {
		if u.Email == email {
			return ResetResult{
				Success: true,
				Message: "Password reset instructions have been sent (simulated)",
			}, nil
		}
	}
	return ResetResult{Success: false, Message: "Email not found"}, nil
}
