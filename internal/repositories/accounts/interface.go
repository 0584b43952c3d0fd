package accounts

import (
	"context"

	"github.com/unicaronas/unicaronas/internal/models"
)

// Patch carries profile fields to overwrite. Nil fields are left as stored
// (shallow overwrite, the way the profile screen always merged edits).
type Patch struct {
	Name         *string
	University   *string
	ProfileImage *string
}

// ResetResult is the outcome of a password reset request. The reset is a
// notification simulation only: no token is issued and no stored password
// changes.
type ResetResult struct {
	Success bool
	Message string
}

// Repository describes the operations on the user collection and the
// current-session slot.
type Repository interface {
	// Register adds a new account. Email uniqueness is checked
	// case-sensitively; a match fails with common.ErrDuplicateEmail and
	// leaves the collection unchanged.
	Register(ctx context.Context, draft models.Account) (models.Account, error)

	// Authenticate scans for an exact email+password match and returns the
	// account with the password stripped, or common.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.Account, error)

	// CurrentSession returns the signed-in account copy, or nil when
	// signed out.
	CurrentSession(ctx context.Context) (*models.Account, error)

	// SetCurrentSession stores account (password-stripped) as the session.
	SetCurrentSession(ctx context.Context, account models.Account) error

	// ClearSession destroys the session slot.
	ClearSession(ctx context.Context) error

	// UpdateProfile overwrites the patched fields on the stored account and
	// refreshes the session copy when it references the same account.
	UpdateProfile(ctx context.Context, id string, patch Patch) (models.Account, error)

	// ResetPassword looks the account up by email and reports a simulated
	// reset; the stored password is deliberately never touched.
	ResetPassword(ctx context.Context, email string) (ResetResult, error)
}
