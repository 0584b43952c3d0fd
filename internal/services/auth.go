package services

import (
	"context"

	"github.com/unicaronas/unicaronas/internal/logging"
	"github.com/unicaronas/unicaronas/internal/models"
	"github.com/unicaronas/unicaronas/internal/repositories/accounts"
)

// AuthService wraps the account repository into the session lifecycle:
// login, register (with auto-login), logout, profile update and the
// simulated forgot-password flow.
type AuthService struct {
	accounts accounts.Repository
	log      logging.Logger
}

// NewAuthService constructs an AuthService over the given repository.
func NewAuthService(repo accounts.Repository, log logging.Logger) *AuthService {
	return &AuthService{accounts: repo, log: log}
}

// Login authenticates and, on success, stores the password-stripped account
// as the current session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, Result) {
	account, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return nil, fail(err)
	}

	if err := s.accounts.SetCurrentSession(ctx, account); err != nil {
		s.log.Error(ctx, "failed to store session", "error", err)
		return nil, fail(err)
	}
	return &account, ok("Signed in")
}

// Register creates the account and immediately signs it in with the same
// credentials, reporting the combined outcome.
func (s *AuthService) Register(ctx context.Context, draft models.Account) (*models.Account, Result) {
	registered, err := s.accounts.Register(ctx, draft)
	if err != nil {
		s.log.Warn(ctx, "registration failed", "email", draft.Email, "error", err)
		return nil, fail(err)
	}
	s.log.Info(ctx, "account registered", "id", registered.ID)

	account, res := s.Login(ctx, draft.Email, draft.Password)
	if !res.Success {
		return nil, res
	}
	return account, ok("Account created")
}

// Logout destroys the current session.
func (s *AuthService) Logout(ctx context.Context) Result {
	if err := s.accounts.ClearSession(ctx); err != nil {
		s.log.Error(ctx, "logout failed", "error", err)
		return fail(err)
	}
	return ok("Signed out")
}

// UpdateProfile applies patch to the signed-in account.
func (s *AuthService) UpdateProfile(ctx context.Context, patch accounts.Patch) (*models.Account, Result) {
	session, err := s.accounts.CurrentSession(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read session", "error", err)
		return nil, fail(err)
	}
	if session == nil {
		return nil, failMsg("You are not signed in")
	}

	updated, err := s.accounts.UpdateProfile(ctx, session.ID, patch)
	if err != nil {
		s.log.Error(ctx, "profile update failed", "id", session.ID, "error", err)
		return nil, fail(err)
	}
	return &updated, ok("Profile updated")
}

// ForgotPassword delegates to the repository's simulated reset.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) Result {
	res, err := s.accounts.ResetPassword(ctx, email)
	if err != nil {
		s.log.Error(ctx, "password reset failed", "error", err)
		return fail(err)
	}
	return Result{Success: res.Success, Message: res.Message}
}

// CurrentUser restores the signed-in account on app start. Read failures
// are logged and treated as signed out.
func (s *AuthService) CurrentUser(ctx context.Context) *models.Account {
	session, err := s.accounts.CurrentSession(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to restore session", "error", err)
		return nil
	}
	return session
}
