package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicaronas/unicaronas/internal/kv"
	"github.com/unicaronas/unicaronas/internal/logging"
	"github.com/unicaronas/unicaronas/internal/models"
	"github.com/unicaronas/unicaronas/internal/repositories/accounts"
	"github.com/unicaronas/unicaronas/internal/repositories/rides"
)

func newServices(t *testing.T) (*AuthService, *RideService) {
	t.Helper()
	db, err := kv.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := kv.NewSQLiteStore(db)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewAuthService(accounts.NewKVRepository(store), log),
		NewRideService(rides.NewKVRepository(store), log)
}

func signupDraft(name, email, password string) models.Account {
	return models.Account{Name: name, Email: email, University: "UFMG", Password: password}
}

func TestRegister_AutoLogin(t *testing.T) {
	auth, _ := newServices(t)
	ctx := context.Background()

	account, res := auth.Register(ctx, signupDraft("Ana", "a@u.edu", "secret1"))
	require.True(t, res.Success, res.Message)
	require.NotNil(t, account)
	assert.Empty(t, account.Password)

	// registration opened the session
	current := auth.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, account.ID, current.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth, _ := newServices(t)
	ctx := context.Background()

	_, res := auth.Register(ctx, signupDraft("Ana", "a@u.edu", "secret1"))
	require.True(t, res.Success)

	account, res := auth.Register(ctx, signupDraft("Bia", "a@u.edu", "secret2"))
	assert.False(t, res.Success)
	assert.Nil(t, account)
	assert.Equal(t, "This email is already registered", res.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newServices(t)
	ctx := context.Background()

	_, res := auth.Register(ctx, signupDraft("Ana", "a@u.edu", "secret1"))
	require.True(t, res.Success)
	require.True(t, auth.Logout(ctx).Success)

	account, res := auth.Login(ctx, "a@u.edu", "wrong")
	assert.False(t, res.Success)
	assert.Nil(t, account)
	assert.Equal(t, "Invalid email or password", res.Message)
	assert.Nil(t, auth.CurrentUser(ctx))
}

func TestLogout_ClearsSession(t *testing.T) {
	auth, _ := newServices(t)
	ctx := context.Background()

	_, res := auth.Register(ctx, signupDraft("Ana", "a@u.edu", "secret1"))
	require.True(t, res.Success)

	res = auth.Logout(ctx)
	assert.True(t, res.Success)
	assert.Nil(t, auth.CurrentUser(ctx))
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	auth, _ := newServices(t)

	name := "X"
	account, res := auth.UpdateProfile(context.Background(), accounts.Patch{Name: &name})
	assert.False(t, res.Success)
	assert.Nil(t, account)
}

func TestUpdateProfile_PatchesSignedInAccount(t *testing.T) {
	auth, _ := newServices(t)
	ctx := context.Background()

	_, res := auth.Register(ctx, signupDraft("Ana", "a@u.edu", "secret1"))
	require.True(t, res.Success)

	university := "PUC Minas"
	account, res := auth.UpdateProfile(ctx, accounts.Patch{University: &university})
	require.True(t, res.Success, res.Message)
	require.NotNil(t, account)
	assert.Equal(t, "PUC Minas", account.University)

	current := auth.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "PUC Minas", current.University)
}

func TestForgotPassword_SimulatedReset(t *testing.T) {
	auth, _ := newServices(t)
	ctx := context.Background()

	_, res := auth.Register(ctx, signupDraft("Ana", "a@u.edu", "secret1"))
	require.True(t, res.Success)
	require.True(t, auth.Logout(ctx).Success)

	res = auth.ForgotPassword(ctx, "a@u.edu")
	assert.True(t, res.Success)

	// the original password still works afterwards
	account, res := auth.Login(ctx, "a@u.edu", "secret1")
	require.True(t, res.Success, res.Message)
	assert.NotNil(t, account)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	auth, _ := newServices(t)

	res := auth.ForgotPassword(context.Background(), "nobody@u.edu")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}
