package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Morgpo/Grub-N-Go/external/grubngo"
	"github.com/Morgpo/Grub-N-Go/internal/storage"
)

type fakeAuthAPI struct {
	loginResult    grubngo.LoginResult
	loginErr       error
	registerResult grubngo.LoginResult
	registerErr    error
	registerReqs   []grubngo.RegisterRequest
}

func (f *fakeAuthAPI) Login(_ context.Context, _, _ string) (grubngo.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, req grubngo.RegisterRequest) (grubngo.LoginResult, error) {
	f.registerReqs = append(f.registerReqs, req)
	return f.registerResult, f.registerErr
}

func seedStore(t *testing.T, pairs map[string]string) storage.KeyValue {
	t.Helper()
	store := storage.NewMemoryStore()
	for k, v := range pairs {
		require.NoError(t, store.Set(context.Background(), k, v))
	}
	return store
}

func TestSessionService_Initialize(t *testing.T) {
	tests := []struct {
		name      string
		stored    map[string]string
		wantAuth  bool
		wantID    int64
		wantEmail string
	}{
		{
			name: "all_keys_present",
			stored: map[string]string{
				KeyUserID:    "42",
				KeyUserRole:  "CUSTOMER",
				KeyUserEmail: "a@b.com",
			},
			wantAuth:  true,
			wantID:    42,
			wantEmail: "a@b.com",
		},
		{
			name: "missing_email",
			stored: map[string]string{
				KeyUserID:   "42",
				KeyUserRole: "CUSTOMER",
			},
			wantAuth: false,
		},
		{
			name:     "empty_storage",
			stored:   nil,
			wantAuth: false,
		},
		{
			name: "non_integer_id",
			stored: map[string]string{
				KeyUserID:    "forty-two",
				KeyUserRole:  "CUSTOMER",
				KeyUserEmail: "a@b.com",
			},
			wantAuth: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewSessionService(&fakeAuthAPI{}, seedStore(t, tc.stored))
			assert.True(t, svc.Loading(), "not yet checked")

			require.NoError(t, svc.Initialize(context.Background()))
			assert.False(t, svc.Loading(), "checked")

			sess, ok := svc.Current()
			assert.Equal(t, tc.wantAuth, ok)
			assert.Equal(t, tc.wantAuth, svc.IsAuthenticated())
			if tc.wantAuth {
				assert.Equal(t, tc.wantID, sess.AccountID)
				assert.Equal(t, tc.wantEmail, sess.Email)
			}
		})
	}
}

func TestSessionService_LoginPersistsIdentity(t *testing.T) {
	api := &fakeAuthAPI{
		loginResult: grubngo.LoginResult{AccountID: 7, Email: "a@b.com", Role: "CUSTOMER"},
	}
	store := storage.NewMemoryStore()
	svc := NewSessionService(api, store)

	sess, err := svc.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.AccountID)
	assert.True(t, svc.IsAuthenticated())

	// a fresh service restoring from the same store sees the session
	restored := NewSessionService(api, store)
	require.NoError(t, restored.Initialize(context.Background()))
	got, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestSessionService_LoginRejection(t *testing.T) {
	api := &fakeAuthAPI{loginErr: &grubngo.APIError{Status: 401, Message: "Invalid email or password"}}
	svc := NewSessionService(api, storage.NewMemoryStore())

	_, err := svc.Login(context.Background(), "a@b.com", "wrong")
	var apiErr *grubngo.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_RegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		form RegisterForm
	}{
		{"password_mismatch", RegisterForm{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret2"}},
		{"password_too_short", RegisterForm{Email: "a@b.com", Password: "abc", ConfirmPassword: "abc"}},
		{"missing_email", RegisterForm{Password: "secret1", ConfirmPassword: "secret1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAuthAPI{}
			svc := NewSessionService(api, storage.NewMemoryStore())

			_, err := svc.Register(context.Background(), tc.form)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Empty(t, api.registerReqs, "no network call on validation failure")
		})
	}
}

func TestSessionService_RegisterSendsCustomerRole(t *testing.T) {
	api := &fakeAuthAPI{
		registerResult: grubngo.LoginResult{AccountID: 9, Email: "a@b.com", Role: "CUSTOMER"},
	}
	svc := NewSessionService(api, storage.NewMemoryStore())

	_, err := svc.Register(context.Background(), RegisterForm{
		Email:           "a@b.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Name:            "Ada",
		Phone:           "555-0100",
	})
	require.NoError(t, err)
	require.Len(t, api.registerReqs, 1)
	assert.Equal(t, "CUSTOMER", api.registerReqs[0].Role)
	assert.Equal(t, "Ada", api.registerReqs[0].Name)
}

func TestSessionService_LogoutAlwaysClears(t *testing.T) {
	store := seedStore(t, map[string]string{
		KeyUserID:    "42",
		KeyUserRole:  "CUSTOMER",
		KeyUserEmail: "a@b.com",
	})
	svc := NewSessionService(&fakeAuthAPI{}, store)
	require.NoError(t, svc.Initialize(context.Background()))
	require.True(t, svc.IsAuthenticated())

	svc.Logout(context.Background())
	assert.False(t, svc.IsAuthenticated())

	for _, key := range []string{KeyUserID, KeyUserRole, KeyUserEmail} {
		val, err := store.Get(context.Background(), key)
		require.NoError(t, err)
		assert.Empty(t, val)
	}

	// logging out while logged out is fine
	svc.Logout(context.Background())
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_InitializeRunsOnce(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewSessionService(&fakeAuthAPI{}, store)
	require.NoError(t, svc.Initialize(context.Background()))

	// keys written after the first load are not picked up by a second call
	require.NoError(t, store.Set(context.Background(), KeyUserID, "42"))
	require.NoError(t, store.Set(context.Background(), KeyUserRole, "CUSTOMER"))
	require.NoError(t, store.Set(context.Background(), KeyUserEmail, "a@b.com"))
	require.NoError(t, svc.Initialize(context.Background()))
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_InitializeStorageError(t *testing.T) {
	svc := NewSessionService(&fakeAuthAPI{}, failingStore{})
	err := svc.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, svc.Loading(), "failed check can be retried")
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("store down")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("store down")
}

func (failingStore) Delete(context.Context, ...string) error {
	return errors.New("store down")
}
