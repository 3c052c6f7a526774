package service_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"notes-api/internal/auth"
	"notes-api/internal/service"
	"notes-api/internal/storage"
	storage_mocks "notes-api/internal/storage/mocks"
)

func newTestAccounts(users storage.UserStore) service.AccountService {
	return service.NewAccountService(
		users,
		auth.NewTokens([]byte("test-secret"), time.Hour),
		auth.NewHasher(bcrypt.MinCost),
	)
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     service.RegisterInput
		wantField string
	}{
		{name: "missing name", input: service.RegisterInput{Email: "a@x.io", Password: "pw"}, wantField: "fullName"},
		{name: "missing email", input: service.RegisterInput{FullName: "A", Password: "pw"}, wantField: "email"},
		{name: "missing password", input: service.RegisterInput{FullName: "A", Email: "a@x.io"}, wantField: "password"},
		{
			name:      "password over bcrypt limit",
			input:     service.RegisterInput{FullName: "A", Email: "a@x.io", Password: strings.Repeat("p", auth.MaxPasswordBytes+1)},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := newTestAccounts(storage_mocks.NewMockUserStore(ctrl))

			_, err := svc.Register(testContext(), tt.input)
			assert.True(t, isValidation(tt.wantField)(err), "Register() error = %v", err)
		})
	}
}

func TestAccountService_Register_PasswordAtBcryptLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := storage_mocks.NewMockUserStore(ctrl)
	users.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	user, err := newTestAccounts(users).Register(testContext(), service.RegisterInput{
		FullName: "Ann",
		Email:    "ann@example.com",
		Password: strings.Repeat("p", auth.MaxPasswordBytes),
	})
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := storage_mocks.NewMockUserStore(ctrl)
	users.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(storage.ErrDuplicate)

	_, err := newTestAccounts(users).Register(testContext(), service.RegisterInput{
		FullName: "Ann",
		Email:    "ann@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestAccountService_Authenticate_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := storage_mocks.NewMockUserStore(ctrl)
	users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)

	_, err := newTestAccounts(users).Authenticate(testContext(), "ghost@example.com", "pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAccountService_Authenticate_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := storage_mocks.NewMockUserStore(ctrl)
	users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := newTestAccounts(users).Authenticate(testContext(), "ann@example.com", "pw")
	assert.ErrorIs(t, err, service.ErrBackend)
}

func TestAccountService_Authenticate_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAccounts(storage_mocks.NewMockUserStore(ctrl))

	_, err := svc.Authenticate(testContext(), "", "pw")
	assert.True(t, isValidation("credentials")(err))
}

func TestAccountService_VerifyToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestAccounts(storage_mocks.NewMockUserStore(ctrl))

	_, err := svc.VerifyToken(testContext(), "not-a-jwt")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAccountService_Profile_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := storage_mocks.NewMockUserStore(ctrl)
	users.EXPECT().FindByID(gomock.Any(), "gone").Return(nil, storage.ErrNotFound).Times(2)

	svc := newTestAccounts(users)

	_, err := svc.Profile(testContext(), "gone")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = svc.PublicProfile(testContext(), "gone")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

// TestAccountService_RoundTrip runs register, login and token resolution
// against a real SQLite store.
func TestAccountService_RoundTrip(t *testing.T) {
	ctx := testContext()

	db, err := storage.Open(storage.DriverSQLite, filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.Migrate(ctx, db, storage.DriverSQLite))

	svc := newTestAccounts(storage.NewUserRepo(db, storage.DriverSQLite))

	user, err := svc.Register(ctx, service.RegisterInput{FullName: "Ann Lee", Email: "ann@example.com", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Register(ctx, service.RegisterInput{FullName: "Imposter", Email: "ann@example.com", Password: "x"})
	assert.ErrorIs(t, err, service.ErrConflict)

	_, err = svc.Authenticate(ctx, "ann@example.com", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// Email match is case-sensitive.
	_, err = svc.Authenticate(ctx, "ANN@example.com", "hunter2")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	session, err := svc.Authenticate(ctx, "ann@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, session.ExpiresIn)
	assert.Equal(t, user.ID, session.User.ID)
	assert.Empty(t, session.User.PasswordHash)

	userID, err := svc.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	me, err := svc.WhoAmI(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", me.FullName)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].PasswordHash)
}
