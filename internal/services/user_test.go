package services

import (
	"context"
	"testing"

	"github.com/inkwell-blog/inkwell/internal/store"
	"github.com/inkwell-blog/inkwell/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	created   []types.User
	createErr error

	byUsername map[string]types.User
	byID       map[int]types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]types.User{},
		byID:       map[int]types.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if f.createErr != nil {
		return types.User{}, f.createErr
	}
	user.ID = len(f.created) + 1
	f.created = append(f.created, user)
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{name: "empty username", username: "", password: "pw", wantMsg: "Username is required."},
		{name: "empty password", username: "alice", password: "", wantMsg: "Password is required."},
		{name: "both empty", username: "", password: "", wantMsg: "Password is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewUserService(repo)

			_, err := svc.Register(context.Background(), tt.username, tt.password)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Empty(t, repo.created, "no user row may be created on validation failure")
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	stored := repo.created[0]
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
	assert.NotZero(t, user.ID)
}

func TestRegisterSaltsHashes(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "samepw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob", "samepw")
	require.NoError(t, err)

	assert.NotEqual(t, repo.created[0].PasswordHash, repo.created[1].PasswordHash,
		"equal plaintexts must hash differently across calls")
}

func TestRegisterConflict(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = store.ErrConflict
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), "alice", "pw")

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "User alice is already registered.", cerr.Message)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "ghost", "pw")

	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "Incorrect username.", aerr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")

	var aerr *AuthError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "Incorrect password.", aerr.Message)
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "alice", user.Username)
}
