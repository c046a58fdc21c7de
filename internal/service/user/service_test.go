package user

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
)

type fakeUserRepo struct {
	users      map[int64]user.User
	lastUpdate user.UpdateUserRequest
}

func newFakeUserRepo(users ...user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[int64]user.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	newUser.ID = int64(len(f.users) + 1)
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	f.lastUpdate = req
	u, ok := f.users[req.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Password != nil {
		u.PasswordHash = *req.Password
	}
	f.users[req.ID] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateProfilePhoto(ctx context.Context, id int64, path string) error {
	return nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

type fakeStorage struct{}

func (fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	return path, nil
}
func (fakeStorage) Delete(ctx context.Context, path string) error { return nil }
func (fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/uploads/" + path, nil
}
func (fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return true, nil }

func TestUpdateHashesAndPersistsPassword(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: 7, Name: "Serda Budi", RegistrationNumber: "NRP-007", Role: user.RoleGuest})
	svc := NewUserService(repo, fakeStorage{})

	plaintext := "changed-password"
	_, err := svc.Update(context.Background(), user.UpdateUserRequest{
		ID:       7,
		Password: &plaintext,
	})
	require.NoError(t, err)

	// The repository must receive a bcrypt hash of the new password, never
	// the plaintext, and the stored credential must match it.
	require.NotNil(t, repo.lastUpdate.Password)
	assert.NotEqual(t, "changed-password", *repo.lastUpdate.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[7].PasswordHash), []byte("changed-password")))
}

func TestUpdateWithoutPasswordLeavesCredentialAlone(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: 7, Name: "Serda Budi", PasswordHash: "existing-hash", RegistrationNumber: "NRP-007", Role: user.RoleGuest})
	svc := NewUserService(repo, fakeStorage{})

	newName := "Sertu Budi"
	_, err := svc.Update(context.Background(), user.UpdateUserRequest{
		ID:   7,
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Nil(t, repo.lastUpdate.Password)
	assert.Equal(t, "existing-hash", repo.users[7].PasswordHash)
}

func TestUpdateRejectsShortPassword(t *testing.T) {
	repo := newFakeUserRepo(user.User{ID: 7, Name: "Serda Budi", RegistrationNumber: "NRP-007", Role: user.RoleGuest})
	svc := NewUserService(repo, fakeStorage{})

	short := "abc"
	_, err := svc.Update(context.Background(), user.UpdateUserRequest{
		ID:       7,
		Password: &short,
	})
	assert.Error(t, err)
	assert.Nil(t, repo.lastUpdate.Password)
}
