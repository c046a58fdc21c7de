package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// Update applies the request's non-nil fields; a Password, when present,
	// must already be hashed by the caller.
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	UpdateProfilePhoto(ctx context.Context, id int64, path string) error
	Exists(ctx context.Context, id int64) (bool, error)
}
